package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "github.com/limaJavier/sectionplanner/pkg/errors"
	"github.com/limaJavier/sectionplanner/pkg/export"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string `validate:"oneof=development production"`

	Log      LogConfig
	Provider ProviderConfig
	Engine   EngineConfig
	Metrics  MetricsConfig
	Export   ExportConfig
}

type LogConfig struct {
	Level  string
	Format string `validate:"oneof=console json"`
}

// ProviderConfig tunes course page downloads.
type ProviderConfig struct {
	Timeout       time.Duration `validate:"gt=0"`
	UserAgent     string
	RatePerSecond float64 `validate:"gte=0"`
	Burst         int     `validate:"gte=1"`
}

// EngineConfig tunes schedule generation.
type EngineConfig struct {
	StrictCombinations bool
}

// MetricsConfig exposes Prometheus metrics when Addr is set.
type MetricsConfig struct {
	Addr string
}

// ExportConfig places exported calendars on real dates.
type ExportConfig struct {
	TermStart time.Time
	TermWeeks int `validate:"gte=1,lte=52"`
	Timezone  string
	Location  *time.Location `validate:"required"`
}

// Term returns the export term described by the configuration
func (c ExportConfig) Term() export.Term {
	return export.Term{Start: c.TermStart, Weeks: c.TermWeeks, Location: c.Location}
}

// Load reads envFile (when it exists) and the process environment, the latter taking
// precedence, and validates the result.
func Load(envFile string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, apperrors.Wrap(err, apperrors.ErrInvalidConfig.Code, fmt.Sprintf("cannot parse %s", envFile))
			}
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				var notFound viper.ConfigFileNotFoundError
				if !errors.As(err, &notFound) {
					return nil, apperrors.Wrap(err, apperrors.ErrInvalidConfig.Code, fmt.Sprintf("cannot read %s", envFile))
				}
			}
		}
	}

	cfg := &Config{}
	cfg.Env = v.GetString("ENV")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Provider = ProviderConfig{
		Timeout:       parseDuration(v.GetString("PROVIDER_TIMEOUT"), 15*time.Second),
		UserAgent:     v.GetString("PROVIDER_USER_AGENT"),
		RatePerSecond: v.GetFloat64("PROVIDER_RATE_PER_SECOND"),
		Burst:         v.GetInt("PROVIDER_BURST"),
	}

	cfg.Engine = EngineConfig{
		StrictCombinations: v.GetBool("ENGINE_STRICT_COMBINATIONS"),
	}

	cfg.Metrics = MetricsConfig{
		Addr: v.GetString("METRICS_ADDR"),
	}

	exportConfig, err := loadExport(v)
	if err != nil {
		return nil, err
	}
	cfg.Export = exportConfig

	if err := validator.New().Struct(cfg); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInvalidConfig.Code, "invalid configuration")
	}
	return cfg, nil
}

func loadExport(v *viper.Viper) (ExportConfig, error) {
	cfg := ExportConfig{
		TermWeeks: v.GetInt("EXPORT_TERM_WEEKS"),
		Timezone:  v.GetString("EXPORT_TIMEZONE"),
		Location:  time.Local,
	}
	if cfg.Timezone != "" {
		location, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return ExportConfig{}, apperrors.Wrap(err, apperrors.ErrInvalidConfig.Code, fmt.Sprintf("unknown EXPORT_TIMEZONE %q", cfg.Timezone))
		}
		cfg.Location = location
	}
	if raw := strings.TrimSpace(v.GetString("EXPORT_TERM_START")); raw != "" {
		start, err := time.ParseInLocation(time.DateOnly, raw, cfg.Location)
		if err != nil {
			return ExportConfig{}, apperrors.Wrap(err, apperrors.ErrInvalidConfig.Code, fmt.Sprintf("EXPORT_TERM_START %q is not a YYYY-MM-DD date", raw))
		}
		cfg.TermStart = start
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("PROVIDER_TIMEOUT", "15s")
	v.SetDefault("PROVIDER_USER_AGENT", "sectionplanner/1.0")
	v.SetDefault("PROVIDER_RATE_PER_SECOND", 1)
	v.SetDefault("PROVIDER_BURST", 1)

	v.SetDefault("ENGINE_STRICT_COMBINATIONS", false)
	v.SetDefault("METRICS_ADDR", "")

	v.SetDefault("EXPORT_TERM_START", "")
	v.SetDefault("EXPORT_TERM_WEEKS", 13)
	v.SetDefault("EXPORT_TIMEZONE", "")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}
