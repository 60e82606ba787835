package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/limaJavier/sectionplanner/internal/config"
	"github.com/limaJavier/sectionplanner/internal/logger"
	"github.com/limaJavier/sectionplanner/internal/metrics"
	"github.com/limaJavier/sectionplanner/internal/shell"
	"github.com/limaJavier/sectionplanner/pkg/export"
	"github.com/limaJavier/sectionplanner/pkg/model"
	"github.com/limaJavier/sectionplanner/pkg/provider"
	"github.com/limaJavier/sectionplanner/pkg/render"
)

func main() {
	// Define arguments
	envFilePtr := flag.String("env", ".env", "Path to an optional .env file")
	sourcesPtr := flag.String("source", "", "Comma-separated course sources: schedule listing page addresses or course files (.json, .yaml, .html)")
	batchPtr := flag.Bool("batch", false, "Print the schedules of the given sources and exit instead of starting the interactive shell")
	sortPtr := flag.String("sort", "", "Comma-separated sort criteria, from the least to the most important: \"l\" (latest start), \"f\" (earliest finish), \"d\" (days off)")
	showPtr := flag.Int("show", 1, "Number of schedules drawn in batch mode")
	exportPtr := flag.String("export", "", "File the schedules are exported to in batch mode (.csv, .pdf, .xlsx hold every schedule; .ics holds the first sorted one)")
	flag.Parse()

	sources := splitList(*sourcesPtr)
	criteria := lo.Map(splitList(*sortPtr), func(text string, _ int) model.Criterion {
		criterion, err := model.ParseCriterion(text)
		if err != nil {
			log.Fatalf("%v", err)
		}
		return criterion
	})

	// Validate arguments
	if *batchPtr && len(sources) == 0 {
		log.Fatal("batch mode needs at least one -source")
	} else if *showPtr < 0 {
		log.Fatalf("show must not be negative: %v", *showPtr)
	} else if *exportPtr != "" {
		if _, err := export.ExporterFor(*exportPtr, export.Term{}); err != nil {
			log.Fatalf("%v", err)
		}
	}

	cfg, err := config.Load(*envFilePtr)
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("cannot build logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	metrics.Register()
	if cfg.Metrics.Addr != "" {
		serveMetrics(cfg.Metrics.Addr, appLogger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Initialize engines
	router := provider.NewRouter(
		provider.NewHTTPProvider(provider.HTTPOptions{
			Timeout:       cfg.Provider.Timeout,
			UserAgent:     cfg.Provider.UserAgent,
			RatePerSecond: cfg.Provider.RatePerSecond,
			Burst:         cfg.Provider.Burst,
		}, appLogger),
		provider.NewFileProvider(validator.New(), appLogger),
	)
	enumerator := model.NewEnumerator(model.NewCombinationGenerator(cfg.Engine.StrictCombinations), appLogger)

	if *batchPtr {
		courses := loadCourses(ctx, router, sources)
		if err := runBatch(os.Stdout, enumerator, courses, criteria, *showPtr, *exportPtr, cfg.Export.Term()); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	session := shell.New(os.Stdin, os.Stdout, shell.Options{
		Provider:   router,
		Enumerator: enumerator,
		Term:       cfg.Export.Term(),
		Logger:     appLogger,
	})
	session.AddCourses(loadCourses(ctx, router, sources)...)
	if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("an error occurred in the shell: %v", err)
	}
}

func splitList(text string) []string {
	return lo.Compact(lo.Map(strings.Split(text, ","), func(item string, _ int) string { return strings.TrimSpace(item) }))
}

func loadCourses(ctx context.Context, source provider.Provider, sources []string) []*model.CourseOffering {
	courses := make([]*model.CourseOffering, 0, len(sources))
	for _, location := range sources {
		loaded, err := source.Courses(ctx, location)
		kind := "file"
		if strings.HasPrefix(location, "http") {
			kind = "http"
		}
		if err != nil {
			metrics.IncCoursesLoaded(kind, "error")
			log.Fatalf("cannot load courses from %v: %v", location, err)
		}
		metrics.IncCoursesLoaded(kind, "ok")
		courses = append(courses, loaded...)
	}
	return courses
}

func runBatch(out io.Writer, enumerator model.Enumerator, courses []*model.CourseOffering, criteria []model.Criterion, show int, exportPath string, term export.Term) error {
	started := time.Now()
	result := enumerator.Enumerate(courses)
	metrics.ObserveEnumeration(result.Candidates, len(result.Schedules), time.Since(started))

	// Verify timetable correctness
	for _, schedule := range result.Schedules {
		if !enumerator.Verify(schedule) {
			return fmt.Errorf("enumeration produced a conflicting schedule: %v", schedule)
		}
	}

	if err := model.Sort(result.Schedules, criteria...); err != nil {
		return err
	}

	fmt.Fprintf(out, "Courses: %v\n", len(result.Courses))
	fmt.Fprintf(out, "Combinations: %v\n", result.Combinations)
	fmt.Fprintf(out, "Candidates: %v\n", result.Candidates)
	fmt.Fprintf(out, "Schedules: %v\n", len(result.Schedules))
	if len(result.Schedules) == 0 {
		return nil
	}

	summary := model.Summarize(result.Schedules)
	fmt.Fprintf(out, "Latest possible start time: %s\n", summary.LatestStart)
	fmt.Fprintf(out, "Earliest possible finish time: %s\n", summary.EarliestFinish)
	fmt.Fprintf(out, "Number of schedules with at least one day off: %d\n", summary.WithDayOff)

	for _, schedule := range result.Schedules[:min(show, len(result.Schedules))] {
		if err := render.Calendar(out, schedule); err != nil {
			return err
		}
		for _, course := range schedule.CourseSchedules() {
			fmt.Fprintln(out, course.Summary())
		}
	}

	if exportPath == "" {
		return nil
	}
	format := strings.ToLower(filepath.Ext(exportPath))
	exported := result.Schedules
	if format == ".ics" {
		// A calendar holds a single timetable
		exported = exported[:1]
	}
	if err := export.ExportFile(exportPath, exported, term); err != nil {
		metrics.IncExportsWritten(format, "error")
		return err
	}
	metrics.IncExportsWritten(format, "ok")
	fmt.Fprintf(out, "Saved %d schedule(s) to %s\n", len(exported), exportPath)
	return nil
}

func serveMetrics(addr string, appLogger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		appLogger.Info("metrics listening", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("metrics server stopped", zap.Error(err))
		}
	}()
}
