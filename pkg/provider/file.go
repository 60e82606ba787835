package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	apperrors "github.com/limaJavier/sectionplanner/pkg/errors"
	"github.com/limaJavier/sectionplanner/pkg/model"
)

type sectionRecord struct {
	CRN        uint64 `mapstructure:"crn" validate:"required"`
	Section    string `mapstructure:"section" validate:"required"`
	Time       string `mapstructure:"time" validate:"required"`
	Days       string `mapstructure:"days"`
	Location   string `mapstructure:"location"`
	Instructor string `mapstructure:"instructor"`
}

type courseRecord struct {
	Title    string          `mapstructure:"title" validate:"required"`
	Code     string          `mapstructure:"code" validate:"required"`
	Sections []sectionRecord `mapstructure:"sections" validate:"required,min=1,dive"`
}

type courseFile struct {
	Courses []courseRecord `mapstructure:"courses" validate:"required,min=1,dive"`
}

// FileProvider reads courses from local files: JSON or YAML course lists, or a saved
// registrar page (.html, .htm)
type FileProvider struct {
	validator *validator.Validate
	logger    *zap.Logger
}

func NewFileProvider(validate *validator.Validate, logger *zap.Logger) *FileProvider {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileProvider{validator: validate, logger: logger}
}

func (provider *FileProvider) Courses(_ context.Context, path string) ([]*model.CourseOffering, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrFetchFailed.Code, fmt.Sprintf("cannot read %s", path))
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		course, err := ParseCoursePage(bytes.NewReader(content), provider.logger)
		if err != nil {
			return nil, err
		}
		return []*model.CourseOffering{course}, nil
	case ".yaml", ".yml":
		return provider.decode(path, content, yaml.Unmarshal)
	default:
		return provider.decode(path, content, json.Unmarshal)
	}
}

func (provider *FileProvider) decode(path string, content []byte, unmarshal func([]byte, any) error) ([]*model.CourseOffering, error) {
	var document map[string]any
	if err := unmarshal(content, &document); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInconsistentCourseData.Code, fmt.Sprintf("cannot decode %s", path))
	}

	var file courseFile
	if err := mapstructure.Decode(document, &file); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInconsistentCourseData.Code, fmt.Sprintf("unexpected layout in %s", path))
	}
	if err := provider.validator.Struct(file); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInconsistentCourseData.Code, fmt.Sprintf("invalid course file %s", path))
	}

	courses := make([]*model.CourseOffering, 0, len(file.Courses))
	for _, record := range file.Courses {
		inputs := lo.Map(record.Sections, func(section sectionRecord, _ int) model.SectionInput {
			return model.SectionInput{
				CRN:        section.CRN,
				Code:       section.Section,
				CourseCode: record.Code,
				TimeRange:  section.Time,
				Days:       section.Days,
				Location:   section.Location,
				Instructor: section.Instructor,
			}
		})
		course, err := buildCourse(record.Title, record.Code, inputs, provider.logger)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	provider.logger.Info("course file loaded", zap.String("path", path), zap.Int("courses", len(courses)))
	return courses, nil
}
