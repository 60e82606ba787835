// Package provider loads course offerings from registrar pages and local course files.
package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	apperrors "github.com/limaJavier/sectionplanner/pkg/errors"
	"github.com/limaJavier/sectionplanner/pkg/model"
)

// Provider loads the courses described by a source (a URL or a file path)
type Provider interface {
	Courses(ctx context.Context, source string) ([]*model.CourseOffering, error)
}

// Router sends http(s) sources to the HTTP provider and everything else to the file provider
type Router struct {
	http  Provider
	files Provider
}

func NewRouter(http, files Provider) *Router {
	return &Router{http: http, files: files}
}

func (router *Router) Courses(ctx context.Context, source string) ([]*model.CourseOffering, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, apperrors.Clone(apperrors.ErrInvalidSelection, "no course source given")
	}
	lower := strings.ToLower(source)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return router.http.Courses(ctx, source)
	}
	return router.files.Courses(ctx, source)
}

// Builds a course from raw section records. Sections that are neither lectures, labs nor
// tutorials, or that have no scheduled time, are skipped with a warning; repeated CRNs
// make the whole course inconsistent.
func buildCourse(title, code string, inputs []model.SectionInput, logger *zap.Logger) (*model.CourseOffering, error) {
	if duplicates := lo.FindDuplicatesBy(inputs, func(input model.SectionInput) uint64 { return input.CRN }); len(duplicates) > 0 {
		return nil, apperrors.Clonef(apperrors.ErrInconsistentCourseData, "%s lists CRN %d more than once", code, duplicates[0].CRN)
	}

	sections := make([]*model.Section, 0, len(inputs))
	for _, input := range inputs {
		if _, err := model.CategoryOf(input.Code); err != nil {
			logger.Warn("skipping section outside lecture, lab and tutorial",
				zap.String("course", code), zap.String("section", input.Code), zap.Uint64("crn", input.CRN))
			continue
		}
		if strings.EqualFold(strings.TrimSpace(input.TimeRange), "TBA") {
			logger.Warn("skipping section without a scheduled time",
				zap.String("course", code), zap.String("section", input.Code), zap.Uint64("crn", input.CRN))
			continue
		}

		section, err := model.NewSection(input)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", code, err)
		}
		sections = append(sections, section)
	}
	if len(sections) == 0 {
		return nil, apperrors.Clonef(apperrors.ErrInconsistentCourseData, "%s has no schedulable sections", code)
	}

	logger.Debug("course built", zap.String("course", code), zap.Int("sections", len(sections)))
	return model.NewCourseOffering(title, code, sections), nil
}
