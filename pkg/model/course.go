package model

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	apperrors "github.com/limaJavier/sectionplanner/pkg/errors"
)

// CourseOffering groups the sections of one course by category.
// At most one section per category is locked at any time.
type CourseOffering struct {
	Title  string
	Code   string
	Active bool

	sections [3][]*Section
	locked   [3]bool
}

// NewCourseOffering partitions sections by category, keeping their relative order.
// New offerings are active and have nothing locked.
func NewCourseOffering(title, code string, sections []*Section) *CourseOffering {
	course := &CourseOffering{
		Title:  title,
		Code:   code,
		Active: true,
	}
	for _, category := range Categories {
		course.sections[category] = lo.Filter(sections, func(section *Section, _ int) bool {
			return section.Category == category
		})
	}
	return course
}

// Sections returns the sections of the given category in source order.
// The slice is a copy; the sections themselves are shared.
func (course *CourseOffering) Sections(category Category) []*Section {
	if !category.valid() {
		return nil
	}
	return slices.Clone(course.sections[category])
}

// AllSections returns lectures, then labs, then tutorials
func (course *CourseOffering) AllSections() []*Section {
	return lo.Flatten(course.sections[:])
}

// SectionCount returns the number of sections across all categories
func (course *CourseOffering) SectionCount() int {
	return len(course.sections[Lecture]) + len(course.sections[Lab]) + len(course.sections[Tutorial])
}

// Locked reports whether a section of the category is pinned
func (course *CourseOffering) Locked(category Category) bool {
	return category.valid() && course.locked[category]
}

// LockedSection returns the pinned section of the category, if any
func (course *CourseOffering) LockedSection(category Category) (*Section, bool) {
	if !course.Locked(category) {
		return nil, false
	}
	return lo.Find(course.sections[category], func(section *Section) bool { return section.locked })
}

// ToggleLock unlocks the targeted section if it is locked; otherwise it locks it and
// unlocks any other section of the same category. Other categories are untouched.
func (course *CourseOffering) ToggleLock(category Category, index int) error {
	target, err := course.section(category, index)
	if err != nil {
		return err
	}

	if target.locked {
		target.locked = false
		course.locked[category] = false
		return nil
	}

	for _, section := range course.sections[category] {
		section.locked = false
	}
	target.locked = true
	course.locked[category] = true
	return nil
}

// DeleteSection removes a section, clearing the category lock if it was the locked one
func (course *CourseOffering) DeleteSection(category Category, index int) error {
	target, err := course.section(category, index)
	if err != nil {
		return err
	}

	if target.locked {
		course.locked[category] = false
	}
	course.sections[category] = slices.Delete(slices.Clone(course.sections[category]), index, index+1)
	return nil
}

// ToggleActive includes or excludes the course from enumeration
func (course *CourseOffering) ToggleActive() {
	course.Active = !course.Active
}

// Locate maps a flat index (lectures, then labs, then tutorials) to a category and an
// index within it
func (course *CourseOffering) Locate(flatIndex int) (Category, int, error) {
	if flatIndex >= 0 {
		offset := flatIndex
		for _, category := range Categories {
			if offset < len(course.sections[category]) {
				return category, offset, nil
			}
			offset -= len(course.sections[category])
		}
	}
	return 0, 0, apperrors.Clonef(apperrors.ErrInvalidSelection, "section %d does not exist in %v (it has %d sections)", flatIndex, course.Code, course.SectionCount())
}

func (course *CourseOffering) section(category Category, index int) (*Section, error) {
	if !category.valid() {
		return nil, apperrors.Clonef(apperrors.ErrInvalidSelection, "unknown category %v", category)
	}
	sections := course.sections[category]
	if index < 0 || index >= len(sections) {
		return nil, apperrors.Clonef(apperrors.ErrInvalidSelection, "%v %d does not exist in %v (it has %d)", category, index, course.Code, len(sections))
	}
	return sections[index], nil
}

func (course *CourseOffering) String() string {
	status := "active"
	if !course.Active {
		status = "inactive"
	}
	return fmt.Sprintf("%s: %s (%s)", course.Code, course.Title, status)
}
