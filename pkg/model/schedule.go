package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// CourseSchedule is one concrete choice of at most one section per category for a course
type CourseSchedule struct {
	Course *CourseOffering

	slots [3]*Section
}

// Section returns the chosen section of a category, or nil when the category is absent
func (schedule CourseSchedule) Section(category Category) *Section {
	if !category.valid() {
		return nil
	}
	return schedule.slots[category]
}

// Sections returns the chosen sections in category order, skipping absent categories
func (schedule CourseSchedule) Sections() []*Section {
	return lo.Compact(schedule.slots[:])
}

// CompatibleWith reports whether no section of one schedule conflicts with a section
// of the other
func (schedule CourseSchedule) CompatibleWith(other CourseSchedule) bool {
	for _, ours := range schedule.slots {
		if ours == nil {
			continue
		}
		for _, theirs := range other.slots {
			if theirs != nil && !Compatible(ours, theirs) {
				return false
			}
		}
	}
	return true
}

// Summary lists the course code with each chosen section and its CRN
func (schedule CourseSchedule) Summary() string {
	var builder strings.Builder
	builder.WriteString(schedule.Course.Code)
	for _, section := range schedule.Sections() {
		fmt.Fprintf(&builder, "  %s: [%d]", section.Code, section.CRN)
	}
	return builder.String()
}

func (schedule CourseSchedule) String() string {
	parts := lo.Map(schedule.Sections(), func(section *Section, _ int) string { return section.String() })
	return fmt.Sprintf("%s: %s", schedule.Course.Code, strings.Join(parts, " "))
}

// CombinedSchedule is one full timetable: one CourseSchedule per active course, with no
// conflicts between sections of different courses. It is never mutated once built.
type CombinedSchedule struct {
	courses  []CourseSchedule
	sections []*Section
}

func newCombinedSchedule(courses []CourseSchedule) CombinedSchedule {
	return CombinedSchedule{
		courses:  courses,
		sections: lo.FlatMap(courses, func(schedule CourseSchedule, _ int) []*Section { return schedule.Sections() }),
	}
}

// CourseSchedules returns the per-course choices in course order
func (schedule CombinedSchedule) CourseSchedules() []CourseSchedule {
	return schedule.courses
}

// Sections returns every section of the timetable
func (schedule CombinedSchedule) Sections() []*Section {
	return schedule.sections
}

func (schedule CombinedSchedule) String() string {
	parts := lo.Map(schedule.courses, func(course CourseSchedule, _ int) string { return "[" + course.String() + "]" })
	return strings.Join(parts, "  ")
}
