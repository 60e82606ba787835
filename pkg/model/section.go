package model

import (
	"fmt"
	"strings"

	apperrors "github.com/limaJavier/sectionplanner/pkg/errors"
)

// Category classifies a section as a lecture, a lab or a tutorial
type Category uint8

const (
	Lecture Category = iota
	Lab
	Tutorial
)

// Categories lists every category in combination order (lecture, lab, tutorial)
var Categories = []Category{Lecture, Lab, Tutorial}

var categoryNames = [...]string{"lecture", "lab", "tutorial"}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", c)
}

func (c Category) valid() bool {
	return int(c) < len(categoryNames)
}

// CategoryOf derives the category from the first character of a registrar section code:
// "A" lecture, "B" lab, "T" tutorial
func CategoryOf(sectionCode string) (Category, error) {
	if sectionCode == "" {
		return 0, apperrors.Clone(apperrors.ErrInconsistentCourseData, "empty section code")
	}
	switch sectionCode[0] {
	case 'A':
		return Lecture, nil
	case 'B':
		return Lab, nil
	case 'T':
		return Tutorial, nil
	}
	return 0, apperrors.Clonef(apperrors.ErrInconsistentCourseData, "section code %q is neither a lecture (A), a lab (B) nor a tutorial (T)", sectionCode)
}

// SectionInput carries the raw registrar fields a Section is built from
type SectionInput struct {
	CRN        uint64
	Code       string
	CourseCode string
	TimeRange  string
	Days       string
	Location   string
	Instructor string
}

// Section is one scheduled meeting of a course. Every field is fixed at construction;
// only the lock is ever changed afterwards, through CourseOffering.ToggleLock.
type Section struct {
	CRN        uint64
	Code       string
	Category   Category
	CourseCode string
	Start      TimeOfDay
	End        TimeOfDay
	Days       DaySet
	Location   string
	Instructor string

	locked bool
}

// NewSection validates the raw fields and builds a Section
func NewSection(input SectionInput) (*Section, error) {
	category, err := CategoryOf(input.Code)
	if err != nil {
		return nil, err
	}

	start, end, err := ParseTimeRange(input.TimeRange)
	if err != nil {
		return nil, fmt.Errorf("section %v (%v): %w", input.Code, input.CRN, err)
	}
	if end.Before(start) {
		return nil, apperrors.Clonef(apperrors.ErrMalformedTimeRange, "section %v (%v) ends at %v before it starts at %v", input.Code, input.CRN, end, start)
	}

	return &Section{
		CRN:        input.CRN,
		Code:       input.Code,
		Category:   category,
		CourseCode: input.CourseCode,
		Start:      start,
		End:        end,
		Days:       ParseDaySet(input.Days),
		Location:   strings.TrimSpace(input.Location),
		Instructor: strings.Join(strings.Fields(input.Instructor), " "),
	}, nil
}

// Locked reports whether the user pinned this section
func (section *Section) Locked() bool {
	return section.locked
}

func (section *Section) String() string {
	return fmt.Sprintf("%d %s: %s from %s to %s with %s in %s",
		section.CRN,
		section.Code,
		section.Days,
		section.Start,
		section.End,
		section.Instructor,
		section.Location,
	)
}

// Compatible reports whether two sections can both be attended.
// Sections on disjoint days never conflict; otherwise they conflict iff their closed
// intervals overlap, so a section ending at 10:50 conflicts with one starting at 10:50.
// Callers must not compare a section with itself.
func Compatible(a, b *Section) bool {
	if !a.Days.Intersects(b.Days) {
		return true
	}
	latestStart := a.Start
	if b.Start.After(latestStart) {
		latestStart = b.Start
	}
	earliestEnd := a.End
	if b.End.Before(earliestEnd) {
		earliestEnd = b.End
	}
	return latestStart.After(earliestEnd)
}
