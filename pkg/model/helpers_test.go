package model

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func newSection(t *testing.T, courseCode string, crn uint64, code, days, timeRange string) *Section {
	t.Helper()
	section, err := NewSection(SectionInput{
		CRN:        crn,
		Code:       code,
		CourseCode: courseCode,
		TimeRange:  timeRange,
		Days:       days,
		Location:   "ECS 125",
		Instructor: "Ada Lovelace",
	})
	require.NoError(t, err)
	return section
}

// Builds sections on random days starting between 8:00 and 16:30, lasting 50 or 80 minutes
func randomSections(t *testing.T, courseCode string, category Category, count int, nextCRN *uint64) []*Section {
	t.Helper()
	prefix := [...]string{"A", "B", "T"}[category]
	sections := make([]*Section, 0, count)
	for i := range count {
		var days DaySet
		for days.Empty() {
			days = DaySet(rand.Intn(32))
		}
		start := Clock(8+rand.Intn(9), []int{0, 30}[rand.Intn(2)])
		end := start.Add([]int{50, 80}[rand.Intn(2)])
		*nextCRN++
		sections = append(sections, newSection(t, courseCode, *nextCRN, fmt.Sprintf("%s%02d", prefix, i+1), days.String(), clockRange(start, end)))
	}
	return sections
}

func clockRange(start, end TimeOfDay) string {
	return fmt.Sprintf("%s - %s", start, end)
}

func randomCourse(t *testing.T, code string, nextCRN *uint64) *CourseOffering {
	t.Helper()
	var sections []*Section
	for _, category := range Categories {
		sections = append(sections, randomSections(t, code, category, rand.Intn(4), nextCRN)...)
	}
	return NewCourseOffering("Random "+code, code, sections)
}
