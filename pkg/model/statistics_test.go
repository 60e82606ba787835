package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Builds a one-course timetable out of lectures only
func timetable(t *testing.T, code string, sections ...*Section) CombinedSchedule {
	t.Helper()
	course := NewCourseOffering(code, code, sections)
	combinations := NewCombinationGenerator(false).Combinations(course)
	require.Len(t, combinations, len(sections))
	return newCombinedSchedule(combinations[:1])
}

func TestScheduleStatistics(t *testing.T) {
	// Arrange
	x := NewCourseOffering("Course X", "X 100", []*Section{
		newSection(t, "X 100", 1, "A01", "mw", "10:00 am - 10:50 am"),
		newSection(t, "X 100", 2, "B01", "r", "2:30 pm - 4:20 pm"),
	})
	y := NewCourseOffering("Course Y", "Y 100", []*Section{
		newSection(t, "Y 100", 3, "A01", "m", "8:30 am - 9:20 am"),
	})
	result := NewEnumerator(nil, nil).Enumerate([]*CourseOffering{x, y})
	require.Len(t, result.Schedules, 1)
	schedule := result.Schedules[0]

	// Assert
	assert.Equal(t, Clock(8, 30), schedule.EarliestStart())
	assert.Equal(t, Clock(16, 20), schedule.LatestEnd())
	assert.Equal(t, 2, schedule.DaysOff())
	assert.Equal(t, "X 100  A01: [1]  B01: [2]", schedule.CourseSchedules()[0].Summary())
}

func TestStatisticsPanicWithoutSections(t *testing.T) {
	empty := newCombinedSchedule(nil)
	assert.Panics(t, func() { empty.EarliestStart() })
	assert.Panics(t, func() { empty.LatestEnd() })
	assert.Equal(t, 5, empty.DaysOff())
}

func TestSummarize(t *testing.T) {
	// Arrange
	schedules := []CombinedSchedule{
		timetable(t, "A", newSection(t, "A", 1, "A01", "mtwrf", "8:30 am - 9:20 am")),
		timetable(t, "B", newSection(t, "B", 2, "A01", "mw", "11:30 am - 12:20 pm")),
		timetable(t, "C", newSection(t, "C", 3, "A01", "tr", "9:00 am - 5:50 pm")),
	}

	// Act
	summary := Summarize(schedules)

	// Assert
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, Clock(11, 30), summary.LatestStart)
	assert.Equal(t, Clock(9, 20), summary.EarliestFinish)
	assert.Equal(t, 2, summary.WithDayOff)
	assert.Equal(t, Summary{}, Summarize(nil))
}
