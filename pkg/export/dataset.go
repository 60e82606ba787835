package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/limaJavier/sectionplanner/pkg/model"
)

// Dataset defines tabular export content.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// Records returns the rows as ordered records, one value per header.
func (data Dataset) Records() [][]string {
	return lo.Map(data.Rows, func(row map[string]string, _ int) []string {
		return lo.Map(data.Headers, func(header string, _ int) string { return row[header] })
	})
}

var sectionHeaders = []string{"Schedule", "Course", "Section", "Category", "CRN", "Days", "Start", "End", "Location", "Instructor", "Locked"}

var summaryHeaders = []string{"Schedule", "Earliest start", "Latest end", "Days off", "Sections"}

// SectionDataset lists every section of every timetable, numbering timetables from 1.
func SectionDataset(schedules []model.CombinedSchedule) Dataset {
	data := Dataset{Headers: sectionHeaders}
	for i, schedule := range schedules {
		for _, section := range schedule.Sections() {
			data.Rows = append(data.Rows, map[string]string{
				"Schedule":   strconv.Itoa(i + 1),
				"Course":     section.CourseCode,
				"Section":    section.Code,
				"Category":   section.Category.String(),
				"CRN":        strconv.FormatUint(section.CRN, 10),
				"Days":       section.Days.String(),
				"Start":      section.Start.String(),
				"End":        section.End.String(),
				"Location":   section.Location,
				"Instructor": section.Instructor,
				"Locked":     strconv.FormatBool(section.Locked()),
			})
		}
	}
	return data
}

// SummaryDataset has one row per timetable with its statistics and chosen sections.
func SummaryDataset(schedules []model.CombinedSchedule) Dataset {
	data := Dataset{Headers: summaryHeaders}
	for i, schedule := range schedules {
		if len(schedule.Sections()) == 0 {
			continue
		}
		summaries := lo.Map(schedule.CourseSchedules(), func(course model.CourseSchedule, _ int) string { return course.Summary() })
		data.Rows = append(data.Rows, map[string]string{
			"Schedule":       strconv.Itoa(i + 1),
			"Earliest start": schedule.EarliestStart().String(),
			"Latest end":     schedule.LatestEnd().String(),
			"Days off":       fmt.Sprint(schedule.DaysOff()),
			"Sections":       strings.Join(summaries, "; "),
		})
	}
	return data
}
