// Package render draws timetables as fixed-width text calendars.
package render

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/limaJavier/sectionplanner/pkg/model"
)

const (
	rowMinutes = 10
	cellWidth  = 17 // Text width inside a section block
	labelWidth = 11 // Time label column, including its margins
)

var (
	headerTop    = strings.Repeat(" ", labelWidth) + "┏" + strings.Repeat(strings.Repeat("━", cellWidth+2)+"┳", 4) + strings.Repeat("━", cellWidth+2) + "┓"
	headerBottom = strings.Repeat(" ", labelWidth) + "┡" + strings.Repeat(strings.Repeat("━", cellWidth+2)+"╇", 4) + strings.Repeat("━", cellWidth+2) + "┩"
	footer       = strings.Repeat(" ", labelWidth) + "└" + strings.Repeat(strings.Repeat("─", cellWidth+2)+"┴", 4) + strings.Repeat("─", cellWidth+2) + "┘"
	blockTop     = "╭" + strings.Repeat("─", cellWidth) + "╮"
	blockBottom  = "╰" + strings.Repeat("─", cellWidth) + "╯"
	emptyCell    = strings.Repeat(" ", cellWidth+2)
)

// Calendar writes a Monday to Friday grid of the timetable in 10-minute rows, from its
// earliest start (moved back to the hour unless it falls on :00 or :30) to its latest end.
// Each section is drawn as a block headed by its course and section code, followed by its
// location, its instructor and whether it is locked.
func Calendar(w io.Writer, schedule model.CombinedSchedule) error {
	_, err := io.WriteString(w, CalendarString(schedule))
	return err
}

// CalendarString is Calendar into a string
func CalendarString(schedule model.CombinedSchedule) string {
	var builder strings.Builder
	builder.WriteString(headerTop + "\n")
	builder.WriteString(strings.Repeat(" ", labelWidth) + "┃")
	for _, day := range model.Weekdays {
		builder.WriteString(pad(" "+day.String(), cellWidth+2) + "┃")
	}
	builder.WriteString("\n" + headerBottom + "\n")
	builder.WriteString(strings.Repeat(" ", labelWidth) + "│" + strings.Repeat(emptyCell+"│", len(model.Weekdays)) + "\n")

	sections := schedule.Sections()
	if len(sections) > 0 {
		first := schedule.EarliestStart()
		if first.Minute != 0 && first.Minute != 30 {
			first = model.Clock(first.Hour, 0)
		}
		last := schedule.LatestEnd().Minutes()

		for current := first.Minutes(); current <= last; current += rowMinutes {
			writeRow(&builder, sections, current)
		}
	}

	builder.WriteString(footer + "\n")
	return builder.String()
}

func writeRow(builder *strings.Builder, sections []*model.Section, current int) {
	if current%30 == 0 {
		label := model.TimeOfDay{Hour: current / 60, Minute: current % 60}
		builder.WriteString(" " + label.String() + "  ")
	} else {
		builder.WriteString(strings.Repeat(" ", labelWidth))
	}

	builder.WriteString("│")
	for _, day := range model.Weekdays {
		cell := emptyCell
		for _, section := range sections {
			if line, ok := sectionLine(section, day, current); ok {
				cell = line
				break
			}
		}
		builder.WriteString(cell + "│")
	}
	builder.WriteString("\n")
}

// Returns what a section shows in the row starting at current, if it shows anything
func sectionLine(section *model.Section, day model.Weekday, current int) (string, bool) {
	if !section.Days.Contains(day) {
		return "", false
	}
	start, end := section.Start.Minutes(), section.End.Minutes()
	next := current + rowMinutes

	if current <= start && start < next {
		return blockTop, true
	}
	if current <= end && end < next {
		return blockBottom, true
	}
	if current < start || current > end {
		return "", false
	}

	var text string
	switch {
	case current <= start+rowMinutes:
		text = " " + section.CourseCode + " " + section.Code
	case current <= start+2*rowMinutes:
		text = " " + lastRunes(section.Location, 15) + " "
	case current <= start+3*rowMinutes:
		text = " " + firstRunes(section.Instructor, 15) + " "
	case current <= start+4*rowMinutes && section.Locked():
		text = " (locked)"
	}
	return "│" + pad(text, cellWidth) + "│", true
}

// Pads or cuts text to exactly width runes
func pad(text string, width int) string {
	length := utf8.RuneCountInString(text)
	if length >= width {
		return firstRunes(text, width)
	}
	return text + strings.Repeat(" ", width-length)
}

func firstRunes(text string, count int) string {
	runes := []rune(text)
	if len(runes) <= count {
		return text
	}
	return string(runes[:count])
}

func lastRunes(text string, count int) string {
	runes := []rune(text)
	if len(runes) <= count {
		return text
	}
	return string(runes[len(runes)-count:])
}
