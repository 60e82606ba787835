package model

// EarliestStart returns the earliest start time of any section in the timetable.
// Panics on a timetable without sections.
func (schedule CombinedSchedule) EarliestStart() TimeOfDay {
	schedule.mustHaveSections()
	earliest := schedule.sections[0].Start
	for _, section := range schedule.sections[1:] {
		if section.Start.Before(earliest) {
			earliest = section.Start
		}
	}
	return earliest
}

// LatestEnd returns the latest end time of any section in the timetable.
// Panics on a timetable without sections.
func (schedule CombinedSchedule) LatestEnd() TimeOfDay {
	schedule.mustHaveSections()
	latest := schedule.sections[0].End
	for _, section := range schedule.sections[1:] {
		if section.End.After(latest) {
			latest = section.End
		}
	}
	return latest
}

// DaysOff returns how many of the five weekdays have no section at all
func (schedule CombinedSchedule) DaysOff() int {
	var busy DaySet
	for _, section := range schedule.sections {
		busy = busy.Union(section.Days)
	}
	return len(Weekdays) - busy.Len()
}

func (schedule CombinedSchedule) mustHaveSections() {
	if len(schedule.sections) == 0 {
		panic("combined schedule has no sections")
	}
}

// Summary aggregates the statistics shown before browsing timetables
type Summary struct {
	Count          int
	LatestStart    TimeOfDay // Latest per-timetable earliest start: how late a day can begin
	EarliestFinish TimeOfDay // Earliest per-timetable latest end: how early a day can finish
	WithDayOff     int
}

// Summarize computes the aggregate statistics over timetables; the zero Summary is returned
// for an empty list
func Summarize(schedules []CombinedSchedule) Summary {
	summary := Summary{Count: len(schedules)}
	for i, schedule := range schedules {
		start, end := schedule.EarliestStart(), schedule.LatestEnd()
		if i == 0 || start.After(summary.LatestStart) {
			summary.LatestStart = start
		}
		if i == 0 || end.Before(summary.EarliestFinish) {
			summary.EarliestFinish = end
		}
		if schedule.DaysOff() > 0 {
			summary.WithDayOff++
		}
	}
	return summary
}
