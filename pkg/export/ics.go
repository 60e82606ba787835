package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/limaJavier/sectionplanner/pkg/model"
)

const productID = "-//sectionplanner//timetable export//EN"

var icsDays = [...]string{"MO", "TU", "WE", "TH", "FR"}

// Term places weekly sections on real dates: classes start on the first matching weekday
// on or after Start and repeat every week for Weeks weeks.
type Term struct {
	Start    time.Time
	Weeks    int
	Location *time.Location
}

// ICSExporter writes a single timetable as an iCalendar file with one weekly recurring
// event per section. Event UIDs depend only on the CRN and the term start, so exporting
// the same section twice yields the same event.
type ICSExporter struct {
	term Term
	now  func() time.Time
}

func NewICSExporter(term Term) *ICSExporter {
	if term.Location == nil {
		term.Location = time.Local
	}
	return &ICSExporter{term: term, now: time.Now}
}

func (e *ICSExporter) Export(w io.Writer, schedules []model.CombinedSchedule) error {
	if len(schedules) != 1 {
		return fmt.Errorf("a calendar holds exactly one timetable, got %d", len(schedules))
	}
	if e.term.Start.IsZero() || e.term.Weeks <= 0 {
		return fmt.Errorf("the term start date and length must be set to export a calendar")
	}

	calendar := ics.NewCalendar()
	calendar.SetMethod(ics.MethodPublish)
	calendar.SetProductId(productID)
	calendar.SetXWRTimezone(e.term.Location.String())

	stamp := e.now().UTC()
	for _, section := range schedules[0].Sections() {
		if section.Days.Empty() {
			continue
		}
		first := e.firstMeeting(section)
		until := e.termDay(0).AddDate(0, 0, 7*e.term.Weeks)

		event := calendar.AddEvent(SectionUID(section, e.term))
		event.SetDtStampTime(stamp)
		e.setLocalTime(event, ics.ComponentPropertyDtStart, at(first, section.Start))
		e.setLocalTime(event, ics.ComponentPropertyDtEnd, at(first, section.End))
		event.SetSummary(fmt.Sprintf("%s %s", section.CourseCode, section.Code))
		event.SetLocation(section.Location)
		event.SetDescription(fmt.Sprintf("%s %s (CRN %d) with %s", section.CourseCode, section.Category, section.CRN, section.Instructor))
		event.SetProperty(ics.ComponentPropertyRrule, fmt.Sprintf("FREQ=WEEKLY;BYDAY=%s;UNTIL=%s",
			strings.Join(lo.Map(section.Days.Days(), func(day model.Weekday, _ int) string { return icsDays[day] }), ","),
			until.UTC().Format("20060102T150405Z"),
		))
	}

	_, err := io.WriteString(w, calendar.Serialize())
	return err
}

// Writes t as wall-clock time tagged with the term zone, so weekly recurrences keep their
// weekday and hour across daylight saving changes
func (e *ICSExporter) setLocalTime(event *ics.VEvent, property ics.ComponentProperty, t time.Time) {
	event.SetProperty(property, t.Format("20060102T150405"), &ics.KeyValues{
		Key:   string(ics.ParameterTzid),
		Value: []string{e.term.Location.String()},
	})
}

// Midnight of the term's n-th day in the term location
func (e *ICSExporter) termDay(n int) time.Time {
	year, month, day := e.term.Start.Date()
	return time.Date(year, month, day+n, 0, 0, 0, 0, e.term.Location)
}

// The first day on or after the term start on which the section meets
func (e *ICSExporter) firstMeeting(section *model.Section) time.Time {
	for offset := range 7 {
		day := e.termDay(offset)
		weekday := (int(day.Weekday()) + 6) % 7 // Monday is 0
		if weekday < len(icsDays) && section.Days.Contains(model.Weekday(weekday)) {
			return day
		}
	}
	return e.termDay(0)
}

func at(day time.Time, clock model.TimeOfDay) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour, clock.Minute, 0, 0, day.Location())
}

// SectionUID derives a stable event UID from the section CRN and the term start
func SectionUID(section *model.Section, term Term) string {
	name := fmt.Sprintf("sectionplanner:%d:%s", section.CRN, term.Start.Format(time.DateOnly))
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}
