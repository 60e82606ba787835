package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	apperrors "github.com/limaJavier/sectionplanner/pkg/errors"
)

// TimeOfDay is a wall-clock time with minute resolution
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Clock builds a TimeOfDay, panicking on out-of-range values. Meant for literals in code and tests.
func Clock(hour, minute int) TimeOfDay {
	t := TimeOfDay{Hour: hour, Minute: minute}
	if !t.valid() {
		panic(fmt.Sprintf("invalid clock time %02d:%02d", hour, minute))
	}
	return t
}

func (t TimeOfDay) valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

// Minutes returns the number of minutes since midnight
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Compare returns -1, 0 or 1 following the natural (hour, minute) order
func (t TimeOfDay) Compare(other TimeOfDay) int {
	a, b := t.Minutes(), other.Minutes()
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

func (t TimeOfDay) Before(other TimeOfDay) bool { return t.Compare(other) < 0 }
func (t TimeOfDay) After(other TimeOfDay) bool { return t.Compare(other) > 0 }

// Add returns the time shifted by the given minutes, clamped to the day
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	total := min(max(t.Minutes()+minutes, 0), 23*60+59)
	return TimeOfDay{Hour: total / 60, Minute: total % 60}
}

// String renders the time in 12-hour format, e.g. "02:30 PM"
func (t TimeOfDay) String() string {
	hour := t.Hour % 12
	if hour == 0 {
		hour = 12
	}
	suffix := "AM"
	if t.Hour >= 12 {
		suffix = "PM"
	}
	return fmt.Sprintf("%02d:%02d %s", hour, t.Minute, suffix)
}

var timeRangePattern = regexp.MustCompile(`^\s*(\d\d?):(\d\d) ?([apAP])[mM]? ?- ?(\d\d?):(\d\d) ?([apAP])[mM]?`)

// ParseTimeRange extracts start and end times from free text such as "2:30 PM - 3:50 PM".
// Text that does not match two 12-hour clock times yields ErrMalformedTimeRange.
func ParseTimeRange(text string) (start, end TimeOfDay, err error) {
	match := timeRangePattern.FindStringSubmatch(text)
	if match == nil {
		return TimeOfDay{}, TimeOfDay{}, apperrors.Clonef(apperrors.ErrMalformedTimeRange, "time range %q does not match \"h:mm am - h:mm pm\"", text)
	}

	start, err = clockFromParts(match[1], match[2], match[3])
	if err != nil {
		return TimeOfDay{}, TimeOfDay{}, apperrors.Wrap(err, apperrors.ErrMalformedTimeRange.Code, fmt.Sprintf("invalid start time in %q", text))
	}
	end, err = clockFromParts(match[4], match[5], match[6])
	if err != nil {
		return TimeOfDay{}, TimeOfDay{}, apperrors.Wrap(err, apperrors.ErrMalformedTimeRange.Code, fmt.Sprintf("invalid end time in %q", text))
	}
	return start, end, nil
}

func clockFromParts(hourText, minuteText, meridiem string) (TimeOfDay, error) {
	hour, _ := strconv.Atoi(hourText) // The pattern guarantees digits
	minute, _ := strconv.Atoi(minuteText)
	if hour < 1 || hour > 12 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%s:%s is not a 12-hour clock time", hourText, minuteText)
	}

	// 12 AM is midnight and 12 PM is noon
	pm := strings.EqualFold(meridiem, "p")
	if hour == 12 {
		hour = 0
	}
	if pm {
		hour += 12
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// Weekday is one of the five modelled teaching days
type Weekday uint8

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

// Weekdays lists the modelled days in calendar order
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Registrar day codes: Thursday is "r"
var weekdayCodes = [...]byte{'m', 't', 'w', 'r', 'f'}

func (d Weekday) String() string {
	if int(d) < len(weekdayNames) {
		return weekdayNames[d]
	}
	return fmt.Sprintf("Weekday(%d)", d)
}

// Code returns the single-letter registrar code of the day
func (d Weekday) Code() byte {
	return weekdayCodes[d]
}

// DaySet is an order-insensitive subset of the five weekdays
type DaySet uint8

// NewDaySet builds a set from the given days
func NewDaySet(days ...Weekday) DaySet {
	var set DaySet
	for _, day := range days {
		set |= 1 << day
	}
	return set
}

// ParseDaySet reads single-letter day codes (m, t, w, r, f), case-insensitively.
// Any other character is ignored.
func ParseDaySet(text string) DaySet {
	var set DaySet
	for _, char := range strings.ToLower(text) {
		for day, code := range weekdayCodes {
			if char == rune(code) {
				set |= 1 << day
			}
		}
	}
	return set
}

func (s DaySet) Contains(day Weekday) bool { return s&(1<<day) != 0 }
func (s DaySet) Intersects(other DaySet) bool { return s&other != 0 }
func (s DaySet) Union(other DaySet) DaySet { return s | other }
func (s DaySet) Empty() bool { return s == 0 }

// Len returns the number of days in the set
func (s DaySet) Len() int {
	count := 0
	for _, day := range Weekdays {
		if s.Contains(day) {
			count++
		}
	}
	return count
}

// Days returns the members of the set in calendar order
func (s DaySet) Days() []Weekday {
	days := make([]Weekday, 0, len(Weekdays))
	for _, day := range Weekdays {
		if s.Contains(day) {
			days = append(days, day)
		}
	}
	return days
}

// String renders the set with registrar codes, e.g. "MWF"
func (s DaySet) String() string {
	var builder strings.Builder
	for _, day := range s.Days() {
		builder.WriteByte(day.Code() - 'a' + 'A')
	}
	return builder.String()
}
