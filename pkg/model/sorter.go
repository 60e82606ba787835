package model

import (
	"slices"
	"strings"

	apperrors "github.com/limaJavier/sectionplanner/pkg/errors"
)

// Criterion is one key timetables can be ordered by
type Criterion uint8

const (
	LatestStartFirst    Criterion = iota // Earliest start, descending
	EarliestFinishFirst                  // Latest end, ascending
	DaysOffFirst                         // Days off, descending
)

// Criteria lists every criterion in menu order
var Criteria = []Criterion{LatestStartFirst, EarliestFinishFirst, DaysOffFirst}

var criterionNames = [...]string{"latest-start", "earliest-finish", "days-off"}
var criterionKeys = [...]string{"l", "f", "d"}

func (c Criterion) String() string {
	if int(c) < len(criterionNames) {
		return criterionNames[c]
	}
	return "unknown"
}

// Key returns the single-letter menu key of the criterion
func (c Criterion) Key() string {
	return criterionKeys[c]
}

// ParseCriterion accepts a menu key ("l", "f", "d") or a criterion name
func ParseCriterion(text string) (Criterion, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	for _, criterion := range Criteria {
		if text == criterion.Key() || text == criterion.String() {
			return criterion, nil
		}
	}
	return 0, apperrors.Clonef(apperrors.ErrInvalidSelection, "unknown sort criterion %q", text)
}

func (c Criterion) compare(a, b CombinedSchedule) int {
	switch c {
	case LatestStartFirst:
		return b.EarliestStart().Compare(a.EarliestStart())
	case EarliestFinishFirst:
		return a.LatestEnd().Compare(b.LatestEnd())
	case DaysOffFirst:
		return b.DaysOff() - a.DaysOff()
	}
	return 0
}

// Sort orders timetables in place by applying one stable sort per criterion, in the given
// order. The first criterion is the least significant and the last one dominates, since
// each stable pass keeps the order of the previous one among ties.
func Sort(schedules []CombinedSchedule, criteria ...Criterion) error {
	for _, criterion := range criteria {
		if int(criterion) >= len(criterionNames) {
			return apperrors.Clonef(apperrors.ErrInvalidSelection, "unknown sort criterion %d", criterion)
		}
	}
	for _, criterion := range criteria {
		slices.SortStableFunc(schedules, criterion.compare)
	}
	return nil
}
