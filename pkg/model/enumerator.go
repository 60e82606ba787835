package model

import (
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Enumerator combines the per-course schedules of every active course into full timetables.
//
// The search is exhaustive: every index vector of the Cartesian product over per-course
// combinations is visited in odometer order (last course fastest) and checked pairwise across
// all courses, abandoning a vector on its first conflict. Nothing is pruned in advance, so the
// worst case is prod(L_i) * n^2 course-pair checks for n courses with L_i combinations each.
// That is fine for a handful of courses with a few combinations each, which is what a
// student's term looks like; it is not meant for large catalogues.
type Enumerator interface {
	Enumerate(courses []*CourseOffering) Enumeration

	// Checks that no two sections of different courses in the timetable conflict
	Verify(schedule CombinedSchedule) bool
}

// Enumeration is the outcome of one enumeration run. An empty Schedules slice is a valid
// result, not an error.
type Enumeration struct {
	Schedules    []CombinedSchedule
	Courses      []*CourseOffering // Active courses, in the order their schedules appear
	Combinations []int             // Internally consistent combinations per active course
	Candidates   uint64            // Index vectors evaluated
}

// NewEnumerator returns an enumerator using generator to expand each course
func NewEnumerator(generator CombinationGenerator, logger *zap.Logger) Enumerator {
	if generator == nil {
		generator = NewCombinationGenerator(false)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &enumeratorImplementation{generator: generator, logger: logger}
}

type enumeratorImplementation struct {
	generator CombinationGenerator
	logger    *zap.Logger
}

func (enumerator *enumeratorImplementation) Enumerate(courses []*CourseOffering) Enumeration {
	active := lo.Filter(courses, func(course *CourseOffering, _ int) bool { return course.Active })

	// Recomputed on every run so that lock and delete operations are always reflected
	perCourse := lo.Map(active, func(course *CourseOffering, _ int) []CourseSchedule {
		return enumerator.generator.Combinations(course)
	})
	result := Enumeration{
		Schedules:    make([]CombinedSchedule, 0),
		Courses:      active,
		Combinations: lo.Map(perCourse, func(combinations []CourseSchedule, _ int) int { return len(combinations) }),
	}

	counter := newOdometer(result.Combinations)
	for digits := range counter.Vectors() {
		result.Candidates++
		if !pairwiseCompatible(perCourse, digits) {
			continue
		}

		tuple := make([]CourseSchedule, len(digits))
		for course, digit := range digits {
			tuple[course] = perCourse[course][digit]
		}
		result.Schedules = append(result.Schedules, newCombinedSchedule(tuple))
	}

	enumerator.logger.Debug("enumeration finished",
		zap.Int("courses", len(active)),
		zap.Ints("combinations", result.Combinations),
		zap.Uint64("candidates", result.Candidates),
		zap.Int("schedules", len(result.Schedules)),
	)
	return result
}

func (enumerator *enumeratorImplementation) Verify(schedule CombinedSchedule) bool {
	courses := schedule.CourseSchedules()
	for i := range courses {
		for j := i + 1; j < len(courses); j++ {
			if !courses[i].CompatibleWith(courses[j]) {
				return false
			}
		}
	}
	return true
}

func pairwiseCompatible(perCourse [][]CourseSchedule, digits []int) bool {
	for i := range digits {
		for j := range i {
			if !perCourse[i][digits[i]].CompatibleWith(perCourse[j][digits[j]]) {
				return false
			}
		}
	}
	return true
}
