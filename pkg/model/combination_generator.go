package model

import "github.com/samber/lo"

// CombinationGenerator builds every CourseSchedule of a course that is consistent on its own.
//
// For each category the candidates are the locked section when the category is locked, or
// all of its sections otherwise; categories without candidates are left out of the schedule.
// Candidates are combined lecture-outermost, tutorial-innermost, and a combination is kept
// only if every pair of categories adjacent among those present is compatible (lecture-lab,
// lab-tutorial, or lecture-tutorial when there is no lab). Lecture and tutorial are NOT
// checked against each other when a lab sits between them unless the generator is strict.
//
// Example:
//
//	generator := model.NewCombinationGenerator(false)
//	for _, schedule := range generator.Combinations(course) {
//		fmt.Println(schedule.Summary())
//	}
type CombinationGenerator interface {
	Combinations(course *CourseOffering) []CourseSchedule
}

// NewCombinationGenerator returns a generator; strict makes it check every pair of present
// categories instead of adjacent ones only
func NewCombinationGenerator(strict bool) CombinationGenerator {
	return &combinationGeneratorImplementation{strict: strict}
}

type combinationGeneratorImplementation struct {
	strict bool
}

func (generator *combinationGeneratorImplementation) Combinations(course *CourseOffering) []CourseSchedule {
	categories := make([]Category, 0, len(Categories))
	domains := make([][]*Section, 0, len(Categories))
	for _, category := range Categories {
		candidates := candidateSections(course, category)
		if len(candidates) == 0 {
			continue
		}
		categories = append(categories, category)
		domains = append(domains, candidates)
	}
	if len(domains) == 0 {
		return nil
	}

	capacity := lo.Reduce(domains, func(product int, domain []*Section, _ int) int { return product * len(domain) }, 1)
	combinations := make([]CourseSchedule, 0, capacity)
	generator.constrainedProduct(course, categories, domains, 0, make([]*Section, len(domains)), &combinations)
	return combinations
}

// Fixes one category per depth and prunes as soon as the newly fixed section breaks a
// constraint, which yields exactly the filtered Cartesian product in nesting order
func (generator *combinationGeneratorImplementation) constrainedProduct(
	course *CourseOffering,
	categories []Category,
	domains [][]*Section,
	depth int,
	choice []*Section,
	combinations *[]CourseSchedule) {

	if depth >= len(domains) {
		schedule := CourseSchedule{Course: course}
		for i, category := range categories {
			schedule.slots[category] = choice[i]
		}
		*combinations = append(*combinations, schedule)
		return
	}

	for _, candidate := range domains[depth] {
		choice[depth] = candidate
		if !generator.consistent(choice, depth) {
			continue
		}
		generator.constrainedProduct(course, categories, domains, depth+1, choice, combinations)
	}

	choice[depth] = nil
}

// Checks the section fixed at depth against the ones fixed before it
func (generator *combinationGeneratorImplementation) consistent(choice []*Section, depth int) bool {
	if depth == 0 {
		return true
	}
	if !generator.strict {
		return Compatible(choice[depth-1], choice[depth])
	}
	return !lo.SomeBy(choice[:depth], func(previous *Section) bool {
		return !Compatible(previous, choice[depth])
	})
}

func candidateSections(course *CourseOffering, category Category) []*Section {
	if locked, ok := course.LockedSection(category); ok {
		return []*Section{locked}
	}
	return course.sections[category]
}
