package model

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinationsRejectsOverlappingLectureAndLab(t *testing.T) {
	// Arrange
	course := NewCourseOffering("Discrete Math", "MATH 122", []*Section{
		newSection(t, "MATH 122", 1, "A01", "m", "9:00 am - 9:50 am"),
		newSection(t, "MATH 122", 2, "B01", "m", "9:30 am - 10:20 am"),
	})

	// Act
	combinations := NewCombinationGenerator(false).Combinations(course)

	// Assert
	assert.Empty(t, combinations)
}

func TestCombinationsNestingOrder(t *testing.T) {
	g := NewWithT(t)

	// Arrange
	course := NewCourseOffering("Software Engineering", "SENG 265", []*Section{
		newSection(t, "SENG 265", 1, "A01", "m", "9:00 am - 9:50 am"),
		newSection(t, "SENG 265", 2, "A02", "t", "9:00 am - 9:50 am"),
		newSection(t, "SENG 265", 3, "B01", "w", "9:00 am - 9:50 am"),
		newSection(t, "SENG 265", 4, "B02", "r", "9:00 am - 9:50 am"),
		newSection(t, "SENG 265", 5, "T01", "f", "9:00 am - 9:50 am"),
	})

	// Act
	combinations := NewCombinationGenerator(false).Combinations(course)

	// Assert
	g.Expect(combinations).To(HaveLen(4))
	got := make([][]uint64, 0, len(combinations))
	for _, combination := range combinations {
		g.Expect(combination.Course).To(BeIdenticalTo(course))
		got = append(got, crns(combination.Sections()))
	}
	g.Expect(got).To(Equal([][]uint64{
		{1, 3, 5},
		{1, 4, 5},
		{2, 3, 5},
		{2, 4, 5},
	}))
}

func TestCombinationsFollowLocks(t *testing.T) {
	// Arrange
	course := sampleCourse(t)
	generator := NewCombinationGenerator(false)
	unlocked := len(generator.Combinations(course))

	// Act
	require.NoError(t, course.ToggleLock(Lecture, 1))
	locked := generator.Combinations(course)

	// Assert
	require.NotEmpty(t, locked)
	for _, combination := range locked {
		assert.Equal(t, uint64(103), combination.Section(Lecture).CRN)
	}
	assert.Less(t, len(locked), unlocked)

	t.Run("Unlocking restores every combination", func(t *testing.T) {
		require.NoError(t, course.ToggleLock(Lecture, 1))
		assert.Len(t, generator.Combinations(course), unlocked)
	})
}

func TestCombinationsWithAbsentCategories(t *testing.T) {
	g := NewWithT(t)

	t.Run("Labs and tutorials only", func(t *testing.T) {
		// Arrange
		course := NewCourseOffering("Co-op Seminar", "COOP 001", []*Section{
			newSection(t, "COOP 001", 1, "B01", "m", "9:00 am - 9:50 am"),
			newSection(t, "COOP 001", 2, "T01", "m", "10:00 am - 10:50 am"),
			newSection(t, "COOP 001", 3, "T02", "m", "9:30 am - 10:20 am"),
		})

		// Act
		combinations := NewCombinationGenerator(false).Combinations(course)

		// Assert
		g.Expect(combinations).To(HaveLen(1))
		g.Expect(combinations[0].Section(Lecture)).To(BeNil())
		g.Expect(crns(combinations[0].Sections())).To(Equal([]uint64{1, 2}))
	})

	t.Run("Lecture and tutorial are adjacent without a lab", func(t *testing.T) {
		// Arrange
		course := NewCourseOffering("Calculus I", "MATH 100", []*Section{
			newSection(t, "MATH 100", 1, "A01", "m", "9:00 am - 9:50 am"),
			newSection(t, "MATH 100", 2, "T01", "m", "9:00 am - 9:50 am"),
		})

		// Act
		combinations := NewCombinationGenerator(false).Combinations(course)

		// Assert
		g.Expect(combinations).To(BeEmpty())
	})

	t.Run("Single lecture", func(t *testing.T) {
		course := NewCourseOffering("Calculus I", "MATH 100", []*Section{
			newSection(t, "MATH 100", 1, "A01", "m", "9:00 am - 9:50 am"),
		})
		g.Expect(NewCombinationGenerator(false).Combinations(course)).To(HaveLen(1))
	})

	t.Run("No sections", func(t *testing.T) {
		course := NewCourseOffering("Directed Studies", "CSC 490", nil)
		g.Expect(NewCombinationGenerator(false).Combinations(course)).To(BeEmpty())
	})
}

func TestCombinationsLectureTutorialGap(t *testing.T) {
	// Arrange: the tutorial clashes with the lecture but not with the lab between them
	course := NewCourseOffering("Operating Systems", "CSC 360", []*Section{
		newSection(t, "CSC 360", 1, "A01", "m", "9:00 am - 9:50 am"),
		newSection(t, "CSC 360", 2, "B01", "t", "9:00 am - 9:50 am"),
		newSection(t, "CSC 360", 3, "T01", "m", "9:30 am - 10:20 am"),
	})

	// Act
	relaxed := NewCombinationGenerator(false).Combinations(course)
	strict := NewCombinationGenerator(true).Combinations(course)

	// Assert
	assert.Len(t, relaxed, 1)
	assert.Empty(t, strict)
}

func TestCombinationsNonDeterministic(t *testing.T) {
	var crn uint64
	for _, strict := range []bool{false, true} {
		generator := NewCombinationGenerator(strict)
		for range 10 {
			// Arrange
			course := randomCourse(t, "RAND 100", &crn)
			bound := 1
			for _, category := range Categories {
				if count := len(course.Sections(category)); count > 0 {
					bound *= count
				}
			}

			// Act
			combinations := generator.Combinations(course)

			// Assert
			assert.LessOrEqual(t, len(combinations), bound)
			for _, combination := range combinations {
				sections := combination.Sections()
				for i := 1; i < len(sections); i++ {
					assert.True(t, Compatible(sections[i-1], sections[i]))
				}
				if strict {
					for i := range sections {
						for j := range i {
							assert.True(t, Compatible(sections[i], sections[j]))
						}
					}
				}
				for _, category := range Categories {
					present := len(course.Sections(category)) > 0
					assert.Equal(t, present, combination.Section(category) != nil)
				}
			}
		}
	}
}
