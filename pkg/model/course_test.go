package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/limaJavier/sectionplanner/pkg/errors"
)

func sampleCourse(t *testing.T) *CourseOffering {
	t.Helper()
	return NewCourseOffering("Algorithms and Data Structures II", "CSC 226", []*Section{
		newSection(t, "CSC 226", 101, "A01", "mr", "10:00 am - 11:20 am"),
		newSection(t, "CSC 226", 102, "B01", "t", "2:30 pm - 3:20 pm"),
		newSection(t, "CSC 226", 103, "A02", "tf", "1:00 pm - 2:20 pm"),
		newSection(t, "CSC 226", 104, "T01", "w", "9:30 am - 10:20 am"),
		newSection(t, "CSC 226", 105, "B02", "w", "2:30 pm - 3:20 pm"),
	})
}

func TestNewCourseOfferingPartitions(t *testing.T) {
	// Act
	course := sampleCourse(t)

	// Assert
	assert.True(t, course.Active)
	assert.Equal(t, 5, course.SectionCount())
	assert.Equal(t, []uint64{101, 103}, crns(course.Sections(Lecture)))
	assert.Equal(t, []uint64{102, 105}, crns(course.Sections(Lab)))
	assert.Equal(t, []uint64{104}, crns(course.Sections(Tutorial)))
	assert.Equal(t, []uint64{101, 103, 102, 105, 104}, crns(course.AllSections()))
	assert.Equal(t, "CSC 226: Algorithms and Data Structures II (active)", course.String())
}

func TestToggleLockKeepsOneLockPerCategory(t *testing.T) {
	// Arrange
	course := sampleCourse(t)
	lectures := course.Sections(Lecture)

	// Act
	require.NoError(t, course.ToggleLock(Lecture, 0))
	require.NoError(t, course.ToggleLock(Lecture, 1))

	// Assert
	assert.False(t, lectures[0].Locked())
	assert.True(t, lectures[1].Locked())
	assert.True(t, course.Locked(Lecture))
	assert.False(t, course.Locked(Lab))
	locked, ok := course.LockedSection(Lecture)
	require.True(t, ok)
	assert.Equal(t, uint64(103), locked.CRN)

	t.Run("Other categories are independent", func(t *testing.T) {
		require.NoError(t, course.ToggleLock(Lab, 1))
		assert.True(t, course.Locked(Lab))
		assert.True(t, lectures[1].Locked())
	})

	t.Run("Toggling the locked section unlocks it", func(t *testing.T) {
		require.NoError(t, course.ToggleLock(Lecture, 1))
		assert.False(t, course.Locked(Lecture))
		assert.False(t, lectures[0].Locked())
		assert.False(t, lectures[1].Locked())
		_, ok := course.LockedSection(Lecture)
		assert.False(t, ok)
	})
}

func TestToggleLockOutOfRange(t *testing.T) {
	// Arrange
	course := sampleCourse(t)
	require.NoError(t, course.ToggleLock(Tutorial, 0))

	for _, index := range []int{-1, 1, 7} {
		// Act
		err := course.ToggleLock(Tutorial, index)

		// Assert
		assert.ErrorIs(t, err, apperrors.ErrInvalidSelection)
		assert.True(t, course.Locked(Tutorial))
		assert.True(t, course.Sections(Tutorial)[0].Locked())
	}
	assert.ErrorIs(t, course.ToggleLock(Category(9), 0), apperrors.ErrInvalidSelection)
}

func TestDeleteSection(t *testing.T) {
	t.Run("Deleting the locked section clears the lock", func(t *testing.T) {
		// Arrange
		course := sampleCourse(t)
		require.NoError(t, course.ToggleLock(Lab, 0))

		// Act
		err := course.DeleteSection(Lab, 0)

		// Assert
		require.NoError(t, err)
		assert.False(t, course.Locked(Lab))
		assert.Equal(t, []uint64{105}, crns(course.Sections(Lab)))
		assert.Equal(t, 4, course.SectionCount())
	})

	t.Run("Deleting another section keeps the lock", func(t *testing.T) {
		// Arrange
		course := sampleCourse(t)
		require.NoError(t, course.ToggleLock(Lab, 1))

		// Act
		err := course.DeleteSection(Lab, 0)

		// Assert
		require.NoError(t, err)
		locked, ok := course.LockedSection(Lab)
		require.True(t, ok)
		assert.Equal(t, uint64(105), locked.CRN)
	})

	t.Run("Out of range leaves the course untouched", func(t *testing.T) {
		// Arrange
		course := sampleCourse(t)

		// Act
		err := course.DeleteSection(Tutorial, 1)

		// Assert
		assert.ErrorIs(t, err, apperrors.ErrInvalidSelection)
		assert.Equal(t, 5, course.SectionCount())
	})

	t.Run("Earlier copies are not affected", func(t *testing.T) {
		// Arrange
		course := sampleCourse(t)
		before := course.Sections(Lecture)

		// Act
		require.NoError(t, course.DeleteSection(Lecture, 0))

		// Assert
		assert.Equal(t, []uint64{101, 103}, crns(before))
		assert.Equal(t, []uint64{103}, crns(course.Sections(Lecture)))
	})
}

func TestLocate(t *testing.T) {
	// Arrange
	course := sampleCourse(t)
	expected := []struct {
		category Category
		index    int
	}{
		{Lecture, 0}, {Lecture, 1}, {Lab, 0}, {Lab, 1}, {Tutorial, 0},
	}

	for flat, want := range expected {
		// Act
		category, index, err := course.Locate(flat)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, want.category, category)
		assert.Equal(t, want.index, index)
	}

	_, _, err := course.Locate(5)
	assert.ErrorIs(t, err, apperrors.ErrInvalidSelection)
	_, _, err = course.Locate(-1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidSelection)
}

func TestToggleActive(t *testing.T) {
	course := sampleCourse(t)
	course.ToggleActive()
	assert.False(t, course.Active)
	assert.Equal(t, "CSC 226: Algorithms and Data Structures II (inactive)", course.String())
	course.ToggleActive()
	assert.True(t, course.Active)
}

func crns(sections []*Section) []uint64 {
	result := make([]uint64, 0, len(sections))
	for _, section := range sections {
		result = append(result, section.CRN)
	}
	return result
}
