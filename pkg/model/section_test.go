package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/limaJavier/sectionplanner/pkg/errors"
)

func TestNewSection(t *testing.T) {
	// Act
	section, err := NewSection(SectionInput{
		CRN:        30211,
		Code:       "B03",
		CourseCode: "CSC 225",
		TimeRange:  "2:30 pm - 3:20 pm",
		Days:       "R",
		Location:   " ECS 258 ",
		Instructor: "Grace   Brewster\n Hopper",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Lab, section.Category)
	assert.Equal(t, Clock(14, 30), section.Start)
	assert.Equal(t, Clock(15, 20), section.End)
	assert.Equal(t, NewDaySet(Thursday), section.Days)
	assert.Equal(t, "ECS 258", section.Location)
	assert.Equal(t, "Grace Brewster Hopper", section.Instructor)
	assert.False(t, section.Locked())
	assert.Equal(t, "30211 B03: R from 02:30 PM to 03:20 PM with Grace Brewster Hopper in ECS 258", section.String())
}

func TestNewSectionRejectsBadInput(t *testing.T) {
	scenarios := map[string]struct {
		input SectionInput
		err   *apperrors.Error
	}{
		"unknown category": {
			input: SectionInput{Code: "X01", TimeRange: "10:00 am - 10:50 am", Days: "m"},
			err:   apperrors.ErrInconsistentCourseData,
		},
		"lowercase category": {
			input: SectionInput{Code: "a01", TimeRange: "10:00 am - 10:50 am", Days: "m"},
			err:   apperrors.ErrInconsistentCourseData,
		},
		"empty code": {
			input: SectionInput{TimeRange: "10:00 am - 10:50 am", Days: "m"},
			err:   apperrors.ErrInconsistentCourseData,
		},
		"unparsable time": {
			input: SectionInput{Code: "A01", TimeRange: "TBA", Days: "m"},
			err:   apperrors.ErrMalformedTimeRange,
		},
		"ends before it starts": {
			input: SectionInput{Code: "A01", TimeRange: "11:00 am - 10:50 am", Days: "m"},
			err:   apperrors.ErrMalformedTimeRange,
		},
	}

	for name, scenario := range scenarios {
		t.Run(name, func(t *testing.T) {
			// Act
			section, err := NewSection(scenario.input)

			// Assert
			assert.Nil(t, section)
			assert.ErrorIs(t, err, scenario.err)
		})
	}
}

func TestCompatible(t *testing.T) {
	mondayMorning := newSection(t, "CSC 225", 1, "A01", "m", "9:00 am - 9:50 am")

	scenarios := map[string]struct {
		other      *Section
		compatible bool
	}{
		"disjoint days, same time":   {newSection(t, "MATH 122", 2, "A01", "t", "9:00 am - 9:50 am"), true},
		"shared day, overlapping":    {newSection(t, "MATH 122", 3, "B01", "mw", "9:30 am - 10:20 am"), false},
		"shared day, touching end":   {newSection(t, "MATH 122", 4, "A02", "m", "9:50 am - 10:40 am"), false},
		"shared day, touching start": {newSection(t, "MATH 122", 5, "A03", "m", "8:00 am - 9:00 am"), false},
		"shared day, contained":      {newSection(t, "MATH 122", 6, "T01", "mf", "9:10 am - 9:20 am"), false},
		"shared day, later":          {newSection(t, "MATH 122", 7, "A04", "m", "10:00 am - 10:50 am"), true},
		"shared day, earlier":        {newSection(t, "MATH 122", 8, "A05", "m", "8:00 am - 8:50 am"), true},
		"no days at all":             {newSection(t, "MATH 122", 9, "A06", "", "9:00 am - 9:50 am"), true},
	}

	for name, scenario := range scenarios {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, scenario.compatible, Compatible(mondayMorning, scenario.other))
			assert.Equal(t, scenario.compatible, Compatible(scenario.other, mondayMorning))
		})
	}
}

func TestCompatibleIsSymmetric(t *testing.T) {
	var crn uint64
	for range 10 {
		// Arrange
		sections := randomSections(t, "CSC 225", Category(rand.Intn(3)), 20, &crn)

		for i := range sections {
			for j := range sections {
				if i == j {
					continue
				}
				// Act
				forward := Compatible(sections[i], sections[j])
				backward := Compatible(sections[j], sections[i])

				// Assert
				assert.Equal(t, forward, backward)
				if !sections[i].Days.Intersects(sections[j].Days) {
					assert.True(t, forward)
				}
			}
		}
	}
}
