package model

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOdometerDeterministic(t *testing.T) {
	// Arrange
	counter := newOdometer([]int{2, 1, 3})

	// Act
	var vectors [][]int
	for digits := range counter.Vectors() {
		vectors = append(vectors, slices.Clone(digits))
	}

	// Assert
	assert.Equal(t, uint64(6), counter.Size())
	assert.Equal(t, [][]int{
		{0, 0, 0}, {0, 0, 1}, {0, 0, 2},
		{1, 0, 0}, {1, 0, 1}, {1, 0, 2},
	}, vectors)
}

func TestOdometerEmpty(t *testing.T) {
	scenarios := [][]int{nil, {}, {3, 0, 2}, {0}}

	for _, radices := range scenarios {
		counter := newOdometer(radices)
		count := 0
		for range counter.Vectors() {
			count++
		}
		assert.Zero(t, counter.Size())
		assert.Zero(t, count)
	}
}

func TestOdometerStopsEarly(t *testing.T) {
	counter := newOdometer([]int{4, 4})
	count := 0
	for range counter.Vectors() {
		count++
		if count == 5 {
			break
		}
	}
	assert.Equal(t, 5, count)
}

func TestOdometerOrderNonDeterministic(t *testing.T) {
	for range 10 {
		// Arrange
		radices := make([]int, rand.Intn(5)+1)
		for i := range radices {
			radices[i] = rand.Intn(6) + 1
		}
		counter := newOdometer(radices)

		// Act
		var vectors [][]int
		for digits := range counter.Vectors() {
			vectors = append(vectors, slices.Clone(digits))
		}

		// Assert
		assert.Equal(t, counter.Size(), uint64(len(vectors)))
		for i := 1; i < len(vectors); i++ {
			assert.Equal(t, -1, slices.Compare(vectors[i-1], vectors[i]))
		}
		for _, digits := range vectors {
			for position, digit := range digits {
				assert.Less(t, digit, radices[position])
			}
		}
	}
}
