package model

import "iter"

// odometer walks every index vector of a mixed-radix number: digit i ranges over
// [0, radices[i]), the rightmost digit advances fastest and carries into its left
// neighbour on wrapping
type odometer struct {
	radices []int
}

func newOdometer(radices []int) odometer {
	return odometer{radices: radices}
}

// Size returns the number of index vectors, 0 if there are no digits or any radix is 0
func (o odometer) Size() uint64 {
	if len(o.radices) == 0 {
		return 0
	}
	var size uint64 = 1
	for _, radix := range o.radices {
		if radix <= 0 {
			return 0
		}
		size *= uint64(radix)
	}
	return size
}

// Vectors yields every index vector in enumeration order, starting from all zeros and
// stopping once the leftmost digit would carry past its radix. The yielded slice is reused
// between iterations, so callers must copy it to keep it.
func (o odometer) Vectors() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if o.Size() == 0 {
			return
		}

		digits := make([]int, len(o.radices))
		for {
			if !yield(digits) {
				return
			}

			position := len(digits) - 1
			digits[position]++
			for digits[position] >= o.radices[position] {
				digits[position] = 0
				position--
				if position < 0 {
					return
				}
				digits[position]++
			}
		}
	}
}
