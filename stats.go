package rational

import (
	"fmt"
	"slices"
)

// Min returns the smallest of the given rational numbers.
// If several arguments are equal to the minimum, the first one is returned.
func Min(x Rat, xs ...Rat) Rat {
	for _, y := range xs {
		if y.Less(x) {
			x = y
		}
	}
	return x
}

// Max returns the largest of the given rational numbers.
// If several arguments are equal to the maximum, the first one is returned.
func Max(x Rat, xs ...Rat) Rat {
	for _, y := range xs {
		if y.Greater(x) {
			x = y
		}
	}
	return x
}

// Sum returns the sum of the given rational numbers.
// The sum of no numbers is 0.
func Sum(xs ...Rat) Rat {
	s := Zero
	for _, x := range xs {
		s = s.Add(x)
	}
	return s
}

// Avg returns the arithmetic mean of the given rational numbers.
//
// Avg returns an error if no numbers are given.
func Avg(xs ...Rat) (Rat, error) {
	if len(xs) == 0 {
		return Rat{}, fmt.Errorf("computing average: %w", ErrEmptyInput)
	}
	s := Sum(xs...)
	n, err := New(int64(len(xs)), 1)
	if err != nil {
		return Rat{}, fmt.Errorf("computing average: %w", err)
	}
	return s.Quo(n)
}

// Median returns the median of the given rational numbers.
// For an even count it is the mean of the two middle numbers.
// The argument slice is not modified.
//
// Median returns an error if no numbers are given.
func Median(xs ...Rat) (Rat, error) {
	if len(xs) == 0 {
		return Rat{}, fmt.Errorf("computing median: %w", ErrEmptyInput)
	}
	sorted := slices.Clone(xs)
	slices.SortStableFunc(sorted, Rat.Cmp)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], nil
	}
	return Avg(sorted[mid-1], sorted[mid])
}
