package aoc

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any integer or float type.
type Number interface {
	constraints.Integer | constraints.Float
}

// ErrNoRealRoots is returned by SolveQuad when the discriminant is negative.
var ErrNoRealRoots = errors.New("no real roots")

// Sum returns the sum of nums.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Product returns the product of nums, or 1 for no values.
func Product[T Number](nums ...T) T {
	prod := T(1)
	for _, v := range nums {
		prod *= v
	}
	return prod
}

// Min returns the smallest of nums. It reports false when nums is empty.
func Min[T constraints.Ordered](nums ...T) (T, bool) {
	var zero T
	if len(nums) == 0 {
		return zero, false
	}

	m := nums[0]
	for _, v := range nums[1:] {
		if v < m {
			m = v
		}
	}
	return m, true
}

// SolveQuad returns the roots of ax^2 + bx + c = 0, smallest first.
func SolveQuad[T Number](a, b, c T) (float64, float64, error) {
	fa, fb, fc := float64(a), float64(b), float64(c)
	d := fb*fb - 4*fa*fc
	if d < 0 {
		return 0, 0, ErrNoRealRoots
	}

	d = math.Sqrt(d)
	r1, r2 := (-fb-d)/(2*fa), (-fb+d)/(2*fa)
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return r1, r2, nil
}
