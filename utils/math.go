package utils

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Min returns the smaller value between two numbers.
func Min[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the bigger value between two numbers.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Abs returns the absolut value of x.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp restricts x to the closed interval [lo, hi].
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	return Max(lo, Min(x, hi))
}

// NearlyEqual reports whether a and b differ by less than eps.
func NearlyEqual[T constraints.Float](a, b, eps T) bool {
	return Abs(a-b) < eps
}

// Round rounds a float to the nearest integer, halves away from zero.
func Round[T constraints.Float](x T) int {
	return int(math.Round(float64(x)))
}
