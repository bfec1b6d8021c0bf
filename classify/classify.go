// Package classify tells special floating point values (NaN, infinities)
// apart from ordinary ones. The predicates accept integers as well, for which
// the answer is fixed: integers have no NaN and no infinity.
package classify

import (
	"math"

	"github.com/amp-labs/amp-numeric/limits"
)

// Class is the category of a numeric value.
type Class uint8

const (
	ClassFinite Class = iota
	ClassInfinite
	ClassNaN
)

func (c Class) String() string {
	switch c {
	case ClassFinite:
		return "finite"
	case ClassInfinite:
		return "infinite"
	case ClassNaN:
		return "nan"
	default:
		return "unknown"
	}
}

// IsNaN reports whether value is a NaN, quiet or signaling.
// It is always false for integers.
func IsNaN[T limits.Number](value T) bool {
	if limits.IsInteger[T]() {
		return false
	}

	return math.IsNaN(float64(value))
}

// IsFinite reports whether value is neither NaN nor an infinity.
// It is always true for integers.
func IsFinite[T limits.Number](value T) bool {
	if limits.IsInteger[T]() {
		return true
	}

	f := float64(value)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsInf reports whether value is an infinity, according to sign: sign > 0
// asks for positive infinity, sign < 0 for negative infinity and sign == 0
// for either. It is always false for integers.
func IsInf[T limits.Number](value T, sign int) bool {
	if limits.IsInteger[T]() {
		return false
	}

	return math.IsInf(float64(value), sign)
}

// Classify returns the class of value.
func Classify[T limits.Number](value T) Class {
	switch {
	case IsNaN(value):
		return ClassNaN
	case IsInf(value, 0):
		return ClassInfinite
	default:
		return ClassFinite
	}
}
