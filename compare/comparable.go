// Package compare provides utilities for comparing values.
package compare

import "cmp"

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Relational is implemented by wrappers that forward the six relational
// operators to a primitive of type T. Implementations must use the
// primitive's own operators, so IEEE-754 rules hold for floats: a NaN is
// neither equal to, less than nor greater than anything, itself included.
type Relational[T cmp.Ordered] interface {
	Eq(other T) bool
	Ne(other T) bool
	Lt(other T) bool
	Le(other T) bool
	Gt(other T) bool
	Ge(other T) bool
}

// Between reports whether lo <= value <= hi using the relational forwarding
// of value. It is false whenever value, lo or hi is a NaN.
func Between[T cmp.Ordered](value Relational[T], lo, hi T) bool {
	return value.Ge(lo) && value.Le(hi)
}
