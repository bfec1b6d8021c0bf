// Package numeric provides Value, a wrapper that treats every integer and
// floating point primitive the same way.
//
// A Value holds exactly one primitive. It adds no invariant of its own: any
// bit pattern the primitive accepts (NaN included) is a valid Value. Go has no
// user-defined implicit conversions, so the primitive is read back with Get;
// everything else (comparisons, hashing, encoding) behaves as if the raw
// primitive were used.
//
// Example:
//
//	width := numeric.New(int32(640))
//	if width.Gt(480) {
//	    width.Set(width.Get() / 2)
//	}
//
//	numeric.Int32{}.MaxValue()  // 2147483647
//	numeric.Double{}.HasNaN()   // true
package numeric

import (
	"fmt"
	"hash"

	"github.com/amp-labs/amp-numeric/classify"
	"github.com/amp-labs/amp-numeric/hashing"
	"github.com/amp-labs/amp-numeric/limits"
)

// Value wraps a single numeric primitive of type T. The zero Value holds 0.
// Values are comparable, so they can be used directly as Go map keys with
// the same semantics as the primitive.
type Value[T limits.Number] struct {
	value T
}

// New returns a Value holding v.
func New[T limits.Number](v T) Value[T] {
	return Value[T]{value: v}
}

// Get returns the held primitive.
func (v Value[T]) Get() T {
	return v.value
}

// Set replaces the held primitive. No range checking is done beyond what T
// itself enforces.
func (v *Value[T]) Set(value T) {
	v.value = value
}

// MaxValue returns the largest value of T.
func (Value[T]) MaxValue() T {
	return limits.Max[T]()
}

// MinValue returns the smallest finite value of T. For floating point types
// this is the most negative finite value, not the smallest positive one.
func (Value[T]) MinValue() T {
	return limits.Min[T]()
}

// Infinity returns positive infinity, or 0 when T is an integer type.
func (Value[T]) Infinity() T {
	return limits.Infinity[T]()
}

// NegativeInfinity returns negative infinity, or 0 when T is an integer type.
func (Value[T]) NegativeInfinity() T {
	return limits.NegativeInfinity[T]()
}

// NaN returns a quiet NaN, or 0 when T is an integer type.
func (Value[T]) NaN() T {
	return limits.NaN[T]()
}

func (Value[T]) HasInfinity() bool {
	return limits.HasInfinity[T]()
}

func (Value[T]) HasNaN() bool {
	return limits.HasNaN[T]()
}

func (Value[T]) IsSigned() bool {
	return limits.IsSigned[T]()
}

func (Value[T]) IsInteger() bool {
	return limits.IsInteger[T]()
}

// Traits returns every static fact about T at once.
func (Value[T]) Traits() limits.Traits {
	return limits.TraitsOf[T]()
}

// IsNaN reports whether the held value is a NaN.
func (v Value[T]) IsNaN() bool {
	return classify.IsNaN(v.value)
}

// IsFinite reports whether the held value is neither NaN nor infinite.
func (v Value[T]) IsFinite() bool {
	return classify.IsFinite(v.value)
}

// The relational methods apply Go's operators to the held primitive, so a
// NaN compares unequal to everything, itself included.

func (v Value[T]) Eq(other T) bool { return v.value == other }
func (v Value[T]) Ne(other T) bool { return v.value != other }
func (v Value[T]) Lt(other T) bool { return v.value < other }
func (v Value[T]) Le(other T) bool { return v.value <= other }
func (v Value[T]) Gt(other T) bool { return v.value > other }
func (v Value[T]) Ge(other T) bool { return v.value >= other }

// Equals implements compare.Comparable.
func (v Value[T]) Equals(other Value[T]) bool {
	return v.value == other.value
}

// UpdateHash implements hashing.Hashable. It writes exactly what hashing
// the raw primitive writes, so every hashing.HashFunc gives a wrapped value
// and its primitive the same digest.
func (v Value[T]) UpdateHash(h hash.Hash) error {
	return hashing.UpdateNumber(h, v.value)
}

// Hash returns the 64-bit hash code of the value. It always equals
// hashing.Of(v.Get()).
func (v Value[T]) Hash() uint64 {
	return hashing.Of(v.value)
}

func (v Value[T]) String() string {
	return fmt.Sprint(v.value)
}
