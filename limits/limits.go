// Package limits answers type-level questions about numeric primitives:
// their range, whether they are signed, and whether they carry the special
// IEEE-754 values (infinity and NaN). Every function is derived from the type
// parameter alone, so the zero value of any instantiation can be used to ask.
package limits

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is every primitive the numeric wrapper supports: signed and unsigned
// integers of 1, 2, 4 and 8 bytes (including named types built on them) and
// the IEEE-754 floating point types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Kind is the category of a numeric primitive.
type Kind uint8

const (
	KindSigned Kind = iota
	KindUnsigned
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindSigned:
		return "signed"
	case KindUnsigned:
		return "unsigned"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name so it reads naturally in JSON and
// YAML reports.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Traits gathers all static facts about a numeric type in one place.
// Consumers that need to adapt formatting or validation to the concrete
// numeric kind can switch on these instead of on the type.
type Traits struct {
	Kind        Kind `json:"kind"        yaml:"kind"`
	Bits        int  `json:"bits"        yaml:"bits"`
	Bytes       int  `json:"bytes"       yaml:"bytes"`
	Signed      bool `json:"signed"      yaml:"signed"`
	Integer     bool `json:"integer"     yaml:"integer"`
	HasInfinity bool `json:"hasInfinity" yaml:"hasInfinity"`
	HasNaN      bool `json:"hasNaN"      yaml:"hasNaN"`
}

// TraitsOf returns the static facts for T.
func TraitsOf[T Number]() Traits {
	kind := KindOf[T]()
	size := int(reflect.TypeFor[T]().Size())

	return Traits{
		Kind:        kind,
		Bits:        size * 8,
		Bytes:       size,
		Signed:      kind != KindUnsigned,
		Integer:     kind != KindFloat,
		HasInfinity: kind == KindFloat,
		HasNaN:      kind == KindFloat,
	}
}

// KindOf reports whether T is a signed integer, an unsigned integer or a
// floating point type. Named types are classified by their underlying type.
func KindOf[T Number]() Kind {
	switch reflect.TypeFor[T]().Kind() { //nolint:exhaustive
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindUnsigned
	default:
		return KindSigned
	}
}

// bitSize is the width of T in bits.
func bitSize[T Number]() uint {
	return uint(reflect.TypeFor[T]().Size()) * 8 //nolint:gosec
}

// Max returns the largest value T can hold.
func Max[T Number]() T {
	switch KindOf[T]() {
	case KindFloat:
		if bitSize[T]() == 32 {
			largest := float32(math.MaxFloat32)

			return T(largest)
		}

		largest := math.MaxFloat64

		return T(largest)
	case KindUnsigned:
		all := uint64(math.MaxUint64)

		return T(all >> (64 - bitSize[T]()))
	default:
		top := int64(math.MaxInt64)

		return T(top >> (64 - bitSize[T]()))
	}
}

// Min returns the smallest finite value T can hold. For unsigned integers
// this is 0. For floating point types it is the most negative finite value,
// not the smallest positive one.
func Min[T Number]() T {
	switch KindOf[T]() {
	case KindFloat:
		return -Max[T]()
	case KindUnsigned:
		return 0
	default:
		bottom := int64(math.MinInt64)

		return T(bottom >> (64 - bitSize[T]()))
	}
}

// Infinity returns positive infinity for floating point types and 0 for
// integers, which have no such value.
func Infinity[T Number]() T {
	if KindOf[T]() != KindFloat {
		return 0
	}

	return T(math.Inf(1))
}

// NegativeInfinity returns negative infinity for floating point types and 0
// for integers.
func NegativeInfinity[T Number]() T {
	if KindOf[T]() != KindFloat {
		return 0
	}

	return T(math.Inf(-1))
}

// NaN returns a quiet NaN for floating point types and 0 for integers.
//
// A NaN never compares equal to anything, including itself. Use
// classify.IsNaN to test for it.
func NaN[T Number]() T {
	if KindOf[T]() != KindFloat {
		return 0
	}

	return T(math.NaN())
}

// HasInfinity reports whether T has a representation of infinity.
func HasInfinity[T Number]() bool {
	return KindOf[T]() == KindFloat
}

// HasNaN reports whether T has a representation of NaN.
func HasNaN[T Number]() bool {
	return KindOf[T]() == KindFloat
}

// IsSigned reports whether T can hold negative values.
func IsSigned[T Number]() bool {
	return KindOf[T]() != KindUnsigned
}

// IsInteger reports whether T is an integer type.
func IsInteger[T Number]() bool {
	return KindOf[T]() != KindFloat
}

// IsFloat reports whether T is a floating point type.
func IsFloat[T Number]() bool {
	return KindOf[T]() == KindFloat
}
