package collectable

import (
	"errors"
	"fmt"
	"hash"

	"github.com/amp-labs/amp-numeric/compare"
	"github.com/amp-labs/amp-numeric/hashing"
)

// ErrUnsupportedType is returned when attempting to hash an unsupported type.
var ErrUnsupportedType = errors.New("unsupported type for hashing")

// Collectable is an interface that combines the Hashable and
// Comparable interfaces. This is useful for objects that need
// to be stored in a Map or Set, where uniqueness is determined by
// the hashing value, and collisions are resolved by comparing
// the objects.
type Collectable[T any] interface {
	hashing.Hashable
	compare.Comparable[T]
}

// comparableWrapper wraps a comparable value and implements Collectable[T].
type comparableWrapper[T comparable] struct {
	value T
}

// UpdateHash implements hashing.Hashable. Numeric values go through
// hashing.UpdateNumber, which is also what numeric.Value uses, so a raw
// number and its wrapped form produce the same hash.
func (w *comparableWrapper[T]) UpdateHash(h hash.Hash) error { //nolint:varnamelen,cyclop
	switch typedValue := any(w.value).(type) {
	case int:
		return hashing.UpdateNumber(h, typedValue)
	case int8:
		return hashing.UpdateNumber(h, typedValue)
	case int16:
		return hashing.UpdateNumber(h, typedValue)
	case int32:
		return hashing.UpdateNumber(h, typedValue)
	case int64:
		return hashing.UpdateNumber(h, typedValue)
	case uint:
		return hashing.UpdateNumber(h, typedValue)
	case uint8:
		return hashing.UpdateNumber(h, typedValue)
	case uint16:
		return hashing.UpdateNumber(h, typedValue)
	case uint32:
		return hashing.UpdateNumber(h, typedValue)
	case uint64:
		return hashing.UpdateNumber(h, typedValue)
	case uintptr:
		return hashing.UpdateNumber(h, typedValue)
	case float32:
		return hashing.UpdateNumber(h, typedValue)
	case float64:
		return hashing.UpdateNumber(h, typedValue)
	case string:
		return hashing.HashableString(typedValue).UpdateHash(h)
	case bool:
		return hashing.HashableBool(typedValue).UpdateHash(h)
	case hashing.Hashable:
		return typedValue.UpdateHash(h)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, typedValue)
	}
}

// Equals implements compare.Comparable[T] by using the == operator.
func (w *comparableWrapper[T]) Equals(other T) bool {
	return w.value == other
}

// FromComparable creates a Collectable[T] from any comparable value.
// It supports all numeric types, strings, booleans and comparable values
// that already implement hashing.Hashable. For unsupported types, the
// UpdateHash method will return an error.
func FromComparable[T comparable](value T) Collectable[T] {
	return &comparableWrapper[T]{value: value}
}
