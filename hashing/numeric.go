package hashing

import (
	"encoding/binary"
	"hash"
	"math"
	"reflect"

	"github.com/amp-labs/amp-numeric/limits"
	"github.com/zeebo/xxh3"
)

const (
	canonicalNaN32 = 0x7fc00000
	canonicalNaN64 = 0x7ff8000000000000
)

// Numeric adapts any numeric primitive to Hashable. It is the single
// implementation behind every HashableIntN/HashableUintN/HashableFloatN type
// and behind numeric.Value, so a value hashes the same way no matter which
// of those it arrives in.
type Numeric[T limits.Number] struct {
	Value T
}

// NewNumeric wraps value so it can be hashed.
func NewNumeric[T limits.Number](value T) Numeric[T] {
	return Numeric[T]{Value: value}
}

func (n Numeric[T]) UpdateHash(h hash.Hash) error {
	return UpdateNumber(h, n.Value)
}

func (n Numeric[T]) Equals(other Numeric[T]) bool {
	return n.Value == other.Value
}

// UpdateNumber writes the canonical encoding of value to h.
func UpdateNumber[T limits.Number](h hash.Hash, value T) error {
	var buf [8]byte

	_, err := h.Write(AppendNumber(buf[:0], value))

	return err
}

// Of returns the 64-bit hash code of a raw numeric value.
func Of[T limits.Number](value T) uint64 {
	var buf [8]byte

	return xxh3.Hash(AppendNumber(buf[:0], value))
}

// AppendNumber appends the canonical little-endian encoding of value to buf.
//
// int, uint and uintptr always take 8 bytes so that hashes do not depend on
// the platform word size. Floats are encoded by their IEEE-754 bits, except
// that negative zero is encoded as positive zero and every NaN as the
// canonical quiet NaN; values that compare equal therefore hash equal.
func AppendNumber[T limits.Number](buf []byte, value T) []byte {
	typ := reflect.TypeFor[T]()

	switch typ.Kind() { //nolint:exhaustive
	case reflect.Float32:
		return binary.LittleEndian.AppendUint32(buf, float32Bits(float32(value)))
	case reflect.Float64:
		return binary.LittleEndian.AppendUint64(buf, float64Bits(float64(value)))
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		return binary.LittleEndian.AppendUint64(buf, uint64(value))
	}

	switch typ.Size() {
	case 1:
		return append(buf, uint8(value))
	case 2:
		return binary.LittleEndian.AppendUint16(buf, uint16(value))
	case 4:
		return binary.LittleEndian.AppendUint32(buf, uint32(value))
	default:
		return binary.LittleEndian.AppendUint64(buf, uint64(value))
	}
}

func float32Bits(f float32) uint32 {
	switch {
	case f == 0:
		return 0
	case math.IsNaN(float64(f)):
		return canonicalNaN32
	default:
		return math.Float32bits(f)
	}
}

func float64Bits(f float64) uint64 {
	switch {
	case f == 0:
		return 0
	case math.IsNaN(f):
		return canonicalNaN64
	default:
		return math.Float64bits(f)
	}
}

type (
	HashableInt     int
	HashableInt8    int8
	HashableInt16   int16
	HashableInt32   int32
	HashableInt64   int64
	HashableUint    uint
	HashableUint8   uint8
	HashableUint16  uint16
	HashableUint32  uint32
	HashableUint64  uint64
	HashableFloat32 float32
	HashableFloat64 float64
)

func (v HashableInt) UpdateHash(h hash.Hash) error     { return UpdateNumber(h, int(v)) }
func (v HashableInt8) UpdateHash(h hash.Hash) error    { return UpdateNumber(h, int8(v)) }
func (v HashableInt16) UpdateHash(h hash.Hash) error   { return UpdateNumber(h, int16(v)) }
func (v HashableInt32) UpdateHash(h hash.Hash) error   { return UpdateNumber(h, int32(v)) }
func (v HashableInt64) UpdateHash(h hash.Hash) error   { return UpdateNumber(h, int64(v)) }
func (v HashableUint) UpdateHash(h hash.Hash) error    { return UpdateNumber(h, uint(v)) }
func (v HashableUint8) UpdateHash(h hash.Hash) error   { return UpdateNumber(h, uint8(v)) }
func (v HashableUint16) UpdateHash(h hash.Hash) error  { return UpdateNumber(h, uint16(v)) }
func (v HashableUint32) UpdateHash(h hash.Hash) error  { return UpdateNumber(h, uint32(v)) }
func (v HashableUint64) UpdateHash(h hash.Hash) error  { return UpdateNumber(h, uint64(v)) }
func (v HashableFloat32) UpdateHash(h hash.Hash) error { return UpdateNumber(h, float32(v)) }
func (v HashableFloat64) UpdateHash(h hash.Hash) error { return UpdateNumber(h, float64(v)) }
