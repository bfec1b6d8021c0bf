package bitops

import (
	"errors"
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// ErrBitCount is returned by the checked rotations when the bit count is
// not strictly between 0 and the operand width.
var ErrBitCount = errors.New("rotation bit count out of range")

// RotateLeft rotates value left by count bits within its own width. Signed
// values are rotated as their same-width unsigned bit pattern.
//
// The count is taken modulo the width: a negative count rotates right, and a
// count that is a multiple of the width (including 0) returns value as is.
//
// Example:
//
//	bitops.RotateLeft(uint16(0xf000), 4) // 0x000f
//	bitops.RotateLeft(int8(-128), 1)     // 1
func RotateLeft[T constraints.Integer](value T, count int) T {
	width := WidthOf[T]()

	shift := normalize(count, width.Bits())
	if shift == 0 {
		return value
	}

	switch width {
	case Width8:
		return T(bits.RotateLeft8(uint8(value), shift))
	case Width16:
		return T(bits.RotateLeft16(uint16(value), shift))
	case Width32:
		return T(bits.RotateLeft32(uint32(value), shift))
	default:
		return T(bits.RotateLeft64(uint64(value), shift))
	}
}

// RotateRight rotates value right by count bits. It is the inverse of
// RotateLeft for the same count, with the same normalization rules.
func RotateRight[T constraints.Integer](value T, count int) T {
	bitWidth := WidthOf[T]().Bits()

	shift := normalize(count, bitWidth)
	if shift == 0 {
		return value
	}

	return RotateLeft(value, bitWidth-shift)
}

// SwapByteOrder reverses the bytes of value, converting between little and
// big endian representations. Single byte values are returned unchanged.
//
// Example:
//
//	bitops.SwapByteOrder(uint16(0x1234)) // 0x3412
func SwapByteOrder[T constraints.Integer](value T) T {
	switch WidthOf[T]() {
	case Width8:
		return value
	case Width16:
		return T(bits.ReverseBytes16(uint16(value)))
	case Width32:
		return T(bits.ReverseBytes32(uint32(value)))
	default:
		return T(bits.ReverseBytes64(uint64(value)))
	}
}

// RotateLeftWith is RotateLeft using the given backend. The plain functions
// call math/bits directly; the With variants exist to compare backends.
func RotateLeftWith[T constraints.Integer](backend Backend, value T, count int) T {
	width := WidthOf[T]()

	shift := normalize(count, width.Bits())
	if shift == 0 {
		return value
	}

	switch width {
	case Width8:
		return T(backend.rotateLeft8(uint8(value), shift))
	case Width16:
		return T(backend.rotateLeft16(uint16(value), shift))
	case Width32:
		return T(backend.rotateLeft32(uint32(value), shift))
	default:
		return T(backend.rotateLeft64(uint64(value), shift))
	}
}

// RotateRightWith is RotateRight using the given backend.
func RotateRightWith[T constraints.Integer](backend Backend, value T, count int) T {
	bitWidth := WidthOf[T]().Bits()

	// A right rotation by n is a left rotation by width-n.
	shift := normalize(count, bitWidth)
	if shift == 0 {
		return value
	}

	return RotateLeftWith(backend, value, bitWidth-shift)
}

// SwapByteOrderWith is SwapByteOrder using the given backend.
func SwapByteOrderWith[T constraints.Integer](backend Backend, value T) T {
	switch WidthOf[T]() {
	case Width8:
		return value
	case Width16:
		return T(backend.swap16(uint16(value)))
	case Width32:
		return T(backend.swap32(uint32(value)))
	default:
		return T(backend.swap64(uint64(value)))
	}
}

// CheckedRotateLeft is RotateLeft for callers that treat a bit count outside
// (0, width) as a programming error. Such counts return value unchanged
// together with an error wrapping ErrBitCount.
func CheckedRotateLeft[T constraints.Integer](value T, count int) (T, error) {
	if err := CheckCount[T](count); err != nil {
		return value, err
	}

	return RotateLeft(value, count), nil
}

// CheckedRotateRight is the checked counterpart of RotateRight.
func CheckedRotateRight[T constraints.Integer](value T, count int) (T, error) {
	if err := CheckCount[T](count); err != nil {
		return value, err
	}

	return RotateRight(value, count), nil
}

// CheckCount reports whether count is a valid bit count for the checked
// rotations of T, returning an error wrapping ErrBitCount if it is not.
func CheckCount[T constraints.Integer](count int) error {
	bitWidth := WidthOf[T]().Bits()
	if count <= 0 || count >= bitWidth {
		return fmt.Errorf("%w: %d is not in (0, %d)", ErrBitCount, count, bitWidth)
	}

	return nil
}

// normalize maps count into [0, bitWidth).
func normalize(count, bitWidth int) int {
	shift := count % bitWidth
	if shift < 0 {
		shift += bitWidth
	}

	return shift
}
