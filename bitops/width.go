// Package bitops provides byte-order inversion and bit rotation for integers
// of any width. This is not a replacement for math/bits: it is a generic
// front end over it that picks the width-specific primitive from the operand
// type, accepts signed operands, and never lets a shift count reach the
// operand width.
package bitops

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Width is the size of an integer operand in bytes.
type Width uint8

const (
	Width8  Width = 1
	Width16 Width = 2
	Width32 Width = 4
	Width64 Width = 8
)

// Bits returns the width in bits.
func (w Width) Bits() int {
	return int(w) * 8
}

// WidthOf returns the width of T. The result depends only on T, so within
// one instantiation every dispatch on it selects the same branch.
func WidthOf[T constraints.Integer]() Width {
	var zero T

	return Width(unsafe.Sizeof(zero))
}
