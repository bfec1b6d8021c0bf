package bitops

import (
	"math/bits"
)

// Backend holds one implementation of the width-specific primitives.
//
// The rotate functions are only ever called with a count in (0, width); the
// generic front ends normalize the count before dispatching. The byte swap
// for a single byte is the identity, so there is no swap8.
//
// A Backend is an immutable value: its primitives are fixed when the package
// is initialized and cannot be replaced by importers.
type Backend struct {
	name string

	rotateLeft8  func(value uint8, count int) uint8
	rotateLeft16 func(value uint16, count int) uint16
	rotateLeft32 func(value uint32, count int) uint32
	rotateLeft64 func(value uint64, count int) uint64

	swap16 func(value uint16) uint16
	swap32 func(value uint32) uint32
	swap64 func(value uint64) uint64
}

// Name returns the name the backend is listed under in Backends.
func (b Backend) Name() string {
	return b.name
}

var intrinsic = Backend{ //nolint:gochecknoglobals
	name:         "intrinsic",
	rotateLeft8:  bits.RotateLeft8,
	rotateLeft16: bits.RotateLeft16,
	rotateLeft32: bits.RotateLeft32,
	rotateLeft64: bits.RotateLeft64,
	swap16:       bits.ReverseBytes16,
	swap32:       bits.ReverseBytes32,
	swap64:       bits.ReverseBytes64,
}

var portable = Backend{ //nolint:gochecknoglobals
	name:         "portable",
	rotateLeft8:  portableRotateLeft8,
	rotateLeft16: portableRotateLeft16,
	rotateLeft32: portableRotateLeft32,
	rotateLeft64: portableRotateLeft64,
	swap16:       portableSwap16,
	swap32:       portableSwap32,
	swap64:       portableSwap64,
}

// Intrinsic is backed by math/bits, which the compiler lowers to the CPU's
// rotate and byte swap instructions where they exist.
func Intrinsic() Backend {
	return intrinsic
}

// Portable rebuilds every result from shifts and masks. It produces the same
// bits as Intrinsic on every width.
func Portable() Backend {
	return portable
}

// Backends lists the available backends by name. Each call returns a new map.
func Backends() map[string]Backend {
	return map[string]Backend{
		intrinsic.name: intrinsic,
		portable.name:  portable,
	}
}

func portableRotateLeft8(value uint8, count int) uint8 {
	return value<<uint(count) | value>>uint(8-count) //nolint:gosec
}

func portableRotateLeft16(value uint16, count int) uint16 {
	return value<<uint(count) | value>>uint(16-count) //nolint:gosec
}

func portableRotateLeft32(value uint32, count int) uint32 {
	return value<<uint(count) | value>>uint(32-count) //nolint:gosec
}

func portableRotateLeft64(value uint64, count int) uint64 {
	return value<<uint(count) | value>>uint(64-count) //nolint:gosec
}

func portableSwap16(value uint16) uint16 {
	return (value&0xff)<<8 | (value&0xff00)>>8
}

func portableSwap32(value uint32) uint32 {
	return (value&0xff)<<24 |
		(value&0xff00)<<8 |
		(value&0xff0000)>>8 |
		(value&0xff000000)>>24
}

func portableSwap64(value uint64) uint64 {
	return (value&0xff)<<56 |
		(value&0xff00)<<40 |
		(value&0xff0000)<<24 |
		(value&0xff000000)<<8 |
		(value&0xff00000000)>>8 |
		(value&0xff0000000000)>>24 |
		(value&0xff000000000000)>>40 |
		(value&0xff00000000000000)>>56
}
