package bitops

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

//nolint:gochecknoglobals
var hostLittleEndian = binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001

// HostIsLittleEndian reports the byte order of the machine we run on.
func HostIsLittleEndian() bool {
	return hostLittleEndian
}

// ToBigEndian converts value from host order to big endian order.
func ToBigEndian[T constraints.Integer](value T) T {
	if hostLittleEndian {
		return SwapByteOrder(value)
	}

	return value
}

// FromBigEndian converts value from big endian order to host order.
func FromBigEndian[T constraints.Integer](value T) T {
	return ToBigEndian(value)
}

// ToLittleEndian converts value from host order to little endian order.
func ToLittleEndian[T constraints.Integer](value T) T {
	if hostLittleEndian {
		return value
	}

	return SwapByteOrder(value)
}

// FromLittleEndian converts value from little endian order to host order.
func FromLittleEndian[T constraints.Integer](value T) T {
	return ToLittleEndian(value)
}
