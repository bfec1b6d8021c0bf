package numeric

// Canonical instantiations. The C-style names follow LP64 sizes: long is
// pointer sized and long long is 64 bits. Go has no extended precision
// float, so LongDouble is float64.
type (
	SignedChar   = Value[int8]
	UnsignedChar = Value[uint8]
	Short        = Value[int16]
	UShort       = Value[uint16]
	Int          = Value[int]
	UInt         = Value[uint]
	Long         = Value[int]
	ULong        = Value[uint]
	LongLong     = Value[int64]
	ULongLong    = Value[uint64]

	Int8   = Value[int8]
	UInt8  = Value[uint8]
	Int16  = Value[int16]
	UInt16 = Value[uint16]
	Int32  = Value[int32]
	UInt32 = Value[uint32]
	Int64  = Value[int64]
	UInt64 = Value[uint64]

	Float      = Value[float32]
	Double     = Value[float64]
	LongDouble = Value[float64]
)
