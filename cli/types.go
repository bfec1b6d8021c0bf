package cli

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/amp-labs/amp-numeric/bitops"
	"github.com/amp-labs/amp-numeric/classify"
	"github.com/amp-labs/amp-numeric/hashing"
	"github.com/amp-labs/amp-numeric/limits"
	"github.com/amp-labs/amp-numeric/numeric"
	"github.com/amp-labs/amp-numeric/xform"
	"golang.org/x/exp/constraints"
)

var (
	ErrUnknownType = errors.New("unknown type")
	ErrParse       = errors.New("cannot parse value")
	ErrNotInteger  = errors.New("operation requires an integer type")
)

// direction of a rotation.
type direction int

const (
	rotateLeft direction = iota
	rotateRight
)

// numberType is everything the commands do with one concrete primitive. The
// registry maps type names to an instantiation of integerType or floatType,
// so each command is written once and the generic code below does the work.
type numberType interface {
	Name() string
	Limits() LimitsReport
	Swap(backend bitops.Backend, raw string) (Result, error)
	Rotate(backend bitops.Backend, raw string, count int, dir direction, strict bool) (Result, error)
	Classify(raw string) (Result, error)
	Hash(fn hashing.HashFunc, raw string) (Result, error)
}

var types = map[string]numberType{ //nolint:gochecknoglobals
	"int8":    integerType[int8]{"int8"},
	"int16":   integerType[int16]{"int16"},
	"int32":   integerType[int32]{"int32"},
	"int64":   integerType[int64]{"int64"},
	"int":     integerType[int]{"int"},
	"uint8":   integerType[uint8]{"uint8"},
	"uint16":  integerType[uint16]{"uint16"},
	"uint32":  integerType[uint32]{"uint32"},
	"uint64":  integerType[uint64]{"uint64"},
	"uint":    integerType[uint]{"uint"},
	"uintptr": integerType[uintptr]{"uintptr"},
	"byte":    integerType[byte]{"byte"},
	"rune":    integerType[rune]{"rune"},
	"short":   integerType[int16]{"short"},
	"ushort":  integerType[uint16]{"ushort"},
	"long":    integerType[int]{"long"},
	"ulong":   integerType[uint]{"ulong"},
	"float32": floatType[float32]{"float32"},
	"float64": floatType[float64]{"float64"},
	"float":   floatType[float32]{"float"},
	"double":  floatType[float64]{"double"},
}

// TypeNames lists every type name the commands accept.
func TypeNames() []string {
	return slices.Sorted(maps.Keys(types))
}

func lookupType(name string) (numberType, error) { //nolint:ireturn
	typ, ok := types[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known types: %s)", ErrUnknownType, name, strings.Join(TypeNames(), ", "))
	}

	return typ, nil
}

func parse[T limits.Number](typeName, raw string) (T, error) { //nolint:ireturn
	value, err := xform.Number[T](raw)
	if err != nil {
		return value, fmt.Errorf("%w as %s: %w", ErrParse, typeName, err)
	}

	return value, nil
}

func limitsOf[T limits.Number](name string) LimitsReport {
	report := LimitsReport{
		Type:   name,
		Traits: limits.TraitsOf[T](),
		Min:    fmt.Sprint(limits.Min[T]()),
		Max:    fmt.Sprint(limits.Max[T]()),
	}

	if limits.HasInfinity[T]() {
		report.Infinity = fmt.Sprint(limits.Infinity[T]())
		report.NegativeInfinity = fmt.Sprint(limits.NegativeInfinity[T]())
	}

	if limits.HasNaN[T]() {
		report.NaN = fmt.Sprint(limits.NaN[T]())
	}

	return report
}

func hashResult[T limits.Number](fn hashing.HashFunc, raw string, value T, hex string) (Result, error) {
	digest, err := fn(numeric.New(value))
	if err != nil {
		return Result{}, err
	}

	return Result{Input: raw, Value: fmt.Sprint(value), Hex: hex, Digest: digest}, nil
}

type integerType[T constraints.Integer] struct {
	name string
}

func (it integerType[T]) Name() string {
	return it.name
}

func (it integerType[T]) Limits() LimitsReport {
	return limitsOf[T](it.name)
}

func (it integerType[T]) Swap(backend bitops.Backend, raw string) (Result, error) {
	value, err := parse[T](it.name, raw)
	if err != nil {
		return Result{}, err
	}

	return integerResult(raw, bitops.SwapByteOrderWith(backend, value)), nil
}

func (it integerType[T]) Rotate(
	backend bitops.Backend,
	raw string,
	count int,
	dir direction,
	strict bool,
) (Result, error) {
	value, err := parse[T](it.name, raw)
	if err != nil {
		return Result{}, err
	}

	if strict {
		if err := bitops.CheckCount[T](count); err != nil {
			return Result{}, err
		}
	}

	if dir == rotateRight {
		return integerResult(raw, bitops.RotateRightWith(backend, value, count)), nil
	}

	return integerResult(raw, bitops.RotateLeftWith(backend, value, count)), nil
}

func (it integerType[T]) Classify(raw string) (Result, error) {
	value, err := parse[T](it.name, raw)
	if err != nil {
		return Result{}, err
	}

	result := integerResult(raw, value)
	result.Class = classify.Classify(value).String()

	return result, nil
}

func (it integerType[T]) Hash(fn hashing.HashFunc, raw string) (Result, error) {
	value, err := parse[T](it.name, raw)
	if err != nil {
		return Result{}, err
	}

	return hashResult(fn, raw, value, integerHex(value))
}

func integerResult[T constraints.Integer](raw string, value T) Result {
	return Result{Input: raw, Value: fmt.Sprint(value), Hex: integerHex(value)}
}

// integerHex formats the two's complement bit pattern of value, zero padded
// to the width of T.
func integerHex[T constraints.Integer](value T) string {
	width := bitops.WidthOf[T]()

	pattern := uint64(value)
	if width < bitops.Width64 {
		pattern &= 1<<width.Bits() - 1
	}

	return fmt.Sprintf("0x%0*x", int(width)*2, pattern) //nolint:mnd
}

type floatType[T constraints.Float] struct {
	name string
}

func (ft floatType[T]) Name() string {
	return ft.name
}

func (ft floatType[T]) Limits() LimitsReport {
	return limitsOf[T](ft.name)
}

func (ft floatType[T]) Swap(bitops.Backend, string) (Result, error) {
	return Result{}, fmt.Errorf("%w: %s", ErrNotInteger, ft.name)
}

func (ft floatType[T]) Rotate(bitops.Backend, string, int, direction, bool) (Result, error) {
	return Result{}, fmt.Errorf("%w: %s", ErrNotInteger, ft.name)
}

func (ft floatType[T]) Classify(raw string) (Result, error) {
	value, err := parse[T](ft.name, raw)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Input: raw,
		Value: fmt.Sprint(value),
		Hex:   floatHex(value),
		Class: classify.Classify(value).String(),
	}, nil
}

func (ft floatType[T]) Hash(fn hashing.HashFunc, raw string) (Result, error) {
	value, err := parse[T](ft.name, raw)
	if err != nil {
		return Result{}, err
	}

	return hashResult(fn, raw, value, floatHex(value))
}

// floatHex formats the IEEE-754 bit pattern of value.
func floatHex[T constraints.Float](value T) string {
	if limits.TraitsOf[T]().Bytes == 4 { //nolint:mnd
		return fmt.Sprintf("0x%08x", math.Float32bits(float32(value)))
	}

	return fmt.Sprintf("0x%016x", math.Float64bits(float64(value)))
}
