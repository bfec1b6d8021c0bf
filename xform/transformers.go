package xform

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-numeric/limits"
)

// TrimString removes leading and trailing whitespace from a string.
func TrimString(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

// ToLower converts a string to lowercase.
func ToLower(s string) (string, error) {
	return strings.ToLower(s), nil
}

// OneOf returns a transformer that validates a value is one of the allowed choices.
// Returns ErrInvalidChoice if the value doesn't match any of the choices.
func OneOf[A comparable](choices ...A) func(A) (A, error) { //nolint:ireturn
	return func(value A) (A, error) {
		if slices.Contains(choices, value) {
			return value, nil
		}

		return value, fmt.Errorf("%w: %v (want one of %v)", ErrInvalidChoice, value, choices)
	}
}

// Bool parses a string as a boolean value.
// Accepts: "1", "t", "T", "true", "TRUE", "True", "0", "f", "F", "false", "FALSE", "False".
func Bool(value string) (bool, error) {
	return strconv.ParseBool(value)
}

// Number parses a string as a T.
//
// Integers use Go literal syntax, so "0x1f", "0b1010", "0o17" and "1_000"
// are all accepted, and the value must fit in T or ErrOutOfRange is returned.
// Floats additionally accept "NaN", "Inf", "+Inf" and "-Inf" in any case.
func Number[T Numeric](value string) (T, error) { //nolint:ireturn
	traits := limits.TraitsOf[T]()
	value = strings.TrimSpace(value)

	switch traits.Kind {
	case limits.KindSigned:
		n, err := strconv.ParseInt(value, 0, traits.Bits)
		if err != nil {
			return 0, numberError(value, traits, err)
		}

		return T(n), nil
	case limits.KindUnsigned:
		n, err := strconv.ParseUint(value, 0, traits.Bits)
		if err != nil {
			return 0, numberError(value, traits, err)
		}

		return T(n), nil
	default:
		f, err := strconv.ParseFloat(value, traits.Bits)
		if err != nil {
			return 0, numberError(value, traits, err)
		}

		return T(f), nil
	}
}

func numberError(value string, traits limits.Traits, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %q does not fit in a %d-bit %s", ErrOutOfRange, value, traits.Bits, traits.Kind)
	}

	return fmt.Errorf("%w: %q", ErrNotANumber, value)
}

// Positive validates that a numeric value is greater than zero.
// Returns ErrNonPositive if the value is less than or equal to zero.
func Positive[A Numeric](value A) (A, error) { //nolint:ireturn
	if value <= 0 {
		return value, fmt.Errorf("%w: %v", ErrNonPositive, value)
	}

	return value, nil
}

// SlogLevel parses a string as a slog.Level.
// Accepts: "debug", "info", "warn", "error" (case-sensitive).
// Returns ErrInvalidLogLevel for unrecognized values.
func SlogLevel(value string) (slog.Level, error) {
	switch value {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}
