package envutil

import (
	"log/slog"
	"os"

	"github.com/amp-labs/amp-numeric/xform"
)

func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

// NewReader returns a Reader for raw data that did not come from the
// environment, such as a command line flag.
func NewReader[T any](key string, present bool, err error, value T) Reader[T] {
	return Reader[T]{
		key:     key,
		present: present,
		value:   value,
		err:     err,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(key string, opts ...Option[string]) Reader[string] {
	return apply(Map(get(key), xform.TrimString), opts)
}

func Bool(key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(key), xform.Bool), opts)
}

// Number reads any integer or float type, accepting the literal syntax of
// xform.Number.
func Number[T xform.Numeric](key string, opts ...Option[T]) Reader[T] {
	return apply(Map(get(key), xform.Number[T]), opts)
}

func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(key), xform.SlogLevel), opts)
}

// OneOf reads a string and requires it to be one of choices.
func OneOf(key string, choices []string, opts ...Option[string]) Reader[string] {
	rdr := Map(Map(get(key), xform.TrimString), xform.ToLower)

	return apply(Map(rdr, xform.OneOf(choices...)), opts)
}
