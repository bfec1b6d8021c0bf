package xform

import (
	"errors"

	"github.com/amp-labs/amp-numeric/limits"
)

var (
	ErrInvalidChoice   = errors.New("invalid choice")
	ErrNonPositive     = errors.New("value must be positive")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrNotANumber      = errors.New("not a number")
	ErrOutOfRange      = errors.New("value out of range")
)

// Numeric is every primitive that a transformer in this package can produce.
type Numeric = limits.Number
