package xform_test

import (
	"log/slog"
	"math"
	"testing"

	"github.com/amp-labs/amp-numeric/xform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no whitespace", "hello", "hello"},
		{"both sides", "  hello  ", "hello"},
		{"tabs", "\t\thello\t\t", "hello"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := xform.TrimString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	t.Run("valid choice", func(t *testing.T) {
		t.Parallel()

		validator := xform.OneOf("intrinsic", "portable")
		result, err := validator("portable")
		require.NoError(t, err)
		assert.Equal(t, "portable", result)
	})

	t.Run("invalid choice", func(t *testing.T) {
		t.Parallel()

		validator := xform.OneOf("intrinsic", "portable")
		_, err := validator("assembly")
		require.ErrorIs(t, err, xform.ErrInvalidChoice)
		assert.Contains(t, err.Error(), "assembly")
	})

	t.Run("empty choices", func(t *testing.T) {
		t.Parallel()

		validator := xform.OneOf[int]()
		_, err := validator(1)
		assert.ErrorIs(t, err, xform.ErrInvalidChoice)
	})
}

func TestBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		expected  bool
		wantError bool
	}{
		{"true", "true", true, false},
		{"1", "1", true, false},
		{"false", "FALSE", false, false},
		{"0", "0", false, false},
		{"invalid", "yes", false, true},
		{"empty", "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := xform.Bool(tt.input)
			if tt.wantError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestNumber_Signed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected int16
		wantErr  error
	}{
		{"decimal", "1234", 1234, nil},
		{"negative", "-5", -5, nil},
		{"hex", "0x1234", 0x1234, nil},
		{"binary", "0b1010", 10, nil},
		{"octal", "0o17", 15, nil},
		{"underscores", "1_000", 1000, nil},
		{"surrounding space", " 7 ", 7, nil},
		{"min", "-32768", math.MinInt16, nil},
		{"too large", "32768", 0, xform.ErrOutOfRange},
		{"hex too large", "0xffff", 0, xform.ErrOutOfRange},
		{"float", "1.5", 0, xform.ErrNotANumber},
		{"nan", "NaN", 0, xform.ErrNotANumber},
		{"empty", "", 0, xform.ErrNotANumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := xform.Number[int16](tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNumber_Unsigned(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected uint8
		wantErr  error
	}{
		{"decimal", "200", 200, nil},
		{"hex", "0xff", 0xff, nil},
		{"too large", "256", 0, xform.ErrOutOfRange},
		{"negative", "-1", 0, xform.ErrNotANumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := xform.Number[uint8](tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	big, err := xform.Number[uint64]("0xffffffffffffffff")
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), big)
}

func TestNumber_Float(t *testing.T) {
	t.Parallel()

	f, err := xform.Number[float64]("1.25")
	require.NoError(t, err)
	assert.InDelta(t, 1.25, f, 0)

	for _, input := range []string{"NaN", "nan"} {
		f, err = xform.Number[float64](input)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(f))
	}

	for input, sign := range map[string]int{"Inf": 1, "+Inf": 1, "-Inf": -1, "infinity": 1} {
		f, err = xform.Number[float64](input)
		require.NoError(t, err)
		assert.True(t, math.IsInf(f, sign), input)
	}

	small, err := xform.Number[float32]("0x1p-2")
	require.NoError(t, err)
	assert.InDelta(t, float32(0.25), small, 0)

	_, err = xform.Number[float32]("1e39")
	require.ErrorIs(t, err, xform.ErrOutOfRange)

	_, err = xform.Number[float64]("wide")
	require.ErrorIs(t, err, xform.ErrNotANumber)
}

func TestPositive(t *testing.T) {
	t.Parallel()

	n, err := xform.Positive(4)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = xform.Positive(0)
	require.ErrorIs(t, err, xform.ErrNonPositive)

	_, err = xform.Positive(int64(-3))
	require.ErrorIs(t, err, xform.ErrNonPositive)

	_, err = xform.Positive(-0.5)
	require.ErrorIs(t, err, xform.ErrNonPositive)
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		expected  slog.Level
		wantError bool
	}{
		{"debug", "debug", slog.LevelDebug, false},
		{"info", "info", slog.LevelInfo, false},
		{"warn", "warn", slog.LevelWarn, false},
		{"error", "error", slog.LevelError, false},
		{"uppercase", "DEBUG", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := xform.SlogLevel(tt.input)
			if tt.wantError {
				assert.ErrorIs(t, err, xform.ErrInvalidLogLevel)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}
