package envutil_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/amp-labs/amp-numeric/envutil"
	"github.com/amp-labs/amp-numeric/xform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNeedWorkers = errors.New("workers required")

func TestString(t *testing.T) {
	t.Setenv("NUMTOOL_TEST_STRING", "  portable ")

	value, err := envutil.String("NUMTOOL_TEST_STRING").Value()
	require.NoError(t, err)
	assert.Equal(t, "portable", value)

	_, err = envutil.String("NUMTOOL_TEST_STRING_MISSING").Value()
	require.ErrorIs(t, err, envutil.ErrEnvVarMissing)
}

func TestNumber(t *testing.T) {
	t.Setenv("NUMTOOL_TEST_WORKERS", "0x10")
	t.Setenv("NUMTOOL_TEST_BAD", "many")
	t.Setenv("NUMTOOL_TEST_ZERO", "0")
	t.Setenv("NUMTOOL_TEST_SCALE", "2.5")

	workers, err := envutil.Number[int]("NUMTOOL_TEST_WORKERS").Value()
	require.NoError(t, err)
	assert.Equal(t, 16, workers)

	_, err = envutil.Number[int]("NUMTOOL_TEST_BAD").Value()
	require.ErrorIs(t, err, envutil.ErrBadEnvVar)
	require.ErrorIs(t, err, xform.ErrNotANumber)

	_, err = envutil.Number[uint8]("NUMTOOL_TEST_WORKERS", envutil.Transform(xform.Positive[uint8])).Value()
	require.NoError(t, err)

	_, err = envutil.Number[int]("NUMTOOL_TEST_ZERO", envutil.Transform(xform.Positive[int])).Value()
	require.ErrorIs(t, err, xform.ErrNonPositive)

	scale, err := envutil.Number[float32]("NUMTOOL_TEST_SCALE").Value()
	require.NoError(t, err)
	assert.InDelta(t, float32(2.5), scale, 0)
}

func TestDefault(t *testing.T) {
	t.Setenv("NUMTOOL_TEST_DEFAULT_BAD", "many")

	value, err := envutil.Number("NUMTOOL_TEST_DEFAULT_MISSING", envutil.Default(4)).Value()
	require.NoError(t, err)
	assert.Equal(t, 4, value)

	// A value that is set but malformed keeps its error.
	_, err = envutil.Number("NUMTOOL_TEST_DEFAULT_BAD", envutil.Default(4)).Value()
	require.ErrorIs(t, err, envutil.ErrBadEnvVar)

	assert.Equal(t, 8, envutil.Number[int]("NUMTOOL_TEST_DEFAULT_BAD").ValueOrElse(8))
	assert.Equal(t, 8, envutil.Number[int]("NUMTOOL_TEST_DEFAULT_MISSING").ValueOrElse(8))
}

func TestIfMissing(t *testing.T) {
	t.Parallel()

	rdr := envutil.Number[int]("NUMTOOL_TEST_IF_MISSING", envutil.IfMissing[int](errNeedWorkers))
	assert.True(t, rdr.HasError())
	assert.False(t, rdr.HasValue())

	_, err := rdr.Value()
	require.ErrorIs(t, err, errNeedWorkers)
}

func TestValidate(t *testing.T) {
	t.Setenv("NUMTOOL_TEST_VALIDATE", "3")

	odd := func(n int) error {
		if n%2 == 0 {
			return errNeedWorkers
		}

		return nil
	}

	value, err := envutil.Number("NUMTOOL_TEST_VALIDATE", envutil.Validate(odd)).Value()
	require.NoError(t, err)
	assert.Equal(t, 3, value)

	t.Setenv("NUMTOOL_TEST_VALIDATE", "4")

	_, err = envutil.Number("NUMTOOL_TEST_VALIDATE", envutil.Validate(odd)).Value()
	require.ErrorIs(t, err, errNeedWorkers)
}

func TestOneOf(t *testing.T) {
	t.Setenv("NUMTOOL_TEST_BACKEND", " Portable")
	t.Setenv("NUMTOOL_TEST_BACKEND_BAD", "assembly")

	backends := []string{"intrinsic", "portable"}

	value, err := envutil.OneOf("NUMTOOL_TEST_BACKEND", backends).Value()
	require.NoError(t, err)
	assert.Equal(t, "portable", value)

	_, err = envutil.OneOf("NUMTOOL_TEST_BACKEND_BAD", backends).Value()
	require.ErrorIs(t, err, xform.ErrInvalidChoice)

	value, err = envutil.OneOf("NUMTOOL_TEST_BACKEND_MISSING", backends, envutil.Default("intrinsic")).Value()
	require.NoError(t, err)
	assert.Equal(t, "intrinsic", value)
}

func TestBoolAndLevel(t *testing.T) {
	t.Setenv("NUMTOOL_TEST_JSON", "true")
	t.Setenv("NUMTOOL_TEST_LEVEL", "debug")

	assert.True(t, envutil.Bool("NUMTOOL_TEST_JSON").ValueOrElse(false))
	assert.Equal(t, slog.LevelDebug, envutil.SlogLevel("NUMTOOL_TEST_LEVEL").ValueOrElse(slog.LevelInfo))
	assert.Equal(t, slog.LevelWarn, envutil.SlogLevel("NUMTOOL_TEST_LEVEL_MISSING").ValueOrElse(slog.LevelWarn))
}

func TestReaderString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "KEY=5", envutil.NewReader("KEY", true, nil, 5).String())
	assert.Equal(t, "KEY=<not set>", envutil.NewReader("KEY", false, nil, 0).String())
	assert.Equal(t, "KEY=<error: workers required>", envutil.NewReader("KEY", true, errNeedWorkers, 0).String())
	assert.Equal(t, "KEY", envutil.NewReader("KEY", true, nil, 0).Key())
	assert.Equal(t, errNeedWorkers, envutil.NewReader("KEY", true, errNeedWorkers, 0).Error())
}
