package collectable_test

import (
	"math"
	"testing"

	"github.com/amp-labs/amp-numeric/collectable"
	"github.com/amp-labs/amp-numeric/hashing"
	"github.com/amp-labs/amp-numeric/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromComparable_Int(t *testing.T) {
	t.Parallel()

	value := 42
	c := collectable.FromComparable(value)

	require.NotNil(t, c)
	assert.True(t, c.Equals(42))
	assert.False(t, c.Equals(43))

	hash, err := hashing.Sha256(c)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Same value produces same hash.
	hash2, err := hashing.Sha256(collectable.FromComparable(42))
	require.NoError(t, err)
	assert.Equal(t, hash, hash2)

	// Different value produces different hash.
	hash3, err := hashing.Sha256(collectable.FromComparable(43))
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash3)
}

func TestFromComparable_MatchesNumericValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     hashing.Hashable
		wrapped hashing.Hashable
	}{
		{"int8", collectable.FromComparable(int8(-3)), numeric.New(int8(-3))},
		{"uint16", collectable.FromComparable(uint16(0x1234)), numeric.New(uint16(0x1234))},
		{"int32", collectable.FromComparable(int32(5)), numeric.New(int32(5))},
		{"uint64", collectable.FromComparable(uint64(math.MaxUint64)), numeric.New(uint64(math.MaxUint64))},
		{"int", collectable.FromComparable(5), numeric.New(5)},
		{"float32", collectable.FromComparable(float32(0.5)), numeric.New(float32(0.5))},
		{"float64", collectable.FromComparable(math.Pi), numeric.New(math.Pi)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			want, err := hashing.Sha256(tt.raw)
			require.NoError(t, err)

			got, err := hashing.Sha256(tt.wrapped)
			require.NoError(t, err)

			assert.Equal(t, want, got)
		})
	}
}

func TestFromComparable_NumericValueKey(t *testing.T) {
	t.Parallel()

	key := numeric.New(int16(7))
	c := collectable.FromComparable(key)

	assert.True(t, c.Equals(numeric.New(int16(7))))
	assert.False(t, c.Equals(numeric.New(int16(8))))

	want, err := hashing.XXH3(key)
	require.NoError(t, err)

	got, err := hashing.XXH3(c)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestFromComparable_OtherTypes(t *testing.T) {
	t.Parallel()

	s, err := hashing.Sha256(collectable.FromComparable("hello"))
	require.NoError(t, err)
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", s)

	yes, err := hashing.Sha256(collectable.FromComparable(true))
	require.NoError(t, err)

	no, err := hashing.Sha256(collectable.FromComparable(false))
	require.NoError(t, err)
	assert.NotEqual(t, yes, no)

	type point struct{ X, Y int }

	_, err = hashing.Sha256(collectable.FromComparable(point{1, 2}))
	require.ErrorIs(t, err, collectable.ErrUnsupportedType)
	assert.Contains(t, err.Error(), "point")
}

func TestComparableWrapper_ImplementsCollectable(t *testing.T) {
	t.Parallel()

	var _ collectable.Collectable[int] = collectable.FromComparable(1)

	var _ collectable.Collectable[numeric.Double] = numeric.New(1.0)

	var _ collectable.Collectable[numeric.UInt8] = numeric.New(uint8(1))
}
