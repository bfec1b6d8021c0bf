package numeric_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/amp-labs/amp-numeric/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

type layout struct {
	Width  numeric.Int32  `json:"width"  msgpack:"width"  yaml:"width"`
	Height numeric.UInt16 `json:"height" msgpack:"height" yaml:"height"`
	Scale  numeric.Double `json:"scale"  msgpack:"scale"  yaml:"scale"`
}

type rawLayout struct {
	Width  int32   `json:"width"  msgpack:"width"  yaml:"width"`
	Height uint16  `json:"height" msgpack:"height" yaml:"height"`
	Scale  float64 `json:"scale"  msgpack:"scale"  yaml:"scale"`
}

func TestJSON(t *testing.T) {
	t.Parallel()

	wrapped := layout{Width: numeric.New(int32(-640)), Height: numeric.New(uint16(480)), Scale: numeric.New(1.25)}
	raw := rawLayout{Width: -640, Height: 480, Scale: 1.25}

	want, err := json.Marshal(raw)
	require.NoError(t, err)

	got, err := json.Marshal(wrapped)
	require.NoError(t, err)

	assert.JSONEq(t, string(want), string(got))

	var decoded layout
	require.NoError(t, json.Unmarshal(got, &decoded))
	assert.Equal(t, wrapped, decoded)
}

func TestJSON_NonFinite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   float64
		encoded string
	}{
		{"nan", math.NaN(), `"NaN"`},
		{"positive infinity", math.Inf(1), `"+Inf"`},
		{"negative infinity", math.Inf(-1), `"-Inf"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			encoded, err := json.Marshal(numeric.New(tt.value))
			require.NoError(t, err)
			assert.Equal(t, tt.encoded, string(encoded))

			var f numeric.Float
			require.NoError(t, json.Unmarshal(encoded, &f))
			assert.Equal(t, math.IsNaN(tt.value), f.IsNaN())
			assert.Equal(t, math.IsInf(tt.value, 0), !f.IsFinite() && !f.IsNaN())
		})
	}

}

func TestJSON_OnlyNonFiniteTokens(t *testing.T) {
	t.Parallel()

	for _, input := range []string{`"Inf"`, `"infinity"`, `"nan"`, `"1.5"`, `""`} {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			d := numeric.New(7.0)
			require.ErrorIs(t, json.Unmarshal([]byte(input), &d), numeric.ErrNotANumber)
			assert.InDelta(t, 7.0, d.Get(), 0)
		})
	}

	var i numeric.Int

	err := json.Unmarshal([]byte(`"5"`), &i)
	require.ErrorIs(t, err, numeric.ErrNotANumber)
	require.NotErrorIs(t, err, numeric.ErrNotFinite)

	require.ErrorIs(t, json.Unmarshal([]byte(`"-Inf"`), &i), numeric.ErrNotFinite)
}

func TestJSON_Errors(t *testing.T) {
	t.Parallel()

	var i numeric.Int64

	err := json.Unmarshal([]byte(`"NaN"`), &i)
	require.ErrorIs(t, err, numeric.ErrNotFinite)

	var d numeric.Double

	err = json.Unmarshal([]byte(`"wide"`), &d)
	require.ErrorIs(t, err, numeric.ErrNotANumber)
	assert.Contains(t, err.Error(), `"wide"`)

	var small numeric.Int8

	err = json.Unmarshal([]byte(`300`), &small)
	require.Error(t, err)
}

func TestYAML(t *testing.T) {
	t.Parallel()

	wrapped := layout{Width: numeric.New(int32(1024)), Height: numeric.New(uint16(768)), Scale: numeric.New(0.5)}
	raw := rawLayout{Width: 1024, Height: 768, Scale: 0.5}

	want, err := yaml.Marshal(raw)
	require.NoError(t, err)

	got, err := yaml.Marshal(wrapped)
	require.NoError(t, err)

	assert.Equal(t, string(want), string(got))

	var decoded layout
	require.NoError(t, yaml.Unmarshal(got, &decoded))
	assert.Equal(t, wrapped, decoded)

	var nan numeric.Float
	require.NoError(t, yaml.Unmarshal([]byte(".nan"), &nan))
	assert.True(t, nan.IsNaN())
}

func TestMsgpack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     any
		wrapped any
	}{
		{"int8", int8(-3), numeric.New(int8(-3))},
		{"uint32", uint32(1 << 20), numeric.New(uint32(1 << 20))},
		{"int64", int64(math.MinInt64), numeric.New(int64(math.MinInt64))},
		{"float32", float32(3.5), numeric.New(float32(3.5))},
		{"float64", math.Pi, numeric.New(math.Pi)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			want, err := msgpack.Marshal(tt.raw)
			require.NoError(t, err)

			got, err := msgpack.Marshal(tt.wrapped)
			require.NoError(t, err)

			assert.Equal(t, want, got)
		})
	}

	encoded, err := msgpack.Marshal(layout{Width: numeric.New(int32(7)), Scale: numeric.New(2.0)})
	require.NoError(t, err)

	var decoded layout
	require.NoError(t, msgpack.Unmarshal(encoded, &decoded))
	assert.Equal(t, int32(7), decoded.Width.Get())
	assert.Equal(t, uint16(0), decoded.Height.Get())
	assert.InDelta(t, 2.0, decoded.Scale.Get(), 0)
}
