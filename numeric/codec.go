package numeric

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/amp-labs/amp-numeric/classify"
	"github.com/amp-labs/amp-numeric/limits"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// ErrNotFinite is returned when a non-finite value is decoded into an
// integer Value.
var ErrNotFinite = errors.New("non-finite value for integer type")

// ErrNotANumber is returned when a JSON string other than "NaN", "+Inf" or
// "-Inf" is decoded into a Value.
var ErrNotANumber = errors.New("string is not a number")

// MarshalJSON encodes the held primitive. JSON has no NaN or infinity, so
// those are written as the strings "NaN", "+Inf" and "-Inf".
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !classify.IsFinite(v.value) {
		return json.Marshal(nonFiniteString(float64(v.value)))
	}

	return json.Marshal(v.value)
}

// UnmarshalJSON decodes a JSON number, or for floating point types one of the
// strings written by MarshalJSON. Any other string is rejected.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || data[0] != '"' {
		return json.Unmarshal(data, &v.value)
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}

	f, ok := parseNonFinite(text)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotANumber, text)
	}

	if limits.IsInteger[T]() {
		return fmt.Errorf("%w: %q", ErrNotFinite, text)
	}

	v.value = T(f)

	return nil
}

func parseNonFinite(text string) (float64, bool) {
	switch text {
	case "NaN":
		return math.NaN(), true
	case "+Inf":
		return math.Inf(1), true
	case "-Inf":
		return math.Inf(-1), true
	default:
		return 0, false
	}
}

func nonFiniteString(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	default:
		return "NaN"
	}
}

// MarshalYAML encodes the held primitive as YAML would encode it directly.
func (v Value[T]) MarshalYAML() (any, error) {
	return v.value, nil
}

// UnmarshalYAML decodes a YAML scalar into the held primitive.
func (v *Value[T]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&v.value)
}

// EncodeMsgpack implements msgpack.CustomEncoder; the output is identical to
// encoding the primitive.
func (v Value[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(v.value)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (v *Value[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	return dec.Decode(&v.value)
}
