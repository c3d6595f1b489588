package codec

import (
	"bytes"
	"encoding/json"
)

// JSON is the default codec. Its output is UTF-8 text.
// Decoding into an interface type yields map[string]any, []any, float64,
// string, bool and nil, per encoding/json.
type JSON[V any] struct {
	// UseNumber decodes numbers held in interface values as json.Number
	// instead of float64, keeping integer precision.
	UseNumber bool
}

var _ Codec[any] = JSON[any]{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }

func (c JSON[V]) Decode(b []byte) (V, error) {
	var v V
	if !c.UseNumber {
		err := json.Unmarshal(b, &v)
		return v, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	err := dec.Decode(&v)
	return v, err
}
