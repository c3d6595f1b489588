package codec

import "github.com/vmihailenco/msgpack/v5"

// Msgpack is a binary Codec backed by vmihailenco/msgpack/v5.
// The zero value is ready to use.
//
// Struct fields are matched by `msgpack:"name"` tags, falling back to the
// Go field name; `json` tags are ignored. Maps decoded into an any-typed V
// come back as map[string]any, the same shape the JSON and CBOR codecs give.
type Msgpack[V any] struct{}

var _ Codec[struct{}] = Msgpack[struct{}]{}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (Msgpack[V]) Decode(b []byte) (V, error) {
	var v V
	if err := msgpack.Unmarshal(b, &v); err != nil {
		return v, err
	}
	return v, nil
}
