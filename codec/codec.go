// Package codec holds the serializers a Store uses to turn values into their
// stored form and back. JSON is the canonical textual form; the binary codecs
// are available when text is not a requirement.
package codec

import (
	"errors"
	"fmt"
)

// Codec encodes values V to the bytes a Store keeps and decodes them again.
// Decode must accept anything Encode produced for the same V.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

var ErrUnknownCodec = errors.New("codec: unknown codec")

// Names lists the codecs ByName understands.
var Names = []string{"json", "cbor", "cbor-deterministic", "msgpack"}

// ByName returns the named codec for V. Protobuf is not listed because it
// needs a message constructor; build it with NewProtobuf.
func ByName[V any](name string) (Codec[V], error) {
	switch name {
	case "json", "":
		return JSON[V]{}, nil
	case "cbor":
		return NewCBOR[V](false)
	case "cbor-deterministic":
		return NewCBOR[V](true)
	case "msgpack":
		return Msgpack[V]{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
}
