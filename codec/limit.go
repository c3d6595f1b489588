package codec

import "fmt"

// SizeError reports a payload rejected by LimitCodec.
type SizeError struct {
	Op    string // "encode" or "decode"
	Size  int
	Limit int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("codec: %s payload too large: %d > %d", e.Op, e.Size, e.Limit)
}

// LimitCodec wraps another codec and bounds the size of the stored form.
// A limit <= 0 disables that direction's check.
//
// MaxEncode turns oversized values into a serialization error at Set time;
// MaxDecode guards materialization of text that did not come from Encode.
type LimitCodec[V any] struct {
	Inner     Codec[V]
	MaxEncode int
	MaxDecode int
}

func (c LimitCodec[V]) Encode(v V) ([]byte, error) {
	b, err := c.Inner.Encode(v)
	if err != nil {
		return nil, err
	}
	if c.MaxEncode > 0 && len(b) > c.MaxEncode {
		return nil, &SizeError{Op: "encode", Size: len(b), Limit: c.MaxEncode}
	}
	return b, nil
}

func (c LimitCodec[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, &SizeError{Op: "decode", Size: len(b), Limit: c.MaxDecode}
	}
	return c.Inner.Decode(b)
}
