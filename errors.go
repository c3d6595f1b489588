package sharedstore

import (
	"errors"
	"fmt"
)

var (
	ErrNilCodec = errors.New("sharedstore: codec is required")

	// ErrInvalidArgument marks a call with a missing or wrongly typed key.
	// The exported call surface degrades such calls to no-ops; it is exposed
	// so adapters can report them.
	ErrInvalidArgument = errors.New("sharedstore: invalid argument")
)

// SerializationError is returned by Set when the codec cannot encode a value.
type SerializationError struct {
	Key string
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("sharedstore: serialize %q: %v", e.Key, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// DeserializationError is returned by Get when the stored text of an entry
// cannot be decoded. The entry is left pending; a later Get retries.
type DeserializationError struct {
	Key string
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("sharedstore: deserialize %q: %v", e.Key, e.Err)
}

func (e *DeserializationError) Unwrap() error { return e.Err }
