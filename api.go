package sharedstore

import (
	c "github.com/unkn0wn-root/sharedstore/codec"
)

// Store is a string-keyed object store with serialize-on-write and
// materialize-on-first-read semantics. V is the caller's value type.
// All methods are safe for concurrent use.
type Store[V any] interface {
	// Set serializes value and installs it as a fresh entry under key,
	// replacing any previous entry. On a codec failure the table is left
	// unchanged and a *SerializationError is returned.
	Set(key string, value V) error

	// Get returns the materialized value for key. The first Get of an entry
	// decodes its serialized form; later calls return the published value.
	// Unknown keys yield (zero, false, nil). A codec failure yields a
	// *DeserializationError and the entry stays unmaterialized.
	Get(key string) (v V, ok bool, err error)

	// Clear detaches every entry. Entries already returned to in-flight
	// readers remain valid for them.
	Clear()

	// Delete detaches the entry for key and reports whether one existed.
	Delete(key string) bool

	// Serialized returns the stored textual form of key without materializing it.
	Serialized(key string) (string, bool)

	Len() int
	Keys() []string // sorted snapshot
	Stats() Stats
}

// Options configure a Store. Only Codec is required.
type Options[V any] struct {
	Codec c.Codec[V]

	Logger Logger // nil => NopLogger
	Hooks  Hooks  // nil => NopHooks

	// ExactlyOnce serializes first reads of an entry behind a per-entry lock
	// so its text is decoded exactly once. Default false: concurrent first
	// readers may each decode, one result is published and shared.
	ExactlyOnce bool

	InitialCapacity int // 0 => 64
}

func New[V any](opts Options[V]) (Store[V], error) {
	return newStore[V](opts)
}
