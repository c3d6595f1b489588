package sharedstore

import (
	"sync"
	"sync/atomic"
)

// entry is one key's slot. serialized never changes after construction.
// value is nil while the entry is pending and is published exactly once;
// the atomic store/load pair guarantees a reader that sees a non-nil
// pointer also sees the fully built value behind it.
type entry[V any] struct {
	serialized string
	gen        uint64

	value atomic.Pointer[V]

	// only taken when the store runs in exactly-once mode
	mu sync.Mutex
}

func newEntry[V any](serialized string, gen uint64) *entry[V] {
	return &entry[V]{serialized: serialized, gen: gen}
}

// ready returns the published value, if any.
func (e *entry[V]) ready() (*V, bool) {
	p := e.value.Load()
	return p, p != nil
}

// publish installs v unless another reader got there first.
// It returns the value every reader of this entry will observe and
// whether v was the one published.
func (e *entry[V]) publish(v *V) (*V, bool) {
	if e.value.CompareAndSwap(nil, v) {
		return v, true
	}
	return e.value.Load(), false
}
