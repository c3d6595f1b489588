package sharedstore

import (
	"sort"
	"sync"

	c "github.com/unkn0wn-root/sharedstore/codec"
)

const defaultCapacity = 64

type store[V any] struct {
	codec       c.Codec[V]
	log         Logger
	hooks       Hooks
	exactlyOnce bool
	capacity    int

	// mu guards entries and gen. Entries themselves are read outside it.
	mu      sync.RWMutex
	entries map[string]*entry[V]
	gen     uint64

	stats counters
}

func newStore[V any](opts Options[V]) (*store[V], error) {
	if opts.Codec == nil {
		return nil, ErrNilCodec
	}

	s := &store[V]{
		codec:       opts.Codec,
		exactlyOnce: opts.ExactlyOnce,
	}

	// defaults
	s.log = coalesce[Logger](opts.Logger, NopLogger{})
	s.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	s.capacity = coalesce(opts.InitialCapacity, defaultCapacity)
	s.entries = make(map[string]*entry[V], s.capacity)

	return s, nil
}

func (s *store[V]) Set(key string, value V) error {
	gen, replaced, err := s.install(key, value)
	if err != nil {
		s.stats.serErrors.Add(1)
		return &SerializationError{Key: key, Err: err}
	}

	s.stats.sets.Add(1)
	if replaced {
		s.hooks.EntryReplaced(key)
		s.log.Debug("entry replaced", Fields{"key": key, "gen": gen})
	}
	return nil
}

func (s *store[V]) Get(key string) (V, bool, error) {
	var zero V

	e, ok := s.lookup(key)
	if !ok {
		s.stats.misses.Add(1)
		return zero, false, nil
	}
	s.stats.hits.Add(1)

	v, err := s.materialize(key, e)
	if err != nil {
		return zero, false, err
	}
	return *v, true, nil
}

// materialize returns the published value of e, decoding its text first if
// no reader has done so yet. The table lock is not held here.
func (s *store[V]) materialize(key string, e *entry[V]) (*V, error) {
	if v, ok := e.ready(); ok {
		return v, nil
	}

	if s.exactlyOnce {
		e.mu.Lock()
		defer e.mu.Unlock()
		if v, ok := e.ready(); ok {
			return v, nil
		}
	}

	v, err := s.codec.Decode([]byte(e.serialized))
	if err != nil {
		s.stats.deserErrors.Add(1)
		return nil, &DeserializationError{Key: key, Err: err}
	}
	s.stats.materializations.Add(1)

	published, won := e.publish(&v)
	if !won {
		s.stats.races.Add(1)
		s.hooks.MaterializeRace(key)
		s.log.Debug("materialize race; using published value", Fields{"key": key, "gen": e.gen})
	}
	return published, nil
}

func (s *store[V]) Clear() {
	s.mu.Lock()
	removed := len(s.entries)
	s.entries = make(map[string]*entry[V], s.capacity)
	s.mu.Unlock()

	s.stats.clears.Add(1)
	s.hooks.StoreCleared(removed)
	s.log.Debug("store cleared", Fields{"removed": removed})
}

func (s *store[V]) Delete(key string) bool {
	s.mu.Lock()
	_, ok := s.entries[key]
	delete(s.entries, key)
	s.mu.Unlock()

	if ok {
		s.stats.deletes.Add(1)
	}
	return ok
}

func (s *store[V]) Serialized(key string) (string, bool) {
	e, ok := s.lookup(key)
	if !ok {
		return "", false
	}
	return e.serialized, true
}

func (s *store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *store[V]) Keys() []string {
	s.mu.RLock()
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	s.mu.RUnlock()

	sort.Strings(keys)
	return keys
}

func (s *store[V]) Stats() Stats { return s.stats.snapshot() }

// install encodes value and swaps a fresh entry in for key. The table lock
// is released even if the codec panics.
func (s *store[V]) install(key string, value V) (gen uint64, replaced bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.codec.Encode(value)
	if err != nil {
		return 0, false, err
	}
	s.gen++
	_, replaced = s.entries[key]
	s.entries[key] = newEntry[V](string(raw), s.gen)
	return s.gen, replaced, nil
}

// lookup returns the entry currently installed for key.
func (s *store[V]) lookup(key string) (*entry[V], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	return e, ok
}

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
