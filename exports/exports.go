// Package exports is the untyped call surface over a Store[any]: set, get and
// clear taking loosely typed arguments. Malformed calls are no-ops instead of
// errors; codec failures are returned unchanged.
package exports

import (
	"sync"

	"github.com/unkn0wn-root/sharedstore"
	"github.com/unkn0wn-root/sharedstore/codec"
)

type Module struct {
	store sharedstore.Store[any]
	log   sharedstore.Logger
}

type Option func(*Module)

// WithLogger reports ignored calls at debug level.
func WithLogger(l sharedstore.Logger) Option {
	return func(m *Module) {
		if l != nil {
			m.log = l
		}
	}
}

func New(store sharedstore.Store[any], opts ...Option) *Module {
	m := &Module{store: store, log: sharedstore.NopLogger{}}
	for _, o := range opts {
		o(m)
	}
	return m
}

var defaultModule = sync.OnceValue(func() *Module {
	s, err := sharedstore.New[any](sharedstore.Options[any]{Codec: codec.JSON[any]{}})
	if err != nil {
		// only fails without a codec
		panic(err)
	}
	return New(s)
})

// Default returns the process-wide module, built on first use with the JSON
// codec. It lives until the process exits. Prefer New with an owned store
// where the caller controls the lifecycle.
func Default() *Module { return defaultModule() }

// Store exposes the underlying store.
func (m *Module) Store() sharedstore.Store[any] { return m.store }

// Set(key, value) stores value under key. A call without both arguments or
// with a non-string key does nothing and returns nil.
func (m *Module) Set(args ...any) error {
	if len(args) < 2 {
		m.ignored("set", len(args))
		return nil
	}
	key, ok := args[0].(string)
	if !ok {
		m.ignored("set", len(args))
		return nil
	}
	return m.store.Set(key, args[1])
}

// Get(key) returns the value stored under key, or nil when the key is
// unknown, missing or not a string.
func (m *Module) Get(args ...any) (any, error) {
	if len(args) < 1 {
		m.ignored("get", 0)
		return nil, nil
	}
	key, ok := args[0].(string)
	if !ok {
		m.ignored("get", len(args))
		return nil, nil
	}
	v, found, err := m.store.Get(key)
	if err != nil || !found {
		return nil, err
	}
	return v, nil
}

// Clear empties the store unconditionally.
func (m *Module) Clear() { m.store.Clear() }

func (m *Module) ignored(op string, argc int) {
	m.log.Debug("call ignored", sharedstore.Fields{
		"op":   op,
		"argc": argc,
		"err":  sharedstore.ErrInvalidArgument,
	})
}
