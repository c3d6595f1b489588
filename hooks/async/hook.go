// Package asynchook moves Hooks calls off the store's hot path.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{RaceEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	store, _ := sharedstore.New[any](sharedstore.Options[any]{
//	    Codec: codec.JSON[any]{},
//	    Hooks: hooks,
//	})
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/sharedstore"
)

// Hooks forwards events to inner on a fixed set of workers.
// When the queue is full or Close has been called the event is dropped.
type Hooks struct {
	inner sharedstore.Hooks
	q     chan func()
	wg    sync.WaitGroup

	mu      sync.RWMutex // guards closed against sends racing close(q)
	closed  bool
	dropped atomic.Uint64
}

var _ sharedstore.Hooks = (*Hooks)(nil)

func New(inner sharedstore.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Safe to call twice.
func (h *Hooks) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	close(h.q)
	h.mu.Unlock()
	h.wg.Wait()
}

// Dropped reports how many events were discarded.
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		h.dropped.Add(1)
		return
	}
	select {
	case h.q <- f:
	default:
		h.dropped.Add(1)
	}
}

func (h *Hooks) MaterializeRace(k string) { h.try(func() { h.inner.MaterializeRace(k) }) }
func (h *Hooks) EntryReplaced(k string)   { h.try(func() { h.inner.EntryReplaced(k) }) }
func (h *Hooks) StoreCleared(n int)       { h.try(func() { h.inner.StoreCleared(n) }) }
