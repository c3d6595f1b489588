package asynchook

import (
	"sync"
	"testing"
)

type countHooks struct {
	mu                      sync.Mutex
	races, replaced, clears int
	block                   chan struct{}
}

func (h *countHooks) MaterializeRace(string) {
	if h.block != nil {
		<-h.block
	}
	h.mu.Lock()
	h.races++
	h.mu.Unlock()
}

func (h *countHooks) EntryReplaced(string) {
	h.mu.Lock()
	h.replaced++
	h.mu.Unlock()
}

func (h *countHooks) StoreCleared(int) {
	h.mu.Lock()
	h.clears++
	h.mu.Unlock()
}

func TestCloseDrainsQueuedEvents(t *testing.T) {
	inner := &countHooks{}
	h := New(inner, 2, 64)

	for i := 0; i < 10; i++ {
		h.MaterializeRace("k")
		h.EntryReplaced("k")
	}
	h.StoreCleared(3)
	h.Close()

	if inner.races != 10 || inner.replaced != 10 || inner.clears != 1 {
		t.Fatalf("events lost: %+v", inner)
	}
	if h.Dropped() != 0 {
		t.Fatalf("unexpected drops: %d", h.Dropped())
	}
}

func TestFullQueueDrops(t *testing.T) {
	inner := &countHooks{block: make(chan struct{})}
	h := New(inner, 1, 1)

	// first event occupies the worker, second fills the queue
	h.MaterializeRace("a")
	for h.Dropped() == 0 {
		h.MaterializeRace("b")
	}
	close(inner.block)
	h.Close()

	if h.Dropped() == 0 {
		t.Fatalf("expected drops with a blocked worker")
	}
}

func TestEventsAfterCloseAreDropped(t *testing.T) {
	inner := &countHooks{}
	h := New(inner, 0, 0)
	h.Close()
	h.Close()

	h.StoreCleared(1)
	if inner.clears != 0 || h.Dropped() != 1 {
		t.Fatalf("event after close: clears=%d dropped=%d", inner.clears, h.Dropped())
	}
}
