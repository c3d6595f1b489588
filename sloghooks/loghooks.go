// Package sloghooks reports store events through log/slog.
package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/sharedstore"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	RaceEvery    uint64
	ReplaceEvery uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	raceCtr    atomic.Uint64
	replaceCtr atomic.Uint64
}

var _ sharedstore.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) MaterializeRace(key string) {
	if h.l == nil || !sample(h.opts.RaceEvery, &h.raceCtr) {
		return
	}
	h.l.Debug("sharedstore.materialize_race",
		"key", h.redact(key))
}

func (h *Hooks) EntryReplaced(key string) {
	if h.l == nil || !sample(h.opts.ReplaceEvery, &h.replaceCtr) {
		return
	}
	h.l.Debug("sharedstore.entry_replaced",
		"key", h.redact(key))
}

func (h *Hooks) StoreCleared(removed int) {
	if h.l == nil {
		return
	}
	h.l.Info("sharedstore.store_cleared",
		"removed", removed)
}
