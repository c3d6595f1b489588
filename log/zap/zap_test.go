package zap

import (
	"testing"

	"github.com/unkn0wn-root/sharedstore"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := New(zap.New(core))

	l.Debug("dropped", sharedstore.Fields{"k": 1})
	l.Info("cleared", sharedstore.Fields{"removed": 2, "b": "x"})
	l.Error("boom", nil)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries above debug, got %d", len(entries))
	}
	e := entries[0]
	if e.Message != "cleared" || e.LoggerName != "sharedstore" {
		t.Fatalf("unexpected entry %+v", e.Entry)
	}
	ctx := e.ContextMap()
	if ctx["removed"] != int64(2) || ctx["b"] != "x" {
		t.Fatalf("unexpected fields %v", ctx)
	}
	if entries[1].Level != zapcore.ErrorLevel || len(entries[1].Context) != 0 {
		t.Fatalf("unexpected error entry %+v", entries[1])
	}
}

func TestNilLogger(t *testing.T) {
	New(nil).Warn("ignored", sharedstore.Fields{"a": 1})
}
