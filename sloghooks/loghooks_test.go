package sloghooks

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func newJSONLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("bad log line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestKeysAreRedactedByDefault(t *testing.T) {
	var buf bytes.Buffer
	h := New(newJSONLogger(&buf), Options{})

	h.EntryReplaced("user:secret")

	recs := records(t, &buf)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	key, _ := recs[0]["key"].(string)
	if key == "" || strings.Contains(key, "secret") || len(key) != 16 {
		t.Fatalf("expected 16-char hash, got %q", key)
	}
	if recs[0]["msg"] != "sharedstore.entry_replaced" {
		t.Fatalf("unexpected msg %v", recs[0]["msg"])
	}
}

func TestCustomRedactAndSampling(t *testing.T) {
	var buf bytes.Buffer
	h := New(newJSONLogger(&buf), Options{
		RaceEvery: 3,
		Redact:    func(k string) string { return "r:" + k },
	})

	for i := 0; i < 9; i++ {
		h.MaterializeRace("k")
	}
	h.StoreCleared(5)

	recs := records(t, &buf)
	if len(recs) != 4 {
		t.Fatalf("expected 3 sampled races + 1 clear, got %d", len(recs))
	}
	if recs[0]["key"] != "r:k" {
		t.Fatalf("custom redactor not used: %v", recs[0]["key"])
	}
	if recs[3]["removed"] != float64(5) {
		t.Fatalf("unexpected clear record %v", recs[3])
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	h := New(nil, Options{})
	h.MaterializeRace("k")
	h.EntryReplaced("k")
	h.StoreCleared(1)
}
