package main

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unkn0wn-root/sharedstore"
	"github.com/unkn0wn-root/sharedstore/internal/config"
	"github.com/unkn0wn-root/sharedstore/internal/loadgen"
)

func testConfig(t *testing.T, vars map[string]string) config.Config {
	t.Helper()
	cfg, err := config.FromMap(vars)
	require.NoError(t, err)
	return cfg
}

func TestNewLoggerWritesJSON(t *testing.T) {
	for _, name := range []string{"zap", "logrus", "slog"} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := testConfig(t, map[string]string{"STOREBENCH_LOGGER": name})

			log, flush, err := newLogger(cfg, &buf, "run-1")
			require.NoError(t, err)
			log.Debug("hidden", nil)
			log.Info("visible", sharedstore.Fields{"n": 1})
			flush()

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			require.Len(t, lines, 1)
			var rec map[string]any
			require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
			require.Contains(t, buf.String(), "run-1")
			require.Contains(t, buf.String(), "visible")
		})
	}
}

func TestNewLoggerRejectsUnknown(t *testing.T) {
	cfg := testConfig(t, nil)
	cfg.Logger = "glog"
	_, _, err := newLogger(cfg, &bytes.Buffer{}, "run")
	require.ErrorIs(t, err, config.ErrInvalidValue)
}

func TestNewStoreRunsWorkload(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"STOREBENCH_CODEC":        "cbor",
		"STOREBENCH_EXACTLY_ONCE": "true",
		"STOREBENCH_MAX_BYTES":    "4096",
		"STOREBENCH_KEYS":         "8",
	})
	store, closeHooks, err := newStore(cfg, sharedstore.NopLogger{}, io.Discard, "run")
	require.NoError(t, err)
	defer closeHooks()

	require.NoError(t, loadgen.Seed(store, cfg.Keys))
	require.Equal(t, cfg.Keys, store.Len())

	doc, ok, err := store.Get(loadgen.Key(3))
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, doc.Valid(loadgen.Key(3)))
}

func TestNewStoreSizeLimit(t *testing.T) {
	cfg := testConfig(t, map[string]string{"STOREBENCH_MAX_BYTES": "16"})
	store, closeHooks, err := newStore(cfg, sharedstore.NopLogger{}, io.Discard, "run")
	require.NoError(t, err)
	defer closeHooks()

	err = store.Set("big", loadgen.NewDocument("big", 1))
	var se *sharedstore.SerializationError
	require.ErrorAs(t, err, &se)
	require.Zero(t, store.Len())
}

func TestNewStoreEmitsDebugHookEvents(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"STOREBENCH_LOG_LEVEL":   "debug",
		"STOREBENCH_HOOK_SAMPLE": "1",
	})
	var buf bytes.Buffer
	store, closeHooks, err := newStore(cfg, sharedstore.NopLogger{}, &buf, "run-7")
	require.NoError(t, err)

	require.NoError(t, store.Set("k", loadgen.NewDocument("k", 1)))
	require.NoError(t, store.Set("k", loadgen.NewDocument("k", 2)))
	closeHooks()

	require.Contains(t, buf.String(), "sharedstore.entry_replaced")
	require.Contains(t, buf.String(), "run-7")
}

func TestNewStoreHookLevelFollowsConfig(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"STOREBENCH_LOG_LEVEL":   "info",
		"STOREBENCH_HOOK_SAMPLE": "1",
	})
	var buf bytes.Buffer
	store, closeHooks, err := newStore(cfg, sharedstore.NopLogger{}, &buf, "run")
	require.NoError(t, err)

	require.NoError(t, store.Set("k", loadgen.NewDocument("k", 1)))
	require.NoError(t, store.Set("k", loadgen.NewDocument("k", 2)))
	store.Clear()
	closeHooks()

	require.NotContains(t, buf.String(), "sharedstore.entry_replaced")
	require.Contains(t, buf.String(), "sharedstore.store_cleared")
}
