// Command storebench runs a concurrent read/write workload against one
// sharedstore instance and prints the store counters.
//
// Configuration comes from STOREBENCH_* environment variables; see
// internal/config.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/unkn0wn-root/sharedstore"
	"github.com/unkn0wn-root/sharedstore/codec"
	asynchook "github.com/unkn0wn-root/sharedstore/hooks/async"
	"github.com/unkn0wn-root/sharedstore/internal/config"
	"github.com/unkn0wn-root/sharedstore/internal/loadgen"
	"github.com/unkn0wn-root/sharedstore/sloghooks"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "storebench: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	runID := uuid.New().String()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	log, flush, err := newLogger(cfg, os.Stderr, runID)
	if err != nil {
		return err
	}
	defer flush()
	log.Info("loaded config", sharedstore.Fields{"config": cfg.NonSensitiveString()})

	store, closeHooks, err := newStore(cfg, log, os.Stderr, runID)
	if err != nil {
		return err
	}
	defer closeHooks()

	if err := loadgen.Seed(store, cfg.Keys); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := loadgen.Run(ctx, store, loadgen.Config{
		Workers:    cfg.Workers,
		Keys:       cfg.Keys,
		Ops:        cfg.Ops,
		WriteRatio: cfg.WriteRatio,
		ClearEvery: cfg.ClearEvery,
		Seed:       cfg.Seed,
	})
	if err != nil {
		log.Error("run failed", sharedstore.Fields{"err": err})
		return err
	}

	log.Info("run complete", sharedstore.Fields{
		"sets":    report.Sets,
		"gets":    report.Gets,
		"hits":    report.Hits,
		"misses":  report.Misses,
		"clears":  report.Clears,
		"elapsed": report.Elapsed.String(),
	})
	fmt.Println(store.Stats())
	return nil
}

// newStore is the composition root for the store: it owns the only instance
// used by this process. Hook events go to w as JSON at cfg.LogLevel.
func newStore(cfg config.Config, log sharedstore.Logger, w io.Writer, runID string) (sharedstore.Store[loadgen.Document], func(), error) {
	cd, err := codec.ByName[loadgen.Document](cfg.Codec)
	if err != nil {
		return nil, nil, err
	}
	if cfg.MaxBytes > 0 {
		cd = codec.LimitCodec[loadgen.Document]{Inner: cd, MaxEncode: cfg.MaxBytes, MaxDecode: cfg.MaxBytes}
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, nil, err
	}
	hl := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})).With("run_id", runID)
	hooks := asynchook.New(sloghooks.New(hl, sloghooks.Options{
		RaceEvery:    cfg.HookSample,
		ReplaceEvery: cfg.HookSample,
	}), 1, cfg.HookQueue)

	store, err := sharedstore.New[loadgen.Document](sharedstore.Options[loadgen.Document]{
		Codec:       cd,
		Logger:      log,
		Hooks:       hooks,
		ExactlyOnce: cfg.ExactlyOnce,
	})
	if err != nil {
		hooks.Close()
		return nil, nil, err
	}
	return store, hooks.Close, nil
}
