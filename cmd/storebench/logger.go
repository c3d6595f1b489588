package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/sharedstore"
	"github.com/unkn0wn-root/sharedstore/internal/config"
	logruslog "github.com/unkn0wn-root/sharedstore/log/logrus"
	slogadapter "github.com/unkn0wn-root/sharedstore/log/slog"
	zaplog "github.com/unkn0wn-root/sharedstore/log/zap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the store logger named by cfg.Logger, writing JSON to w.
// The returned func flushes buffered output.
func newLogger(cfg config.Config, w io.Writer, runID string) (sharedstore.Logger, func(), error) {
	switch cfg.Logger {
	case "zap":
		lvl, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, nil, err
		}
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(w),
			lvl,
		)
		l := zap.New(core).With(zap.String("run_id", runID))
		return zaplog.New(l), func() { _ = l.Sync() }, nil

	case "logrus":
		lvl, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, nil, err
		}
		l := logrus.New()
		l.SetOutput(w)
		l.SetFormatter(&logrus.JSONFormatter{})
		l.SetLevel(lvl)
		out := logruslog.New(l)
		out.E = out.E.WithField("run_id", runID)
		return out, func() {}, nil

	case "slog":
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, nil, err
		}
		l := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})).With("run_id", runID)
		return slogadapter.New(l), func() {}, nil
	}
	return nil, nil, fmt.Errorf("%w: logger %q", config.ErrInvalidValue, cfg.Logger)
}
