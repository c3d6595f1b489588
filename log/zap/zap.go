// Package zap adapts a *zap.Logger to sharedstore.Logger.
package zap

import (
	"sort"

	"github.com/unkn0wn-root/sharedstore"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct{ L *zap.Logger }

var _ sharedstore.Logger = Logger{}

// New names l "sharedstore". A nil l yields a no-op logger.
func New(l *zap.Logger) Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return Logger{L: l.Named("sharedstore")}
}

func (z Logger) Debug(msg string, f sharedstore.Fields) { z.log(zapcore.DebugLevel, msg, f) }
func (z Logger) Info(msg string, f sharedstore.Fields)  { z.log(zapcore.InfoLevel, msg, f) }
func (z Logger) Warn(msg string, f sharedstore.Fields)  { z.log(zapcore.WarnLevel, msg, f) }
func (z Logger) Error(msg string, f sharedstore.Fields) { z.log(zapcore.ErrorLevel, msg, f) }

// log skips field conversion when the level is disabled.
func (z Logger) log(lvl zapcore.Level, msg string, f sharedstore.Fields) {
	if ce := z.L.Check(lvl, msg); ce != nil {
		ce.Write(zf(f)...)
	}
}

func zf(f sharedstore.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(f))
	for _, k := range keys {
		out = append(out, zap.Any(k, f[k]))
	}
	return out
}
