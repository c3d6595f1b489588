// Package logrus adapts a logrus entry to sharedstore.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/sharedstore"
)

type Logger struct{ E *logrus.Entry }

var _ sharedstore.Logger = Logger{}

// New tags every record with component=sharedstore.
func New(l *logrus.Logger) Logger {
	return Logger{E: l.WithField("component", "sharedstore")}
}

func (l Logger) Debug(msg string, f sharedstore.Fields) { l.log(logrus.DebugLevel, msg, f) }
func (l Logger) Info(msg string, f sharedstore.Fields)  { l.log(logrus.InfoLevel, msg, f) }
func (l Logger) Warn(msg string, f sharedstore.Fields)  { l.log(logrus.WarnLevel, msg, f) }
func (l Logger) Error(msg string, f sharedstore.Fields) { l.log(logrus.ErrorLevel, msg, f) }

func (l Logger) log(lvl logrus.Level, msg string, f sharedstore.Fields) {
	if !l.E.Logger.IsLevelEnabled(lvl) {
		return
	}
	l.E.WithFields(logrus.Fields(f)).Log(lvl, msg)
}
