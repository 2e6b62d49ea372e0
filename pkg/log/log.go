// Package log provides the leveled logger used throughout the emulator.
package log

import "github.com/sirupsen/logrus"

// Logger is the logging interface used by the gameboy, mmu and cpu
// packages. It is kept narrow so call sites never depend on the
// concrete logging library directly.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// logger adapts a logrus.Logger to the Logger interface.
type logger struct {
	*logrus.Logger
}

// New returns a Logger backed by logrus, formatted without timestamps
// so output stays readable when interleaved with the emulator's own
// debug traces.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return &logger{l}
}

// NewWithLevel returns a Logger backed by logrus at the given level.
func NewWithLevel(level logrus.Level) Logger {
	l := New().(*logger)
	l.SetLevel(level)
	return l
}

func (l *logger) Infof(format string, args ...interface{})  { l.Logger.Infof(format, args...) }
func (l *logger) Errorf(format string, args ...interface{}) { l.Logger.Errorf(format, args...) }
func (l *logger) Debugf(format string, args ...interface{}) { l.Logger.Debugf(format, args...) }
