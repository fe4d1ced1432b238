// Package log provides the logging interface used by the
// emulator, backed by logrus.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the logging surface the emulator depends on.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a logrus logger writing plain text to stderr at
// info level.
func New() *logrus.Logger {
	return NewWithOutput(nil, logrus.InfoLevel)
}

// NewWithOutput returns a logrus logger writing to w (stderr if
// w is nil) at the given level.
func NewWithOutput(w io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	if w != nil {
		l.SetOutput(w)
	}
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

var _ Logger = (*logrus.Logger)(nil)
