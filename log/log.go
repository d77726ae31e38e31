// Package log holds the process wide logger, zap in the command line and slog until then.
package log

import (
	"log/slog"
	"os"
)

// Logger is satisfied by *zap.SugaredLogger
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
	Fatalw(msg string, keysAndValues ...any)
}

// Default 默认实例
var Default Logger = NewSlog(nil)

var exitFunc = os.Exit

// Set replaces Default, nil is ignored
func Set(logger Logger) {
	if logger != nil {
		Default = logger
	}
}

func Get() Logger {
	return Default
}

type slogger struct {
	l *slog.Logger
}

// NewSlog adapts l to Logger, nil means slog.Default() at call time
func NewSlog(l *slog.Logger) Logger {
	return &slogger{l: l}
}

func (z *slogger) sl() *slog.Logger {
	if z.l == nil {
		return slog.Default()
	}
	return z.l
}

func (z *slogger) Debugw(msg string, keysAndValues ...any) {
	z.sl().Debug(msg, keysAndValues...)
}

func (z *slogger) Infow(msg string, keysAndValues ...any) {
	z.sl().Info(msg, keysAndValues...)
}

func (z *slogger) Warnw(msg string, keysAndValues ...any) {
	z.sl().Warn(msg, keysAndValues...)
}

func (z *slogger) Errorw(msg string, keysAndValues ...any) {
	z.sl().Error(msg, keysAndValues...)
}

// Fatalw logs at error level then exits with status 1, like zap does
func (z *slogger) Fatalw(msg string, keysAndValues ...any) {
	z.sl().Error(msg, keysAndValues...)
	exitFunc(1)
}
