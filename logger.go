package touchgui

import (
	"fmt"
	"log/slog"
)

// logger prefixes every message with a namespace and forwards to slog.
type logger struct {
	namespace string
	l         *slog.Logger
}

func newLogger(l *slog.Logger, namespace string) logger {
	if l == nil {
		l = slog.Default()
	}
	return logger{namespace: namespace, l: l}
}

func (l logger) transform(msg string) string {
	return fmt.Sprintf("%s: %s", l.namespace, msg)
}

func (l logger) Debug(msg string, args ...any) {
	l.l.Debug(l.transform(msg), args...)
}

func (l logger) Info(msg string, args ...any) {
	l.l.Info(l.transform(msg), args...)
}

func (l logger) Warn(msg string, args ...any) {
	l.l.Warn(l.transform(msg), args...)
}
