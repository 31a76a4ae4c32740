// Package logging holds the logger shared by every saybox package.
//
// By default nothing is logged. The root package exposes SetLogger so hosts
// can install their own handler without importing this package.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNop() *slog.Logger { return slog.New(nopHandler{}) }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(newNop())
}

// Set installs l. A nil logger restores the silent default.
func Set(l *slog.Logger) {
	if l == nil {
		l = newNop()
	}
	current.Store(l)
}

// L returns the active logger. It never returns nil.
func L() *slog.Logger {
	return current.Load()
}

// Debug reports whether debug records would be emitted. Hot loops check it
// before building attributes.
func Debug() bool {
	return L().Enabled(context.Background(), slog.LevelDebug)
}
