package melt

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Introspect and the glyph batches log
// once per unreadable face or table, so the disabled check keeps those
// paths free of attribute formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the package logger. Batch workers read it while a
// caller may be swapping it.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger sets the logger used by calls that pass no WithLogger option.
// melt is silent by default; nil restores that. It may be called while
// batches are running.
//
// Messages:
//   - Debug "melt: face open failed" (index, error) from Introspect and
//     the glyph batches
//   - Debug "melt: name table unreadable" and "melt: meta table
//     unreadable" (index, error) from Introspect
//   - Debug "melt: skipping codepoint" (error) for surrogates and values
//     past U+10FFFF
//   - Warn "protocol: malformed ... request" from the protocol package
//
// Example:
//
//	melt.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the package logger. The protocol package and the melt
// command log through it.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
