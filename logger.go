// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fontmatch

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false, so slog
// never builds the record in the first place.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }

var silent = slog.New(discardHandler{})

// current is read on every resolution and swapped by SetLogger.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes fontmatch's log output, including that of catalog and
// textstyle, to l. Nothing is logged until it is called; nil silences
// logging again. It may be called while resolutions run.
//
// Levels:
//   - [slog.LevelDebug]: faces registered, the variant a resolution
//     picked, variants that failed to load
//   - [slog.LevelWarn]: bundled faces that failed to register and text
//     style families missing from the catalog
//
// Example:
//
//	fontmatch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}
