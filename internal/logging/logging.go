// Package logging sets up the program's [log/slog] logger. Diagnostic logging
// is off unless the user asks for it with --verbose; everything meant for the
// user is printed through package ui instead.
package logging

import (
	"io"
	"log/slog"
)

// New returns a logger that writes debug-level text records to w when verbose
// is set, and discards everything otherwise.
func New(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Init installs the logger from New as the default logger and returns it.
func Init(w io.Writer, verbose bool) *slog.Logger {
	logger := New(w, verbose)
	slog.SetDefault(logger)
	return logger
}
