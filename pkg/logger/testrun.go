package logger

import (
	"io"
	"log/slog"
)

// NewTestHandler discards everything; tests never want log output.
// The level argument only exists to match the handler-constructor shape
// logger.New expects.
func NewTestHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(io.Discard, nil)
}
