package sparseset

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with sparseset-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// LogBlockCreated logs the creation of a new block.
func (l *Logger) LogBlockCreated(base int) {
	l.Debug("block created", "base", base)
}

// LogBlockRebased logs a downward rebase of an existing block.
func (l *Logger) LogBlockRebased(oldBase, newBase int) {
	l.Debug("block rebased", "old_base", oldBase, "new_base", newBase)
}

// LogBlockGrown logs an in-place capacity expansion.
func (l *Logger) LogBlockGrown(base, words int) {
	l.Debug("block grown", "base", base, "words", words)
}

// LogCompact logs a compaction pass.
func (l *Logger) LogCompact(changed bool, blocks, words int) {
	l.Debug("compact completed", "changed", changed, "blocks", blocks, "words", words)
}
