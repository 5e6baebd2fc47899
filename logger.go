package nobranch

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with nobranch-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NopLogger creates a Logger that discards all log output.
func NopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithModel adds a model name field to the logger.
func (l *Logger) WithModel(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("model", name),
	}
}

// LogAddTree logs the outcome of loading one tree.
func (l *Logger) LogAddTree(ctx context.Context, tree, depth, nodes int, err error) {
	if err != nil {
		l.WarnContext(ctx, "tree rejected",
			"tree", tree,
			"depth", depth,
			"nodes", nodes,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "tree added",
		"tree", tree,
		"depth", depth,
		"nodes", nodes,
	)
}

// LogBuild logs a finished ensemble.
func (l *Logger) LogBuild(ctx context.Context, st Stats) {
	l.InfoContext(ctx, "ensemble built",
		"trees", st.Trees,
		"tree_capacity", st.TreeCapacity,
		"nodes", st.Nodes,
		"node_capacity", st.NodeCapacity,
		"max_feature", st.MaxFeature,
		"bytes", st.Bytes,
		"allocator", st.Allocator,
	)
}

// LogAllocation logs a failed ensemble allocation.
func (l *Logger) LogAllocation(ctx context.Context, trees, nodes, bytes int, err error) {
	l.ErrorContext(ctx, "ensemble allocation failed",
		"tree_capacity", trees,
		"node_capacity", nodes,
		"bytes", bytes,
		"error", err,
	)
}
