package nobranch

import (
	"log/slog"

	"github.com/hupe1980/nobranch/internal/mem"
	"github.com/hupe1980/nobranch/resource"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	controller       *resource.Controller
	allocator        mem.Allocator
}

// Option configures NewBuilder.
type Option func(*options)

// WithLogger configures structured logging for loading and lifecycle events.
// Pass nil to disable logging. Scoring never logs.
//
// Example with JSON logging:
//
//	logger := nobranch.NewJSONLogger(slog.LevelInfo)
//	b, _ := nobranch.NewBuilder(trees, nodes, nobranch.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector sets a custom metrics collector.
//
// Example:
//
//	metrics := &nobranch.BasicMetricsCollector{}
//	b, _ := nobranch.NewBuilder(trees, nodes, nobranch.WithMetricsCollector(metrics))
//	// ... load and score ...
//	stats := metrics.GetStats()
//	fmt.Printf("Vectors: %d, Avg latency: %dns\n", stats.ScoreVectors, stats.ScoreAvgNanosPerVector)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithResourceController accounts the ensemble allocation against rc's
// memory budget and bounds ScoreParallel by its worker limit.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithOffHeap places the ensemble in an anonymous memory mapping instead of
// the Go heap. Large ensembles then add nothing to GC scan or heap targets.
func WithOffHeap(enabled bool) Option {
	return func(o *options) {
		if enabled {
			o.allocator = mem.OffHeap
		} else {
			o.allocator = mem.Heap
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NopLogger(),
		allocator:        mem.Heap,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
