package nobranch

import (
	"sync/atomic"
	"time"

	"golang.org/x/sys/cpu"
)

// EvalPath identifies the widest evaluator used for a scoring request.
type EvalPath int

const (
	// PathSingle scores one vector per ensemble pass.
	PathSingle EvalPath = iota
	// PathBatch8 scores eight vectors per tree pass.
	PathBatch8
	// PathBatch32 scores thirty-two vectors per tree pass.
	PathBatch32
)

func (p EvalPath) String() string {
	switch p {
	case PathSingle:
		return "single"
	case PathBatch8:
		return "batch8"
	case PathBatch32:
		return "batch32"
	default:
		return "unknown"
	}
}

func widestPath(m int) EvalPath {
	switch {
	case m >= 32:
		return PathBatch32
	case m >= 8:
		return PathBatch8
	default:
		return PathSingle
	}
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    scoreCounter   prometheus.Counter
//	    scoreHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordScore(vectors int, path nobranch.EvalPath, degraded bool, d time.Duration) {
//	    p.scoreCounter.Add(float64(vectors))
//	    p.scoreHistogram.Observe(d.Seconds())
//	}
type MetricsCollector interface {
	// RecordAddTree is called after each AddTree. err is nil on success.
	RecordAddTree(depth int, err error)

	// RecordBuild is called once per Build with the final ensemble size and
	// the time since NewBuilder.
	RecordBuild(trees, nodes int, duration time.Duration)

	// RecordScore is called after each Score, ScoreBatch and ScoreParallel.
	// degraded is true when the vectors were too narrow and every output is NaN.
	RecordScore(vectors int, path EvalPath, degraded bool, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAddTree(int, error)                       {}
func (NoopMetricsCollector) RecordBuild(int, int, time.Duration)            {}
func (NoopMetricsCollector) RecordScore(int, EvalPath, bool, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
//
// The scoring counters sit on their own cache line: they are updated by
// concurrent scorers while the load counters are written once.
type BasicMetricsCollector struct {
	TreesAdded    atomic.Int64
	TreesRejected atomic.Int64
	Builds        atomic.Int64
	BuildNanos    atomic.Int64

	_ cpu.CacheLinePad

	ScoreCalls    atomic.Int64
	ScoreVectors  atomic.Int64
	ScoreDegraded atomic.Int64
	ScoreNanos    atomic.Int64

	_ cpu.CacheLinePad

	PathCalls [3]atomic.Int64 // indexed by EvalPath
}

// RecordAddTree implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAddTree(_ int, err error) {
	if err != nil {
		b.TreesRejected.Add(1)
		return
	}
	b.TreesAdded.Add(1)
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(_, _ int, duration time.Duration) {
	b.Builds.Add(1)
	b.BuildNanos.Add(duration.Nanoseconds())
}

// RecordScore implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScore(vectors int, path EvalPath, degraded bool, duration time.Duration) {
	b.ScoreCalls.Add(1)
	b.ScoreVectors.Add(int64(vectors))
	b.ScoreNanos.Add(duration.Nanoseconds())
	if degraded {
		b.ScoreDegraded.Add(1)
	}
	if path >= 0 && int(path) < len(b.PathCalls) {
		b.PathCalls[path].Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		TreesAdded:    b.TreesAdded.Load(),
		TreesRejected: b.TreesRejected.Load(),
		Builds:        b.Builds.Load(),
		ScoreCalls:    b.ScoreCalls.Load(),
		ScoreVectors:  b.ScoreVectors.Load(),
		ScoreDegraded: b.ScoreDegraded.Load(),
		SingleCalls:   b.PathCalls[PathSingle].Load(),
		Batch8Calls:   b.PathCalls[PathBatch8].Load(),
		Batch32Calls:  b.PathCalls[PathBatch32].Load(),
	}
	if s.ScoreVectors > 0 {
		s.ScoreAvgNanosPerVector = b.ScoreNanos.Load() / s.ScoreVectors
	}
	if s.Builds > 0 {
		s.BuildAvgNanos = b.BuildNanos.Load() / s.Builds
	}
	return s
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	TreesAdded             int64
	TreesRejected          int64
	Builds                 int64
	BuildAvgNanos          int64
	ScoreCalls             int64
	ScoreVectors           int64
	ScoreDegraded          int64
	ScoreAvgNanosPerVector int64
	SingleCalls            int64
	Batch8Calls            int64
	Batch32Calls           int64
}
