package nobranch

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvalPath(t *testing.T) {
	assert.Equal(t, "single", PathSingle.String())
	assert.Equal(t, "batch8", PathBatch8.String())
	assert.Equal(t, "batch32", PathBatch32.String())
	assert.Equal(t, "unknown", EvalPath(9).String())

	assert.Equal(t, PathSingle, widestPath(7))
	assert.Equal(t, PathBatch8, widestPath(8))
	assert.Equal(t, PathBatch8, widestPath(31))
	assert.Equal(t, PathBatch32, widestPath(32))
}

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}

	m.RecordAddTree(3, nil)
	m.RecordAddTree(3, errors.New("bad"))
	m.RecordBuild(1, 15, 2*time.Millisecond)
	m.RecordScore(10, PathBatch8, false, 100*time.Nanosecond)
	m.RecordScore(30, PathSingle, true, 300*time.Nanosecond)
	m.RecordScore(1, EvalPath(-1), false, 0)

	s := m.GetStats()
	assert.Equal(t, int64(1), s.TreesAdded)
	assert.Equal(t, int64(1), s.TreesRejected)
	assert.Equal(t, int64(1), s.Builds)
	assert.Equal(t, int64(2*time.Millisecond), s.BuildAvgNanos)
	assert.Equal(t, int64(3), s.ScoreCalls)
	assert.Equal(t, int64(41), s.ScoreVectors)
	assert.Equal(t, int64(1), s.ScoreDegraded)
	assert.Equal(t, int64(400/41), s.ScoreAvgNanosPerVector)
	assert.Equal(t, int64(1), s.SingleCalls)
	assert.Equal(t, int64(1), s.Batch8Calls)
	assert.Zero(t, s.Batch32Calls)
}

func TestNoopMetricsCollector(t *testing.T) {
	var m MetricsCollector = NoopMetricsCollector{}
	m.RecordAddTree(1, nil)
	m.RecordBuild(1, 3, time.Second)
	m.RecordScore(1, PathSingle, false, time.Second)
}
