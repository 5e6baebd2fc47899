package nobranch

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/nobranch/resource"
	"github.com/hupe1980/nobranch/testutil"
)

func exampleTrees() []testutil.Tree {
	return []testutil.Tree{
		{
			Depth:    2,
			Features: []int32{0, 1, 2, 0, 0, 0, 0},
			Values:   []float32{0.5, 0.3, 0.7, 10, 20, 30, 40},
		},
		{
			Depth:    1,
			Features: []int32{1, 0, 0},
			Values:   []float32{0.5, 1, 2},
		},
	}
}

func TestScore(t *testing.T) {
	s := buildScorer(t, exampleTrees())

	score, err := s.Score([]float32{0.2, 0.9, 0.0})
	require.NoError(t, err)
	assert.Equal(t, float32(21), score)
	assert.Equal(t, 3, s.Width())
}

func TestScoreNarrowVectorIsNaN(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	s := buildScorer(t, exampleTrees(), WithMetricsCollector(metrics))

	score, err := s.Score([]float32{0.2, 0.9})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(score)))

	score, err = s.Score(nil)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(score)))

	assert.Equal(t, int64(2), metrics.GetStats().ScoreDegraded)
}

func TestScoreBatchValidation(t *testing.T) {
	s := buildScorer(t, exampleTrees())

	require.NoError(t, s.ScoreBatch(nil, nil))

	err := s.ScoreBatch([][]float32{{1, 2, 3}, {1, 2, 3}}, make([]float32, 1))
	assert.ErrorIs(t, err, ErrOutputTooSmall)

	err = s.ScoreBatch([][]float32{{1, 2, 3}, {1, 2, 3}, {1, 2}}, make([]float32, 3))
	var dm *ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 3, dm.Expected)
	assert.Equal(t, 2, dm.Actual)
	assert.Equal(t, 2, dm.Index)
	assert.Equal(t, "dimension mismatch at vector 2: expected 3, got 2", dm.Error())
}

func TestScoreBatchMatchesScore(t *testing.T) {
	rng := testutil.NewRNG(42)
	trees := rng.Trees(150, 1, 10, 50)
	s := buildScorer(t, trees)

	for _, n := range []int{1, 5, 8, 13, 32, 41, 64, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			vecs := rng.UniformVectors(n, 50)
			out := make([]float32, n)
			require.NoError(t, s.ScoreBatch(vecs, out))

			for i, v := range vecs {
				want, err := s.Score(v)
				require.NoError(t, err)
				assert.Equal(t, want, out[i], "vector %d", i)
				assert.Equal(t, testutil.ScoreAll(trees, v), out[i], "vector %d", i)
			}
		})
	}
}

func TestScoreParallelMatchesScoreBatch(t *testing.T) {
	rng := testutil.NewRNG(43)
	trees := rng.Trees(80, 1, 10, 20)

	for _, rc := range []*resource.Controller{nil, resource.NewController(resource.Config{MaxWorkers: 3})} {
		s := buildScorer(t, trees, WithResourceController(rc))

		for _, n := range []int{0, 1, 31, 32, 33, 200, 1000} {
			vecs := rng.UniformVectors(n, 20)
			want := make([]float32, n)
			got := make([]float32, n)
			require.NoError(t, s.ScoreBatch(vecs, want))
			require.NoError(t, s.ScoreParallel(context.Background(), vecs, got))
			assert.Equal(t, want, got, "n=%d", n)
		}
	}
}

func TestScoreParallelCanceled(t *testing.T) {
	rng := testutil.NewRNG(44)
	s := buildScorer(t, rng.Trees(10, 1, 4, 8))
	vecs := rng.UniformVectors(256, 8)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.ScoreParallel(ctx, vecs, make([]float32, 256))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScoreParallelValidation(t *testing.T) {
	s := buildScorer(t, exampleTrees())

	err := s.ScoreParallel(context.Background(), [][]float32{{1, 2, 3}}, nil)
	assert.ErrorIs(t, err, ErrOutputTooSmall)
}

func TestScorerClosed(t *testing.T) {
	b, err := NewBuilder(1, 3)
	require.NoError(t, err)
	require.NoError(t, b.AddTree(1, []int32{0, 0, 0}, []float32{1, 2, 3}))
	s, err := b.Build()
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.Score([]float32{1})
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, s.ScoreBatch([][]float32{{1}}, make([]float32, 1)), ErrClosed)
	assert.ErrorIs(t, s.ScoreParallel(context.Background(), [][]float32{{1}}, make([]float32, 1)), ErrClosed)
}

func TestScorerStatsAfterClose(t *testing.T) {
	s := buildScorer(t, exampleTrees())
	require.Equal(t, 2, s.Stats().Trees)
	require.NoError(t, s.Close())

	assert.NotPanics(t, func() {
		assert.Equal(t, Stats{}, s.Stats())
	})

	out := []float32{7}
	s.Eval([][]float32{{0.2, 0.9, 0.0}}, 3, out)
	assert.Equal(t, []float32{7}, out)
}

func TestScorerStats(t *testing.T) {
	s := buildScorer(t, exampleTrees(), WithOffHeap(true))

	st := s.Stats()
	assert.Equal(t, 2, st.Trees)
	assert.Equal(t, 2, st.TreeCapacity)
	assert.Equal(t, 10, st.Nodes)
	assert.Equal(t, 10, st.NodeCapacity)
	assert.Equal(t, 2, st.MaxFeature)
	assert.Equal(t, 1, st.Depths[1])
	assert.Equal(t, 1, st.Depths[2])
	assert.Equal(t, "offheap", st.Allocator)
	assert.Positive(t, st.Bytes)
}

func TestScorerFeatures(t *testing.T) {
	s := buildScorer(t, []testutil.Tree{
		{Depth: 1, Features: []int32{4, 99, 99}, Values: []float32{0.5, 1, 2}},
		{Depth: 2, Features: []int32{1, 4, 7, 0, 0, 0, 0}, Values: make([]float32, 7)},
	})

	f := s.Features()
	assert.Equal(t, []uint32{1, 4, 7}, f.ToArray())
	assert.Equal(t, 99, s.Stats().MaxFeature, "leaf features count toward the width check")

	f.Add(1000)
	assert.False(t, s.Features().Contains(1000))
}

func TestOffHeapMatchesHeap(t *testing.T) {
	rng := testutil.NewRNG(45)
	trees := rng.Trees(60, 1, 10, 16)
	heap := buildScorer(t, trees)
	off := buildScorer(t, trees, WithOffHeap(true))

	vecs := rng.GaussianVectors(77, 16)
	a := make([]float32, 77)
	b := make([]float32, 77)
	require.NoError(t, heap.ScoreBatch(vecs, a))
	require.NoError(t, off.ScoreBatch(vecs, b))
	assert.Equal(t, a, b)
}

func TestEvalRaw(t *testing.T) {
	s := buildScorer(t, exampleTrees())

	out := make([]float32, 2)
	s.Eval([][]float32{{0.2, 0.9, 0.0}, {0.9, 0.0, 0.1}}, 3, out)
	// Second vector: right at the root, left at node 2 -> 30; tree two left -> 1.
	assert.Equal(t, []float32{21, 31}, out)

	s.Eval([][]float32{{0.2, 0.9, 0.0}}, 2, out)
	assert.True(t, math.IsNaN(float64(out[0])))
}

func TestEvalCapsWidthAtShortestVector(t *testing.T) {
	s := buildScorer(t, exampleTrees())

	out := make([]float32, 2)
	s.Eval([][]float32{{0.5}}, 5, out[:1])
	assert.True(t, math.IsNaN(float64(out[0])))

	s.Eval([][]float32{{0.2, 0.9, 0.0}, {0.9}}, 3, out)
	assert.True(t, math.IsNaN(float64(out[0])))
	assert.True(t, math.IsNaN(float64(out[1])))

	vecs := make([][]float32, 8)
	for i := range vecs {
		vecs[i] = []float32{0.2, 0.9, 0.0}
	}
	vecs[7] = []float32{0.2}
	batch := make([]float32, 8)
	s.Eval(vecs, 100, batch)
	for _, score := range batch {
		assert.True(t, math.IsNaN(float64(score)))
	}
}

func TestScoreMetricsPaths(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	rng := testutil.NewRNG(46)
	s := buildScorer(t, rng.Trees(5, 1, 3, 4), WithMetricsCollector(metrics))

	_, err := s.Score(rng.UniformVectors(1, 4)[0])
	require.NoError(t, err)
	require.NoError(t, s.ScoreBatch(rng.UniformVectors(9, 4), make([]float32, 9)))
	require.NoError(t, s.ScoreBatch(rng.UniformVectors(40, 4), make([]float32, 40)))

	st := metrics.GetStats()
	assert.Equal(t, int64(3), st.ScoreCalls)
	assert.Equal(t, int64(50), st.ScoreVectors)
	assert.Equal(t, int64(1), st.SingleCalls)
	assert.Equal(t, int64(1), st.Batch8Calls)
	assert.Equal(t, int64(1), st.Batch32Calls)
	assert.Zero(t, st.ScoreDegraded)
}

func BenchmarkScoreBatch(b *testing.B) {
	rng := testutil.NewRNG(1)
	trees := make([]testutil.Tree, 1000)
	for i := range trees {
		trees[i] = rng.Tree(8, 100)
	}
	s := buildScorer(b, trees)
	vecs := rng.UniformVectors(4096, 100)
	out := make([]float32, len(vecs))

	b.Run("ScoreBatch", func(b *testing.B) {
		for b.Loop() {
			_ = s.ScoreBatch(vecs, out)
		}
	})
	b.Run("ScoreParallel", func(b *testing.B) {
		ctx := context.Background()
		for b.Loop() {
			_ = s.ScoreParallel(ctx, vecs, out)
		}
	})
}
