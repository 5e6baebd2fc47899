package ensemble

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/nobranch/internal/mem"
	"github.com/hupe1980/nobranch/testutil"
)

func load(t *testing.T, alloc mem.Allocator, trees []testutil.Tree) *Store {
	t.Helper()
	s, err := New(len(trees), testutil.Nodes(trees), alloc)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	for _, tr := range trees {
		require.NoError(t, s.AddTree(tr.Depth, tr.Features, tr.Values))
	}
	return s
}

func TestEvalDepthTwoExample(t *testing.T) {
	s := newStore(t, 2, 10)
	require.NoError(t, s.AddTree(2, []int32{0, 1, 2, 0, 0, 0, 0}, []float32{0.5, 0.3, 0.7, 10, 20, 30, 40}))
	require.NoError(t, s.AddTree(1, []int32{1, 0, 0}, []float32{0.5, 1, 2}))

	out := make([]float32, 1)
	s.Eval([][]float32{{0.2, 0.9, 0.0}}, 3, out)
	assert.Equal(t, float32(21), out[0])
}

func TestEvalTwoStumps(t *testing.T) {
	s := newStore(t, 2, 6)
	f, v := stump(0, 5, 1, 2)
	require.NoError(t, s.AddTree(1, f, v))
	f, v = stump(0, 3, 10, 20)
	require.NoError(t, s.AddTree(1, f, v))

	out := make([]float32, 1)
	s.Eval([][]float32{{4}}, 1, out)
	// 4 < 5 goes left in the first stump, 3 <= 4 goes right in the second.
	assert.Equal(t, float32(21), out[0])
}

func TestEvalStumpBoundary(t *testing.T) {
	s := newStore(t, 1, 3)
	f, v := stump(0, 5, 1, 2)
	require.NoError(t, s.AddTree(1, f, v))

	out := make([]float32, 3)
	s.Eval([][]float32{{4.999}, {5}, {6}}, 1, out)
	assert.Equal(t, []float32{1, 2, 2}, out)
}

func TestEvalSafetyGate(t *testing.T) {
	rng := testutil.NewRNG(11)
	trees := rng.Trees(20, 1, 8, 10)
	s := load(t, mem.Heap, trees)
	maxFeature := s.MaxFeature()

	for _, m := range []int{1, 3, 8, 9, 32, 40} {
		t.Run(fmt.Sprintf("m=%d", m), func(t *testing.T) {
			vecs := rng.UniformVectors(m, maxFeature)
			out := make([]float32, m)
			s.Eval(vecs, maxFeature, out)
			for i := range out {
				assert.True(t, math.IsNaN(float64(out[i])), "output %d", i)
			}

			s.Eval(rng.UniformVectors(m, maxFeature+1), maxFeature+1, out)
			for i := range out {
				assert.False(t, math.IsNaN(float64(out[i])), "output %d", i)
			}
		})
	}
}

func TestEvalGateDoesNotReadVectors(t *testing.T) {
	s := newStore(t, 1, 3)
	f, v := stump(5, 0.5, 1, 2)
	require.NoError(t, s.AddTree(1, f, v))

	out := make([]float32, 2)
	// Vectors are shorter than the referenced feature; the gate must fire first.
	s.Eval([][]float32{{1}, {2}}, 1, out)
	assert.True(t, math.IsNaN(float64(out[0])))
	assert.True(t, math.IsNaN(float64(out[1])))
}

func TestEvalBatchMatchesScalar(t *testing.T) {
	rng := testutil.NewRNG(2024)
	trees := rng.Trees(100, 1, 10, 30)
	s := load(t, mem.Heap, trees)

	for _, m := range []int{1, 2, 7, 8, 16, 31, 32, 33, 100} {
		t.Run(fmt.Sprintf("m=%d", m), func(t *testing.T) {
			vecs := rng.UniformVectors(m, 30)
			out := make([]float32, m)
			s.Eval(vecs, 30, out)

			single := make([]float32, 1)
			for i, v := range vecs {
				s.Eval([][]float32{v}, 30, single)
				assert.Equal(t, single[0], out[i], "vector %d", i)
				assert.Equal(t, testutil.ScoreAll(trees, v), out[i], "vector %d", i)
			}
		})
	}
}

func TestEvalDeterministic(t *testing.T) {
	rng := testutil.NewRNG(77)
	trees := rng.Trees(50, 1, 10, 12)
	s := load(t, mem.Heap, trees)
	vecs := rng.GaussianVectors(32, 12)

	a := make([]float32, 32)
	b := make([]float32, 32)
	s.Eval(vecs, 12, a)
	s.Eval(vecs, 12, b)
	assert.Equal(t, a, b)
}

func TestEvalOffHeapMatchesHeap(t *testing.T) {
	rng := testutil.NewRNG(8)
	trees := rng.Trees(64, 1, 10, 20)
	heap := load(t, mem.Heap, trees)
	off := load(t, mem.OffHeap, trees)
	vecs := rng.UniformVectors(32, 20)

	a := make([]float32, 32)
	b := make([]float32, 32)
	heap.Eval(vecs, 20, a)
	off.Eval(vecs, 20, b)
	assert.Equal(t, a, b)
}

func TestEvalEmptyEnsemble(t *testing.T) {
	s := newStore(t, 4, 16)

	out := []float32{7, 7, 7, 7, 7, 7, 7, 7}
	vecs := testutil.NewRNG(1).UniformVectors(8, 2)
	s.Eval(vecs, 2, out)
	assert.Equal(t, make([]float32, 8), out)
}

func TestEvalNoVectors(t *testing.T) {
	s := newStore(t, 1, 3)
	s.Eval(nil, 1, nil)
}

func TestEvalInfinitePropagates(t *testing.T) {
	s := newStore(t, 2, 6)
	inf := float32(math.Inf(1))
	require.NoError(t, s.AddTree(1, []int32{0, 0, 0}, []float32{0, inf, inf}))
	require.NoError(t, s.AddTree(1, []int32{0, 0, 0}, []float32{0, 1, 1}))

	out := make([]float32, 1)
	s.Eval([][]float32{{1}}, 1, out)
	assert.True(t, math.IsInf(float64(out[0]), 1))
}

func TestEvalAllocs(t *testing.T) {
	rng := testutil.NewRNG(4)
	s := load(t, mem.Heap, rng.Trees(32, 1, 10, 8))
	vecs := rng.UniformVectors(33, 8)
	out := make([]float32, 33)

	allocs := testing.AllocsPerRun(50, func() {
		s.Eval(vecs[:32], 8, out)
		s.Eval(vecs[:8], 8, out)
		s.Eval(vecs, 8, out)
	})
	assert.Zero(t, allocs)
}

func TestPath(t *testing.T) {
	assert.Equal(t, 32, Path(32))
	assert.Equal(t, 8, Path(8))
	assert.Equal(t, 1, Path(1))
	assert.Equal(t, 1, Path(9))
}

func BenchmarkEval(b *testing.B) {
	rng := testutil.NewRNG(1)
	trees := make([]testutil.Tree, 1000)
	for i := range trees {
		trees[i] = rng.Tree(8, 100)
	}
	s, err := New(len(trees), testutil.Nodes(trees), mem.Heap)
	require.NoError(b, err)
	defer s.Close()
	for _, tr := range trees {
		require.NoError(b, s.AddTree(tr.Depth, tr.Features, tr.Values))
	}
	vecs := rng.UniformVectors(32, 100)
	out := make([]float32, 32)

	for _, m := range []int{1, 8, 32} {
		b.Run(fmt.Sprintf("M%d", m), func(b *testing.B) {
			for b.Loop() {
				s.Eval(vecs[:m], 100, out)
			}
		})
	}
}
