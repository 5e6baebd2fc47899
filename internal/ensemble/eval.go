package ensemble

import (
	"math"

	"github.com/hupe1980/nobranch/internal/kernel"
)

// Eval scores len(f) vectors of width numFeatures into out[:len(f)].
//
// If numFeatures does not cover the largest referenced feature index,
// every output is NaN and nothing is read from f. Otherwise exactly 8 or
// 32 vectors run through one batched pass and any other count is scored
// one vector at a time. Eval neither allocates nor blocks.
func (s *Store) Eval(f [][]float32, numFeatures int, out []float32) {
	m := len(f)
	if m == 0 {
		return
	}
	out = out[:m]

	if numFeatures <= int(s.maxFeature) {
		nan := float32(math.NaN())
		for i := range out {
			out[i] = nan
		}
		return
	}

	roots, nodes := s.roots[:s.numTrees], s.nodes[:s.next]
	switch Path(m) {
	case 32:
		kernel.Batch32(roots, nodes, f, out)
	case 8:
		kernel.Batch8(roots, nodes, f, out)
	default:
		for i, v := range f {
			out[i] = kernel.Single(roots, nodes, v)
		}
	}
}

// Path reports the batch width of the evaluator Eval uses for m vectors.
func Path(m int) int {
	if kernel.Specialized(m) {
		return m
	}
	return 1
}
