package kernel

import (
	"fmt"
	"testing"

	"github.com/hupe1980/nobranch/testutil"
)

func BenchmarkKernels(b *testing.B) {
	const (
		numTrees    = 500
		numFeatures = 128
	)

	for _, depth := range []int{4, 6, 8, 10} {
		rng := testutil.NewRNG(int64(depth))
		trees := make([]testutil.Tree, numTrees)
		for i := range trees {
			trees[i] = rng.Tree(depth, numFeatures)
		}
		roots, nodes := pack(trees)
		vecs := rng.UniformVectors(32, numFeatures)
		out := make([]float32, 32)

		b.Run(fmt.Sprintf("Walk/D%d", depth), func(b *testing.B) {
			for b.Loop() {
				out[0] = walkAll(roots, nodes, vecs[0])
			}
		})
		b.Run(fmt.Sprintf("Single/D%d", depth), func(b *testing.B) {
			for b.Loop() {
				out[0] = Single(roots, nodes, vecs[0])
			}
		})
		b.Run(fmt.Sprintf("Batch8/D%d", depth), func(b *testing.B) {
			for b.Loop() {
				Batch8(roots, nodes, vecs, out)
			}
		})
		b.Run(fmt.Sprintf("Batch32/D%d", depth), func(b *testing.B) {
			for b.Loop() {
				Batch32(roots, nodes, vecs, out)
			}
		})
	}
}
