// Package testutil provides testing utilities for nobranch.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random feature vectors, random
// complete trees in level-order form, and a naive reference scorer.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	vecs := rng.UniformVectors(1000, 64) // uniform [0, 1)
//
// # Random Trees
//
//	trees := rng.Trees(100, 1, 10, 64)
//	want := testutil.ScoreAll(trees, vecs[0])
package testutil
