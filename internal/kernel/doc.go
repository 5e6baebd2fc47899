// Package kernel implements branchless evaluation of complete binary trees.
//
// # Traversal
//
// A tree of depth D is walked with pure index arithmetic:
//
//	j = 1 + (node[0].Value <= v[node[0].Feature])
//	j = 2j + 1 + (node[j].Value <= v[node[j].Feature])   // D-1 times
//	score += node[j].Value
//
// The comparison result is reinterpreted as 0 or 1, so no conditional branch
// depends on feature data.
//
// # Specialization
//
// Every (depth, batch width) pair in [1,10] x {1, 8, 32} has its own routine
// in eval_gen.go, produced by ./cmd/generator. Levels are unrolled; the width-8
// and width-32 routines advance all vectors one level before moving to the
// next (tree-major, level-major, vector-minor). Per-width tables indexed by
// depth-1 select the routine for each tree.
//
// # Safety
//
// Kernels read nodes and features without bounds checks. Callers must ensure
// every vector is longer than the largest feature index in the ensemble and
// every Root describes a tree that lies inside the node buffer.
package kernel

//go:generate go run ./cmd/generator -o eval_gen.go
