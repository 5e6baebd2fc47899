// Package nobranch scores feature vectors against ensembles of shallow,
// complete binary decision trees, the gradient-boosted models used for
// learning-to-rank, with minimal per-document overhead.
//
// Trees are stored level-order in one flat buffer and walked without
// branches: at every level the comparison result is turned into 0 or 1
// and folded into the next node index. Kernels are specialized per tree
// depth (1 to 10) and per batch width (1, 8 or 32 vectors).
//
// # Quick Start
//
//	b, err := nobranch.NewBuilder(numTrees, numNodes)
//	if err != nil {
//	    return err
//	}
//	defer b.Close()
//
//	for _, t := range trees {
//	    if err := b.AddTree(t.Depth, t.Features, t.Values); err != nil {
//	        return err
//	    }
//	}
//
//	scorer, err := b.Build()
//	if err != nil {
//	    return err
//	}
//	defer scorer.Close()
//
//	score, err := scorer.Score(vector)
//
// # Tree Layout
//
// A tree of depth D has 2^(D+1)-1 nodes in level order; node i has
// children 2i+1 and 2i+2. The first 2^D-1 nodes are splits holding a
// (feature, threshold) pair, the rest are leaves holding the tree's output.
// A vector goes right when threshold <= vector[feature], so NaN features
// go left. Use package forest to convert arbitrary trees.
//
// # NaN Results
//
// If the vectors are not wider than the largest feature index the
// ensemble references, every score is NaN. This is checked once per call
// and is not reported as an error.
//
// # Batching
//
// ScoreBatch splits its input into runs of 32 and 8 vectors that share
// one pass over each tree. ScoreParallel spreads chunks of 32 over
// goroutines. Both return exactly the scores Score would.
package nobranch
