package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/nobranch"
	"github.com/hupe1980/nobranch/testutil"
)

var (
	benchTrees    int
	benchDepth    int
	benchFeatures int
	benchDocs     int
	benchBatch    int
	benchParallel bool
	benchSeed     int64
)

// benchCmd scores random documents against a random complete ensemble.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark a random ensemble",
	RunE: func(cmd *cobra.Command, args []string) error {
		if benchBatch < 1 {
			return fmt.Errorf("--batch must be positive")
		}
		rng := testutil.NewRNG(benchSeed)
		trees := rng.Trees(benchTrees, benchDepth, benchDepth, benchFeatures)

		rc := controller()
		b, err := nobranch.NewBuilder(len(trees), testutil.Nodes(trees), scorerOptions(rc, "bench")...)
		if err != nil {
			return err
		}
		for i, t := range trees {
			if err := b.AddTree(t.Depth, t.Features, t.Values); err != nil {
				_ = b.Close()
				return fmt.Errorf("tree %d: %w", i, err)
			}
		}
		s, err := b.Build()
		if err != nil {
			return err
		}
		defer s.Close()

		docs := rng.UniformVectors(benchDocs, benchFeatures)
		out := make([]float32, len(docs))

		start := time.Now()
		if benchParallel {
			err = s.ScoreParallel(context.Background(), docs, out)
		} else {
			for i := 0; i < len(docs); i += benchBatch {
				end := min(i+benchBatch, len(docs))
				if err = s.ScoreBatch(docs[i:end], out[i:end]); err != nil {
					break
				}
			}
		}
		took := time.Since(start)
		if err != nil {
			return err
		}

		st := s.Stats()
		fmt.Fprintf(cmd.OutOrStdout(), "trees=%d depth=%d nodes=%d bytes=%d allocator=%s\n",
			st.Trees, benchDepth, st.Nodes, st.Bytes, st.Allocator)
		fmt.Fprintf(cmd.OutOrStdout(), "took: %s (%.0f docs/s)\n", took, float64(len(docs))/took.Seconds())
		return nil
	},
}

func init() {
	f := benchCmd.Flags()
	f.IntVar(&benchTrees, "trees", 1000, "number of trees")
	f.IntVar(&benchDepth, "depth", 8, "depth of every tree")
	f.IntVar(&benchFeatures, "features", 100, "features per document")
	f.IntVar(&benchDocs, "docs", 40000, "documents to score")
	f.IntVar(&benchBatch, "batch", 32, "documents per ScoreBatch call")
	f.BoolVar(&benchParallel, "parallel", false, "score all documents with ScoreParallel")
	f.Int64Var(&benchSeed, "seed", time.Now().UnixNano(), "random seed")

	RootCmd.AddCommand(benchCmd)
}
