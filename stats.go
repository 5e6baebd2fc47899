package nobranch

import (
	"github.com/hupe1980/nobranch/internal/ensemble"
	"github.com/hupe1980/nobranch/internal/layout"
)

// Stats describes a built ensemble.
type Stats struct {
	Trees        int
	TreeCapacity int
	Nodes        int
	NodeCapacity int
	// MaxFeature is the largest feature index stored in any node. Vectors
	// must be wider than this or every score is NaN.
	MaxFeature int
	// Depths counts trees per depth; Depths[d] is the number of depth-d trees.
	Depths [layout.MaxDepth + 1]int
	// Bytes is the size of the single ensemble allocation.
	Bytes int
	// Allocator is "heap" or "offheap".
	Allocator string
}

func statsOf(s *ensemble.Store, bytes int, allocator string) Stats {
	st := Stats{
		Trees:        s.NumTrees(),
		TreeCapacity: s.TreeCapacity(),
		Nodes:        s.NodesUsed(),
		NodeCapacity: s.NodeCapacity(),
		MaxFeature:   s.MaxFeature(),
		Bytes:        bytes,
		Allocator:    allocator,
	}
	for _, r := range s.Roots() {
		st.Depths[r.Depth]++
	}
	return st
}
