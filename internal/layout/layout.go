// Package layout defines the flat, level-order representation of complete
// binary trees shared by the ensemble store and the evaluation kernels.
//
// A tree of depth D occupies NodeCount(D) consecutive nodes. The node at
// local index i has children 2i+1 and 2i+2. The first InternalCount(D)
// nodes are splits, the remaining LeafCount(D) nodes are leaves. No node
// carries a kind flag: the role of a node is implied by its position.
package layout

import "unsafe"

const (
	// MinDepth is the smallest supported tree depth.
	MinDepth = 1
	// MaxDepth is the largest depth with a specialized kernel.
	MaxDepth = 10

	// NodeSize is the in-memory size of a Node in bytes.
	NodeSize = int(unsafe.Sizeof(Node{}))
	// RootSize is the in-memory size of a Root in bytes.
	RootSize = int(unsafe.Sizeof(Root{}))

	// MaxNodes bounds the node buffer so offsets fit a Root.
	MaxNodes = 1<<32 - 1
)

// Node is a (feature index, threshold-or-score) pair.
//
// For a split, Value is the threshold compared against the feature at
// Feature. For a leaf, Value is the tree's contribution to the score and
// Feature is ignored by traversal.
type Node struct {
	Feature int32
	Value   float32
}

// Root locates one tree inside the shared node buffer.
type Root struct {
	Offset uint32
	Depth  uint8
}

// NodeCount returns the number of nodes in a complete tree of the given depth.
func NodeCount(depth int) int {
	return 1<<(depth+1) - 1
}

// InternalCount returns the number of split nodes in a complete tree.
func InternalCount(depth int) int {
	return LeafCount(depth) - 1
}

// LeafCount returns the number of leaves in a complete tree.
func LeafCount(depth int) int {
	return 1 << depth
}

// ValidDepth reports whether depth is within [MinDepth, MaxDepth].
func ValidDepth(depth int) bool {
	return depth >= MinDepth && depth <= MaxDepth
}
