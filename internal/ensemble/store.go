// Package ensemble holds a capacity-bounded collection of complete binary
// trees in one flat node buffer and evaluates feature vectors against it.
//
// A Store is filled once through AddTree and then only read. Construction
// is single-threaded; Eval may run concurrently once loading is finished.
package ensemble

import (
	"fmt"
	"math"

	"github.com/hupe1980/nobranch/internal/conv"
	"github.com/hupe1980/nobranch/internal/layout"
	"github.com/hupe1980/nobranch/internal/mem"
)

// Store owns the node and root buffers of one ensemble.
//
// Both buffers are carved from a single mem.Block: the node buffer first,
// padded to mem.Alignment, followed by the root descriptors.
type Store struct {
	block mem.Block
	nodes []layout.Node
	roots []layout.Root

	numTrees   int
	next       int // reserved offset of the next tree
	maxFeature int32
}

// Size returns the number of bytes New requests from the allocator.
func Size(treeCapacity, nodeCapacity int) (int, error) {
	if treeCapacity < 0 || nodeCapacity < 0 {
		return 0, fmt.Errorf("%w: negative capacity (trees %d, nodes %d)", ErrAllocationFailure, treeCapacity, nodeCapacity)
	}
	if _, err := conv.IntToUint32(treeCapacity); err != nil || uint64(nodeCapacity) > layout.MaxNodes {
		return 0, fmt.Errorf("%w: capacity too large (trees %d, nodes %d)", ErrAllocationFailure, treeCapacity, nodeCapacity)
	}
	if nodeCapacity > (math.MaxInt-mem.Alignment)/layout.NodeSize {
		return 0, fmt.Errorf("%w: node buffer size overflows", ErrAllocationFailure)
	}
	nodeBytes := mem.AlignUp(nodeCapacity*layout.NodeSize, mem.Alignment)
	if treeCapacity > (math.MaxInt-nodeBytes)/layout.RootSize {
		return 0, fmt.Errorf("%w: root buffer size overflows", ErrAllocationFailure)
	}
	return nodeBytes + treeCapacity*layout.RootSize, nil
}

// New allocates a store for up to treeCapacity trees sharing nodeCapacity nodes.
func New(treeCapacity, nodeCapacity int, alloc mem.Allocator) (*Store, error) {
	size, err := Size(treeCapacity, nodeCapacity)
	if err != nil {
		return nil, err
	}
	if alloc == nil {
		alloc = mem.Heap
	}

	block, err := alloc.Alloc(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailure, err)
	}
	buf := block.Bytes()
	if len(buf) < size {
		_ = block.Close()
		return nil, fmt.Errorf("%w: %s returned %d of %d bytes", ErrAllocationFailure, alloc.Name(), len(buf), size)
	}

	nodeBytes := mem.AlignUp(nodeCapacity*layout.NodeSize, mem.Alignment)
	return &Store{
		block: block,
		nodes: mem.Slice[layout.Node](buf, nodeCapacity),
		roots: mem.Slice[layout.Root](buf[nodeBytes:], treeCapacity),
	}, nil
}

// AddTree validates one complete tree and appends it.
//
// features and values hold the tree's nodes in level order and must have
// equal length. Checks run in a fixed order and the first failure is
// returned as a *TreeError. A rejected call leaves the store unchanged.
func (s *Store) AddTree(depth int, features []int32, values []float32) error {
	n := len(features)

	fail := func(err error) error {
		return &TreeError{Tree: s.numTrees, Depth: depth, Len: n, Err: err}
	}

	if s.numTrees == len(s.roots) {
		return fail(ErrCapacityExceeded)
	}
	if n > len(s.nodes)-s.next {
		return fail(ErrInsufficientNodeSpace)
	}
	if depth < layout.MinDepth {
		return fail(ErrInvalidDepth)
	}
	if depth > layout.MaxDepth {
		return fail(ErrUnsupportedDepth)
	}
	if n != layout.NodeCount(depth) {
		return fail(ErrLengthDepthMismatch)
	}

	maxFeature := s.maxFeature
	for _, f := range features {
		if f < 0 {
			return fail(ErrInvalidFeatureIndex)
		}
		maxFeature = max(maxFeature, f)
	}

	dst := s.nodes[s.next : s.next+n]
	for i := range dst {
		dst[i] = layout.Node{Feature: features[i], Value: values[i]}
	}

	s.roots[s.numTrees] = layout.Root{Offset: uint32(s.next), Depth: uint8(depth)} //nolint:gosec // bounded by MaxNodes and MaxDepth
	s.numTrees++
	s.next += n
	s.maxFeature = maxFeature

	return nil
}

// Close releases the backing block and leaves an empty store with zero
// capacity. Eval must not run afterwards.
func (s *Store) Close() error {
	s.nodes = nil
	s.roots = nil
	s.numTrees = 0
	s.next = 0
	s.maxFeature = 0
	if s.block == nil {
		return nil
	}
	err := s.block.Close()
	s.block = nil
	return err
}

// NumTrees returns the number of committed trees.
func (s *Store) NumTrees() int { return s.numTrees }

// TreeCapacity returns the maximum number of trees.
func (s *Store) TreeCapacity() int { return len(s.roots) }

// NodesUsed returns the number of committed nodes.
func (s *Store) NodesUsed() int { return s.next }

// NodeCapacity returns the size of the node buffer.
func (s *Store) NodeCapacity() int { return len(s.nodes) }

// MaxFeature returns the largest feature index referenced by any committed
// node, leaves included. It is 0 for an empty store.
func (s *Store) MaxFeature() int { return int(s.maxFeature) }

// Tree returns the root and nodes of the i-th committed tree.
func (s *Store) Tree(i int) (layout.Root, []layout.Node) {
	r := s.roots[:s.numTrees][i]
	return r, s.nodes[r.Offset : int(r.Offset)+layout.NodeCount(int(r.Depth))]
}

// Roots returns the committed root descriptors in insertion order.
func (s *Store) Roots() []layout.Root {
	return s.roots[:s.numTrees]
}

// Nodes returns the committed node buffer.
func (s *Store) Nodes() []layout.Node {
	return s.nodes[:s.next]
}
