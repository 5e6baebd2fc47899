package forest

import (
	"fmt"
	"math"

	"github.com/hupe1980/nobranch/internal/conv"
	"github.com/hupe1980/nobranch/internal/layout"
)

// Node is either a split (both children set) or a leaf (no children).
//
// A vector goes right at a split when Threshold <= v[Feature], left
// otherwise, NaN included.
type Node struct {
	Feature   int     `json:"feature,omitempty"`
	Threshold float32 `json:"threshold,omitempty"`
	Output    float32 `json:"output,omitempty"`
	Left      *Node   `json:"left,omitempty"`
	Right     *Node   `json:"right,omitempty"`
}

// Leaf returns a leaf node.
func Leaf(output float32) *Node {
	return &Node{Output: output}
}

// Split returns a split node.
func Split(feature int, threshold float32, left, right *Node) *Node {
	return &Node{Feature: feature, Threshold: threshold, Left: left, Right: right}
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Depth returns the number of splits on the longest root-to-leaf path.
// A single leaf has depth 0.
func Depth(n *Node) int {
	if n == nil || n.IsLeaf() {
		return 0
	}
	return 1 + max(Depth(n.Left), Depth(n.Right))
}

// Balance returns a copy of n in which every leaf sits at exactly depth.
// Leaves above that level become splits on feature 0 with threshold 0 and
// the leaf repeated on both sides. depth must be at least Depth(n).
func Balance(n *Node, depth int) *Node {
	if depth == 0 {
		return &Node{Output: n.Output}
	}
	if n.IsLeaf() {
		return &Node{
			Left:  Balance(n, depth-1),
			Right: Balance(n, depth-1),
		}
	}
	return &Node{
		Feature:   n.Feature,
		Threshold: n.Threshold,
		Left:      Balance(n.Left, depth-1),
		Right:     Balance(n.Right, depth-1),
	}
}

// Flatten writes n in the level-order form AddTree takes: node j has
// children 2j+1 and 2j+2, splits hold thresholds and leaves hold outputs.
// It balances on the fly, so Flatten(n, d) equals Flatten(Balance(n, d), d)
// without building the intermediate tree. depth must be at least Depth(n).
func Flatten(n *Node, depth int) ([]int32, []float32) {
	count := layout.NodeCount(depth)
	features := make([]int32, count)
	values := make([]float32, count)
	flatten(n, 0, depth, features, values)
	return features, values
}

func flatten(n *Node, j, remaining int, features []int32, values []float32) {
	if remaining == 0 {
		values[j] = n.Output
		return
	}
	left, right := n.Left, n.Right
	if n.IsLeaf() {
		left, right = n, n
	} else {
		features[j] = int32(n.Feature) //nolint:gosec // bounded by validate
		values[j] = n.Threshold
	}
	flatten(left, 2*j+1, remaining-1, features, values)
	flatten(right, 2*j+2, remaining-1, features, values)
}

// Capacity returns the tree and node capacities a Builder needs for trees.
// Leaf-only trees count as depth 1. Trees must pass Model.Validate; deeper
// trees overflow the node count.
func Capacity(trees []*Node) (treeCount, nodeCount int) {
	for _, t := range trees {
		nodeCount += layout.NodeCount(compiledDepth(t))
	}
	return len(trees), nodeCount
}

func compiledDepth(n *Node) int {
	return max(Depth(n), 1)
}

// score walks n the way the branchless kernels do. A split outside v
// scores NaN.
func score(n *Node, v []float32) float32 {
	for !n.IsLeaf() {
		if uint(n.Feature) >= uint(len(v)) {
			return float32(math.NaN())
		}
		if n.Threshold <= v[n.Feature] {
			n = n.Right
		} else {
			n = n.Left
		}
	}
	return n.Output
}

// validate checks the shape of one tree and returns its largest split feature,
// or -1 for a lone leaf.
func validate(n *Node, numFeatures int) (int, error) {
	if n == nil {
		return -1, fmt.Errorf("%w: nil node", ErrInvalidTree)
	}
	if n.IsLeaf() {
		return -1, nil
	}
	if n.Left == nil || n.Right == nil {
		return -1, fmt.Errorf("%w: split on feature %d has one child", ErrInvalidTree, n.Feature)
	}
	if f, err := conv.IntToInt32(n.Feature); err != nil || f < 0 {
		return -1, fmt.Errorf("%w: feature %d out of range", ErrInvalidTree, n.Feature)
	}
	if numFeatures > 0 && n.Feature >= numFeatures {
		return -1, fmt.Errorf("%w: feature %d outside %d features", ErrInvalidTree, n.Feature, numFeatures)
	}
	l, err := validate(n.Left, numFeatures)
	if err != nil {
		return -1, err
	}
	r, err := validate(n.Right, numFeatures)
	if err != nil {
		return -1, err
	}
	return max(n.Feature, l, r), nil
}
