package testutil

// Tree is a complete binary tree in level-order form: Features and Values
// both have 2^(Depth+1)-1 entries. The first 2^Depth-1 entries are splits.
type Tree struct {
	Depth    int
	Features []int32
	Values   []float32
}

// Tree generates a random complete tree of the given depth.
// Split thresholds are uniform in [0, 1), leaf values in [-1, 1).
func (r *RNG) Tree(depth, numFeatures int) Tree {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.treeLocked(depth, numFeatures)
}

func (r *RNG) treeLocked(depth, numFeatures int) Tree {
	n := 1<<(depth+1) - 1
	internal := 1<<depth - 1

	t := Tree{
		Depth:    depth,
		Features: make([]int32, n),
		Values:   make([]float32, n),
	}
	for i := range n {
		if i < internal {
			t.Features[i] = int32(r.rand.Intn(numFeatures)) //nolint:gosec // numFeatures is small
			t.Values[i] = r.rand.Float32()
			continue
		}
		t.Values[i] = r.rand.Float32()*2 - 1
	}
	return t
}

// Trees generates num random trees with depths uniform in [minDepth, maxDepth].
func (r *RNG) Trees(num, minDepth, maxDepth, numFeatures int) []Tree {
	r.mu.Lock()
	defer r.mu.Unlock()

	trees := make([]Tree, num)
	for i := range trees {
		d := minDepth + r.rand.Intn(maxDepth-minDepth+1)
		trees[i] = r.treeLocked(d, numFeatures)
	}
	return trees
}

// Score walks the tree for v: right when threshold <= v[feature], else left.
func (t Tree) Score(v []float32) float32 {
	j := 0
	for range t.Depth {
		if t.Values[j] <= v[t.Features[j]] {
			j = 2*j + 2
		} else {
			j = 2*j + 1
		}
	}
	return t.Values[j]
}

// MaxFeature returns the largest feature index referenced by a split, or -1.
func (t Tree) MaxFeature() int {
	m := -1
	for i := range 1<<t.Depth - 1 {
		m = max(m, int(t.Features[i]))
	}
	return m
}

// ScoreAll sums Score over trees in order, in float32.
func ScoreAll(trees []Tree, v []float32) float32 {
	var sum float32
	for _, t := range trees {
		sum += t.Score(v)
	}
	return sum
}

// Nodes returns the total node count of trees.
func Nodes(trees []Tree) int {
	n := 0
	for _, t := range trees {
		n += len(t.Values)
	}
	return n
}
