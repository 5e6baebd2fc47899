package kernel

import "github.com/hupe1980/nobranch/internal/layout"

// walk scores one vector against one level-order tree with a plain,
// bounds-checked loop. It supports any depth and is the reference the
// specialized kernels are checked against.
func walk(nodes []layout.Node, depth int, v []float32) float32 {
	j := 0
	for j < layout.InternalCount(depth) {
		n := nodes[j]
		j = 2*j + 1
		if n.Value <= v[n.Feature] {
			j++
		}
	}
	return nodes[j].Value
}

// walkAll sums walk over every tree in insertion order.
func walkAll(roots []layout.Root, nodes []layout.Node, v []float32) float32 {
	var sum float32
	for _, r := range roots {
		n := layout.NodeCount(int(r.Depth))
		sum += walk(nodes[r.Offset:int(r.Offset)+n], int(r.Depth), v)
	}
	return sum
}
