package kernel

import (
	"unsafe"

	"github.com/hupe1980/nobranch/internal/layout"
)

// Widths are the batch widths with specialized evaluators.
var Widths = [...]int{1, 8, 32}

// Specialized reports whether m vectors can be scored by one specialized pass.
func Specialized(m int) bool {
	for _, w := range Widths {
		if w == m {
			return true
		}
	}
	return false
}

const (
	nodeSize  = uintptr(layout.NodeSize)
	valueSize = unsafe.Sizeof(float32(0))
)

// b2u converts a comparison result to 0 or 1 without branching.
func b2u(b bool) uintptr {
	return uintptr(*(*uint8)(unsafe.Pointer(&b)))
}

func node(t unsafe.Pointer, j uintptr) *layout.Node {
	return (*layout.Node)(unsafe.Add(t, j*nodeSize))
}

// step returns 1 when vector v goes right at node j, 0 when it goes left.
func step(t unsafe.Pointer, j uintptr, v unsafe.Pointer) uintptr {
	n := node(t, j)
	x := *(*float32)(unsafe.Add(v, uintptr(n.Feature)*valueSize))
	return b2u(n.Value <= x)
}

func leaf(t unsafe.Pointer, j uintptr) float32 {
	return node(t, j).Value
}

// noescape hides a pointer from escape analysis. The kernel tables are
// called indirectly, which would otherwise move the per-call pointer arrays
// to the heap.
//
//go:nosplit
//go:nocheckptr
func noescape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0) //nolint:govet // see runtime.noescape
}

// Single scores one vector against every tree in insertion order.
func Single(roots []layout.Root, nodes []layout.Node, v []float32) float32 {
	var (
		f   [1]unsafe.Pointer
		res [1]float32
	)
	f[0] = unsafe.Pointer(&v[0])
	ensembleW1(roots, nodes,
		(*[1]unsafe.Pointer)(noescape(unsafe.Pointer(&f))),
		(*[1]float32)(noescape(unsafe.Pointer(&res))))
	return res[0]
}

// Batch8 scores exactly eight vectors into out[:8].
func Batch8(roots []layout.Root, nodes []layout.Node, vecs [][]float32, out []float32) {
	var f [8]unsafe.Pointer
	vecs = vecs[:8]
	for i := range f {
		f[i] = unsafe.Pointer(&vecs[i][0])
	}
	res := (*[8]float32)(out)
	ensembleW8(roots, nodes,
		(*[8]unsafe.Pointer)(noescape(unsafe.Pointer(&f))),
		(*[8]float32)(noescape(unsafe.Pointer(res))))
}

// Batch32 scores exactly thirty-two vectors into out[:32].
func Batch32(roots []layout.Root, nodes []layout.Node, vecs [][]float32, out []float32) {
	var f [32]unsafe.Pointer
	vecs = vecs[:32]
	for i := range f {
		f[i] = unsafe.Pointer(&vecs[i][0])
	}
	res := (*[32]float32)(out)
	ensembleW32(roots, nodes,
		(*[32]unsafe.Pointer)(noescape(unsafe.Pointer(&f))),
		(*[32]float32)(noescape(unsafe.Pointer(res))))
}
