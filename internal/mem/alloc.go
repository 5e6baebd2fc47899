package mem

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/nobranch/internal/mmap"
)

// Alignment is the byte alignment of heap blocks (one cache line).
const Alignment = 64

// Block is a single owned allocation.
type Block interface {
	// Bytes returns the block's memory. It is valid until Close.
	Bytes() []byte
	// Close releases the memory. It is idempotent.
	Close() error
}

// Allocator hands out blocks.
type Allocator interface {
	Alloc(size int) (Block, error)
	Name() string
}

var (
	// Heap allocates 64-byte aligned blocks on the Go heap.
	Heap Allocator = heapAllocator{}
	// OffHeap allocates blocks from anonymous memory mappings.
	OffHeap Allocator = offHeapAllocator{}
)

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
//
// It allocates size+Alignment bytes and returns the aligned window. The
// underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size == 0 {
		return nil
	}

	buf := make([]byte, size+Alignment)
	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // alignment arithmetic
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// AlignUp rounds n up to a multiple of align, which must be a power of two.
func AlignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// Slice reinterprets the first n*sizeof(T) bytes of buf as a []T.
//
// T must not contain pointers and buf must be suitably aligned for T.
func Slice[T any](buf []byte, n int) []T {
	if n == 0 {
		return nil
	}
	var zero T
	if need := n * int(unsafe.Sizeof(zero)); need > len(buf) {
		panic(fmt.Sprintf("mem: slice of %d bytes exceeds buffer of %d", need, len(buf)))
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&buf[0])), n) //nolint:gosec // pointer-free view
}

type heapAllocator struct{}

func (heapAllocator) Alloc(size int) (Block, error) {
	if size < 0 {
		return nil, fmt.Errorf("mem: negative size %d", size)
	}
	return &heapBlock{buf: AllocAligned(size)}, nil
}

func (heapAllocator) Name() string { return "heap" }

type heapBlock struct {
	buf []byte
}

func (b *heapBlock) Bytes() []byte { return b.buf }

func (b *heapBlock) Close() error {
	b.buf = nil
	return nil
}

type offHeapAllocator struct{}

func (offHeapAllocator) Alloc(size int) (Block, error) {
	if size == 0 {
		return &heapBlock{}, nil
	}
	m, err := mmap.Anon(size)
	if err != nil {
		return nil, fmt.Errorf("mem: anonymous mapping of %d bytes: %w", size, err)
	}
	// Tree walks jump between levels.
	_ = m.Advise(mmap.AccessRandom)
	return m, nil
}

func (offHeapAllocator) Name() string { return "offheap" }
