package mem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocAligned(t *testing.T) {
	for _, size := range []int{1, 7, 64, 100, 4096} {
		buf := AllocAligned(size)
		require.Len(t, buf, size)
		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Zero(t, addr%Alignment, "size=%d", size)
	}
	assert.Nil(t, AllocAligned(0))
}

func TestAlignUp(t *testing.T) {
	assert.Equal(t, 0, AlignUp(0, 64))
	assert.Equal(t, 64, AlignUp(1, 64))
	assert.Equal(t, 64, AlignUp(64, 64))
	assert.Equal(t, 128, AlignUp(65, 64))
	assert.Equal(t, 8, AlignUp(5, 8))
}

type pair struct {
	A int32
	B float32
}

func TestSlice(t *testing.T) {
	buf := AllocAligned(64)
	s := Slice[pair](buf, 8)
	require.Len(t, s, 8)

	s[1] = pair{A: 7, B: 1.5}
	assert.Equal(t, byte(7), buf[8])

	assert.Nil(t, Slice[pair](buf, 0))
	assert.Panics(t, func() { Slice[pair](buf, 9) })
}

func TestAllocators(t *testing.T) {
	for _, a := range []Allocator{Heap, OffHeap} {
		t.Run(a.Name(), func(t *testing.T) {
			b, err := a.Alloc(4096)
			require.NoError(t, err)
			require.Len(t, b.Bytes(), 4096)

			addr := uintptr(unsafe.Pointer(&b.Bytes()[0]))
			assert.Zero(t, addr%Alignment)

			b.Bytes()[4095] = 0xff
			require.NoError(t, b.Close())
			require.NoError(t, b.Close())
		})
	}
}

func TestAllocatorsZeroSize(t *testing.T) {
	for _, a := range []Allocator{Heap, OffHeap} {
		b, err := a.Alloc(0)
		require.NoError(t, err, a.Name())
		assert.Empty(t, b.Bytes())
		require.NoError(t, b.Close())
	}
	_, err := Heap.Alloc(-1)
	assert.Error(t, err)
}
