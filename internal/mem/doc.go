// Package mem provides the owned allocations that back ensemble buffers.
//
// # Aligned Allocation
//
// Heap blocks start on a 64-byte boundary so the node buffer begins on a
// cache line. Off-heap blocks come from an anonymous mapping and are
// page aligned.
//
// # Typed Views
//
// Slice reinterprets a byte region as a slice of a pointer-free value type.
// It is how the store carves its node and root buffers out of one block.
package mem
