// Package mmap provides memory mappings for ensemble buffers and model files.
//
// Two kinds of mapping are supported:
//
//   - Anon returns a private read-write anonymous mapping. The ensemble store
//     uses it to keep node buffers outside the Go heap so large models add no
//     GC scan work.
//   - Open maps a file read-only for zero-copy model loading.
//
// On Unix this is mmap(2)/munmap(2) with madvise(2) hints. On Windows anonymous
// memory comes from VirtualAlloc and files from MapViewOfFile; Advise is a no-op.
//
// A Mapping owns its memory. Close is idempotent, but the caller must make sure
// no goroutine touches Bytes() after Close returns.
package mmap
