package mmap

import "errors"

// AccessPattern is a hint to the kernel about how mapped memory is read.
type AccessPattern int

const (
	// AccessDefault gives no specific advice.
	AccessDefault AccessPattern = iota
	// AccessSequential expects sequential reads.
	AccessSequential
	// AccessRandom expects random reads, as in tree traversal.
	AccessRandom
	// AccessWillNeed asks the kernel to fault pages in early.
	AccessWillNeed
)

var (
	// ErrClosed is returned when a closed mapping is used.
	ErrClosed = errors.New("mmap: mapping is closed")
	// ErrInvalidSize is returned for negative or zero anonymous sizes.
	ErrInvalidSize = errors.New("mmap: invalid size")
	// ErrInvalidOffset is returned for negative read offsets.
	ErrInvalidOffset = errors.New("mmap: invalid offset")
)
