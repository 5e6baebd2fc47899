package ensemble

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocationFailure is returned when the ensemble buffers cannot be obtained.
	ErrAllocationFailure = errors.New("ensemble: allocation failure")
	// ErrCapacityExceeded is returned when every tree slot is already committed.
	ErrCapacityExceeded = errors.New("ensemble: tree capacity exceeded")
	// ErrInsufficientNodeSpace is returned when the tree does not fit the remaining node buffer.
	ErrInsufficientNodeSpace = errors.New("ensemble: insufficient node space")
	// ErrInvalidDepth is returned for depths below 1.
	ErrInvalidDepth = errors.New("ensemble: invalid depth")
	// ErrUnsupportedDepth is returned for depths above 10.
	ErrUnsupportedDepth = errors.New("ensemble: unsupported depth")
	// ErrLengthDepthMismatch is returned when the node count is not 2^(depth+1)-1.
	ErrLengthDepthMismatch = errors.New("ensemble: node count does not match depth")
	// ErrInvalidFeatureIndex is returned for negative feature indices.
	ErrInvalidFeatureIndex = errors.New("ensemble: invalid feature index")
)

// TreeError describes a rejected AddTree call.
type TreeError struct {
	Tree  int // index the tree would have had
	Depth int
	Len   int
	Err   error
}

func (e *TreeError) Error() string {
	return fmt.Sprintf("tree %d (depth %d, %d nodes): %v", e.Tree, e.Depth, e.Len, e.Err)
}

func (e *TreeError) Unwrap() error {
	return e.Err
}
