package nobranch

import (
	"errors"
	"fmt"

	"github.com/hupe1980/nobranch/internal/ensemble"
)

// Core errors. They are the ensemble package's sentinels, so errors.Is
// matches no matter which layer returned them.
var (
	// ErrAllocationFailure is returned when the ensemble buffers cannot be
	// allocated or the memory budget is exhausted.
	ErrAllocationFailure = ensemble.ErrAllocationFailure
	// ErrCapacityExceeded is returned when every tree slot is used.
	ErrCapacityExceeded = ensemble.ErrCapacityExceeded
	// ErrInsufficientNodeSpace is returned when a tree does not fit the remaining nodes.
	ErrInsufficientNodeSpace = ensemble.ErrInsufficientNodeSpace
	// ErrInvalidDepth is returned for depths below 1.
	ErrInvalidDepth = ensemble.ErrInvalidDepth
	// ErrUnsupportedDepth is returned for depths above 10.
	ErrUnsupportedDepth = ensemble.ErrUnsupportedDepth
	// ErrLengthDepthMismatch is returned when a tree's node count is not 2^(depth+1)-1.
	ErrLengthDepthMismatch = ensemble.ErrLengthDepthMismatch
	// ErrInvalidFeatureIndex is returned for negative feature indices.
	ErrInvalidFeatureIndex = ensemble.ErrInvalidFeatureIndex
)

var (
	// ErrLengthMismatch is returned when features and values differ in length.
	ErrLengthMismatch = errors.New("nobranch: features and values differ in length")
	// ErrFinalized is returned by Builder methods after Build.
	ErrFinalized = errors.New("nobranch: builder already built")
	// ErrClosed is returned when using a closed Builder or Scorer.
	ErrClosed = errors.New("nobranch: closed")
	// ErrOutputTooSmall is returned when the output buffer is shorter than the input.
	ErrOutputTooSmall = errors.New("nobranch: output buffer too small")
)

// TreeError describes a rejected AddTree call. errors.Is matches it
// against the sentinel that caused the rejection.
type TreeError = ensemble.TreeError

// ErrDimensionMismatch indicates that the vectors of one batch differ in width.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	Index    int // position of the first offending vector
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch at vector %d: expected %d, got %d", e.Index, e.Expected, e.Actual)
}
