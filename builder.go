package nobranch

import (
	"context"
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/nobranch/internal/ensemble"
	"github.com/hupe1980/nobranch/internal/layout"
)

// Builder loads trees into a fixed-capacity ensemble.
//
// A Builder is not safe for concurrent use. Build hands the ensemble to a
// Scorer; afterwards every Builder method except Close returns ErrFinalized.
type Builder struct {
	opts     options
	store    *ensemble.Store
	bytes    int
	features *roaring.Bitmap
	start    time.Time
	built    bool
	closed   bool
}

// NewBuilder allocates an ensemble for treeCapacity trees holding
// nodeCapacity nodes in total.
//
// For trees of depths d1..dn the exact capacities are n and
// sum(2^(di+1)-1). The whole ensemble is one allocation, accounted against
// the resource controller's memory budget when one is configured.
func NewBuilder(treeCapacity, nodeCapacity int, optFns ...Option) (*Builder, error) {
	o := applyOptions(optFns)
	ctx := context.Background()

	size, err := ensemble.Size(treeCapacity, nodeCapacity)
	if err != nil {
		o.logger.LogAllocation(ctx, treeCapacity, nodeCapacity, 0, err)
		return nil, err
	}

	if !o.controller.TryAcquireMemory(int64(size)) {
		err := fmt.Errorf("%w: %d bytes exceed the memory budget (%d in use)", ErrAllocationFailure, size, o.controller.MemoryUsage())
		o.logger.LogAllocation(ctx, treeCapacity, nodeCapacity, size, err)
		return nil, err
	}

	store, err := ensemble.New(treeCapacity, nodeCapacity, o.allocator)
	if err != nil {
		o.controller.ReleaseMemory(int64(size))
		o.logger.LogAllocation(ctx, treeCapacity, nodeCapacity, size, err)
		return nil, err
	}

	return &Builder{
		opts:     o,
		store:    store,
		bytes:    size,
		features: roaring.New(),
		start:    time.Now(),
	}, nil
}

func (b *Builder) usable() error {
	switch {
	case b.built:
		return ErrFinalized
	case b.closed:
		return ErrClosed
	}
	return nil
}

// AddTree appends one complete tree given in level order.
//
// features[i] and values[i] describe node i; children of node i are 2i+1
// and 2i+2. For the first 2^depth-1 (split) nodes values holds thresholds,
// for the remaining leaves it holds the tree's output. A vector goes right
// at a split when threshold <= vector[feature].
//
// The checks run in this order and the first failure wins:
// ErrCapacityExceeded, ErrInsufficientNodeSpace, ErrInvalidDepth,
// ErrUnsupportedDepth, ErrLengthDepthMismatch, ErrInvalidFeatureIndex.
// A rejected tree leaves the ensemble unchanged.
func (b *Builder) AddTree(depth int, features []int32, values []float32) error {
	if err := b.usable(); err != nil {
		return err
	}
	if len(features) != len(values) {
		return fmt.Errorf("%w: %d features, %d values", ErrLengthMismatch, len(features), len(values))
	}

	tree := b.store.NumTrees()
	err := b.store.AddTree(depth, features, values)
	b.opts.metricsCollector.RecordAddTree(depth, err)
	b.opts.logger.LogAddTree(context.Background(), tree, depth, len(features), err)
	if err != nil {
		return err
	}

	for _, f := range features[:layout.InternalCount(depth)] {
		b.features.Add(uint32(f)) //nolint:gosec // validated non-negative
	}
	return nil
}

// Len returns the number of trees added so far.
func (b *Builder) Len() int {
	if b.store == nil {
		return 0
	}
	return b.store.NumTrees()
}

// Build finalizes the ensemble. The Builder must not be used afterwards;
// the returned Scorer owns the memory.
func (b *Builder) Build() (*Scorer, error) {
	if err := b.usable(); err != nil {
		return nil, err
	}
	b.built = true

	s := &Scorer{
		opts:     b.opts,
		store:    b.store,
		bytes:    b.bytes,
		features: b.features,
	}
	b.store = nil
	b.features = nil

	st := s.Stats()
	b.opts.metricsCollector.RecordBuild(st.Trees, st.Nodes, time.Since(b.start))
	b.opts.logger.LogBuild(context.Background(), st)

	return s, nil
}

// Close releases an unbuilt ensemble. It is idempotent and a no-op after Build.
func (b *Builder) Close() error {
	if b.built || b.closed {
		return nil
	}
	b.closed = true

	err := b.store.Close()
	b.opts.controller.ReleaseMemory(int64(b.bytes))
	b.store = nil
	b.features = nil
	return err
}
