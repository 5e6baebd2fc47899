package nobranch

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/nobranch/internal/ensemble"
)

// chunk is the widest batch evaluator.
const chunk = 32

// Scorer evaluates feature vectors against a built ensemble.
//
// A Scorer is immutable and safe for concurrent use. Close must not run
// concurrently with scoring.
type Scorer struct {
	opts     options
	store    *ensemble.Store
	bytes    int
	features *roaring.Bitmap
	closed   atomic.Bool
}

// Eval is the raw evaluator. It scores len(vectors) vectors of width
// numFeatures into out, which must hold at least len(vectors) values.
//
// numFeatures is capped at the shortest vector, so a vector that is
// narrower than claimed scores NaN instead of being read past its end.
// When the capped width is <= Stats().MaxFeature every output is NaN.
// Exactly 8 or 32 vectors are scored in one batched pass; any other count
// is scored one vector at a time. Eval performs no allocation or logging.
// After Close it leaves out untouched.
func (s *Scorer) Eval(vectors [][]float32, numFeatures int, out []float32) {
	if s.closed.Load() {
		return
	}
	for _, v := range vectors {
		numFeatures = min(numFeatures, len(v))
	}
	s.store.Eval(vectors, numFeatures, out)
}

// Width returns the smallest vector width that scores without NaN.
func (s *Scorer) Width() int {
	return s.store.MaxFeature() + 1
}

// Score returns the ensemble score of one vector.
// A vector narrower than Width scores NaN; that is not an error.
func (s *Scorer) Score(vector []float32) (float32, error) {
	if s.closed.Load() {
		return 0, ErrClosed
	}

	start := time.Now()
	var out [1]float32
	s.store.Eval([][]float32{vector}, len(vector), out[:])
	s.opts.metricsCollector.RecordScore(1, PathSingle, len(vector) < s.Width(), time.Since(start))

	return out[0], nil
}

// ScoreBatch scores vectors into out[:len(vectors)].
//
// All vectors must have the same width. Large batches are split into runs
// of 32 and 8 so the batched evaluators do most of the work; results are
// identical to scoring each vector alone.
func (s *Scorer) ScoreBatch(vectors [][]float32, out []float32) error {
	width, err := s.validate(vectors, out)
	if err != nil || len(vectors) == 0 {
		return err
	}

	start := time.Now()
	s.evalRuns(vectors, width, out)
	s.opts.metricsCollector.RecordScore(len(vectors), widestPath(len(vectors)), width < s.Width(), time.Since(start))

	return nil
}

// ScoreParallel is ScoreBatch spread over goroutines in chunks of 32.
//
// Parallelism is bounded by the resource controller's worker limit, or
// GOMAXPROCS without one. Cancellation is checked between chunks; on
// cancellation out is partially written and ctx's error is returned.
func (s *Scorer) ScoreParallel(ctx context.Context, vectors [][]float32, out []float32) error {
	width, err := s.validate(vectors, out)
	if err != nil || len(vectors) == 0 {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	rc := s.opts.controller

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rc.Workers())

	for i := 0; i < len(vectors); i += chunk {
		if gctx.Err() != nil {
			break
		}
		end := min(i+chunk, len(vectors))
		g.Go(func() error {
			if err := rc.AcquireWorker(gctx); err != nil {
				return err
			}
			defer rc.ReleaseWorker()

			s.evalRuns(vectors[i:end], width, out[i:end])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	// The loop may have stopped early without any goroutine failing.
	if err := ctx.Err(); err != nil {
		return err
	}

	s.opts.metricsCollector.RecordScore(len(vectors), widestPath(len(vectors)), width < s.Width(), time.Since(start))
	return nil
}

func (s *Scorer) validate(vectors [][]float32, out []float32) (int, error) {
	if s.closed.Load() {
		return 0, ErrClosed
	}
	if len(vectors) == 0 {
		return 0, nil
	}
	if len(out) < len(vectors) {
		return 0, ErrOutputTooSmall
	}

	width := len(vectors[0])
	for i, v := range vectors[1:] {
		if len(v) != width {
			return 0, &ErrDimensionMismatch{Expected: width, Actual: len(v), Index: i + 1}
		}
	}
	return width, nil
}

// evalRuns feeds the dispatcher runs of 32, then 8, then the remainder.
func (s *Scorer) evalRuns(vectors [][]float32, width int, out []float32) {
	for len(vectors) >= 32 {
		s.store.Eval(vectors[:32], width, out)
		vectors, out = vectors[32:], out[32:]
	}
	for len(vectors) >= 8 {
		s.store.Eval(vectors[:8], width, out)
		vectors, out = vectors[8:], out[8:]
	}
	if len(vectors) > 0 {
		s.store.Eval(vectors, width, out)
	}
}

// Stats returns a description of the ensemble, or zero Stats once closed.
func (s *Scorer) Stats() Stats {
	if s.closed.Load() {
		return Stats{}
	}
	return statsOf(s.store, s.bytes, s.opts.allocator.Name())
}

// Features returns the feature indices referenced by split nodes.
// The bitmap is a copy.
func (s *Scorer) Features() *roaring.Bitmap {
	return s.features.Clone()
}

// Close releases the ensemble memory. It is idempotent.
func (s *Scorer) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	err := s.store.Close()
	s.opts.controller.ReleaseMemory(int64(s.bytes))
	s.opts.logger.Debug("scorer closed", "bytes", s.bytes)
	return err
}
