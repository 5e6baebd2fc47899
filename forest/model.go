package forest

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/nobranch"
	"github.com/hupe1980/nobranch/codec"
	"github.com/hupe1980/nobranch/internal/layout"
)

var (
	// ErrInvalidTree is returned for malformed trees: nil nodes, splits with
	// a single child, or features outside the model's feature count.
	ErrInvalidTree = errors.New("forest: invalid tree")
	// ErrEmptyModel is returned when a model definition has no trees.
	ErrEmptyModel = errors.New("forest: model has no trees")
)

// Model is an additive ensemble of pointer-based trees.
//
// Validate caches the model's width for Score. Adding or removing trees
// drops the cache; after editing nodes in place, call Validate again.
// Validate and Compile must not run concurrently with Score.
type Model struct {
	Name        string  `json:"name,omitempty"`
	NumFeatures int     `json:"num_features,omitempty"`
	Trees       []*Node `json:"trees"`

	validated  int // len(Trees) at the last successful Validate, or 0
	maxFeature int
}

// Validate checks every tree and caches the model's largest feature index.
// NumFeatures, when set, bounds split features. Trees deeper than
// layout.MaxDepth are rejected with nobranch.ErrUnsupportedDepth before
// anything is sized for them.
func (m *Model) Validate() error {
	m.validated = 0
	if len(m.Trees) == 0 {
		return ErrEmptyModel
	}
	maxFeature := 0
	for i, t := range m.Trees {
		f, err := validate(t, m.NumFeatures)
		if err != nil {
			return fmt.Errorf("tree %d: %w", i, err)
		}
		if d := compiledDepth(t); !layout.ValidDepth(d) {
			return fmt.Errorf("tree %d: %w: depth %d", i, nobranch.ErrUnsupportedDepth, d)
		}
		maxFeature = max(maxFeature, f)
	}
	m.maxFeature = maxFeature
	m.validated = len(m.Trees)
	return nil
}

// MaxFeature returns the largest feature index a compiled ensemble stores.
// Balancing and leaves use feature 0, so it is never below 0.
func (m *Model) MaxFeature() int {
	if m.validated > 0 && m.validated == len(m.Trees) {
		return m.maxFeature
	}
	maxFeature := 0
	for _, t := range m.Trees {
		f, err := validate(t, 0)
		if err == nil {
			maxFeature = max(maxFeature, f)
		}
	}
	return maxFeature
}

// Score is the pointer-chasing reference scorer. It sums every tree's leaf
// in order and, like the compiled Scorer, returns NaN when v is too narrow
// for the model.
func (m *Model) Score(v []float32) float32 {
	if len(v) <= m.MaxFeature() {
		return float32(math.NaN())
	}
	var sum float32
	for _, t := range m.Trees {
		sum += score(t, v)
	}
	return sum
}

// Compile balances and flattens every tree into a new Scorer.
// The returned Scorer is independent of m.
func (m *Model) Compile(opts ...nobranch.Option) (*nobranch.Scorer, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	trees, nodes := Capacity(m.Trees)
	b, err := nobranch.NewBuilder(trees, nodes, opts...)
	if err != nil {
		return nil, err
	}

	for i, t := range m.Trees {
		depth := compiledDepth(t)
		features, values := Flatten(t, depth)
		if err := b.AddTree(depth, features, values); err != nil {
			_ = b.Close()
			return nil, fmt.Errorf("forest: compile tree %d: %w", i, err)
		}
	}

	return b.Build()
}

// Decode parses and validates a model definition. A nil codec means
// codec.Default.
func Decode(data []byte, c codec.Codec) (*Model, error) {
	if c == nil {
		c = codec.Default
	}
	var m Model
	if err := c.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("forest: decode with %s: %w", c.Name(), err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Encode is the inverse of Decode.
func Encode(m *Model, c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return c.Marshal(m)
}
