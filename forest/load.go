package forest

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/hupe1980/nobranch/blobstore"
	"github.com/hupe1980/nobranch/codec"
	"github.com/hupe1980/nobranch/resource"
)

type loadOptions struct {
	codec      codec.Codec
	controller *resource.Controller
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithCodec sets the codec of the model definition. Defaults to codec.Default.
func WithCodec(c codec.Codec) LoadOption {
	return func(o *loadOptions) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithController rate limits the blob read by rc's IO limit.
func WithController(rc *resource.Controller) LoadOption {
	return func(o *loadOptions) {
		o.controller = rc
	}
}

// Load reads, decompresses and decodes the model stored under name.
// A model without a name is named after the blob.
func Load(ctx context.Context, store blobstore.BlobStore, name string, opts ...LoadOption) (*Model, error) {
	o := loadOptions{codec: codec.Default}
	for _, fn := range opts {
		fn(&o)
	}

	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("forest: open %s: %w", name, err)
	}
	defer blob.Close()

	r, err := blobstore.Reader(ctx, blob)
	if err != nil {
		return nil, fmt.Errorf("forest: read %s: %w", name, err)
	}
	defer r.Close()

	comp := CompressionOf(name)
	data, err := decompress(resource.NewRateLimitedReader(ctx, r, o.controller), comp)
	if err != nil {
		return nil, fmt.Errorf("forest: read %s: %w", name, err)
	}

	m, err := Decode(data, o.codec)
	if err != nil {
		return nil, fmt.Errorf("forest: %s: %w", name, err)
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(path.Base(name), comp.Ext())
		m.Name = strings.TrimSuffix(m.Name, path.Ext(m.Name))
	}
	return m, nil
}
