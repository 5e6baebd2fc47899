package forest

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression is the container format of a model blob.
type Compression uint8

const (
	// CompressionNone is a plain model definition.
	CompressionNone Compression = iota
	// CompressionZstd is a zstd frame (*.zst).
	CompressionZstd
	// CompressionLZ4 is an LZ4 frame (*.lz4).
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return "none"
	}
}

// Ext returns the blob name suffix for c.
func (c Compression) Ext() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// CompressionOf picks the format from a blob name's suffix.
func CompressionOf(name string) Compression {
	switch {
	case strings.HasSuffix(name, ".zst"):
		return CompressionZstd
	case strings.HasSuffix(name, ".lz4"):
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// Compress wraps data in the container format c.
func Compress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionZstd:
		enc := getZstdEncoder()
		defer zstdEncoderPool.Put(enc)
		return enc.EncodeAll(data, nil), nil
	case CompressionLZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("forest: lz4 compress: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("forest: lz4 compress: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return data, nil
	}
}

// decompress reads r to the end and unwraps the container format c.
func decompress(r io.Reader, c Compression) ([]byte, error) {
	switch c {
	case CompressionZstd:
		raw, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)
		data, err := dec.DecodeAll(raw, nil)
		if err != nil {
			return nil, fmt.Errorf("forest: zstd decompress: %w", err)
		}
		return data, nil
	case CompressionLZ4:
		data, err := io.ReadAll(lz4.NewReader(r))
		if err != nil {
			return nil, fmt.Errorf("forest: lz4 decompress: %w", err)
		}
		return data, nil
	default:
		return io.ReadAll(r)
	}
}
