package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/cobra"

	"github.com/hupe1980/nobranch"
	"github.com/hupe1980/nobranch/blobstore"
	miniostore "github.com/hupe1980/nobranch/blobstore/minio"
	s3store "github.com/hupe1980/nobranch/blobstore/s3"
	"github.com/hupe1980/nobranch/codec"
	"github.com/hupe1980/nobranch/forest"
	"github.com/hupe1980/nobranch/resource"
)

var (
	storeKind string
	storeRoot string
	bucket    string
	prefix    string
	endpoint  string
	insecure  bool
	codecName string
	offHeap   bool
	ioLimit   int64
	memLimit  int64
	workers   int64
	verbose   bool
)

// RootCmd is the entry point of the nobranch CLI.
var RootCmd = &cobra.Command{
	Use:          "nobranch",
	Short:        "Branchless tree-ensemble scoring",
	SilenceUsage: true,
}

func init() {
	f := RootCmd.PersistentFlags()
	f.StringVar(&storeKind, "store", "local", "model store: local, s3 or minio")
	f.StringVar(&storeRoot, "root", ".", "root directory of the local store")
	f.StringVar(&bucket, "bucket", "", "bucket of the s3 or minio store")
	f.StringVar(&prefix, "prefix", "", "key prefix inside the bucket")
	f.StringVar(&endpoint, "endpoint", "", "custom s3 endpoint or minio host:port")
	f.BoolVar(&insecure, "insecure", false, "use plain http for minio")
	f.StringVar(&codecName, "codec", codec.Default.Name(), fmt.Sprintf("model codec %v", codec.Names()))
	f.BoolVar(&offHeap, "offheap", false, "place the ensemble outside the Go heap")
	f.Int64Var(&ioLimit, "io-limit", 0, "model read limit in bytes per second (0 = unlimited)")
	f.Int64Var(&memLimit, "mem-limit", 0, "ensemble memory budget in bytes (0 = unlimited)")
	f.Int64Var(&workers, "workers", 0, "parallel scoring workers (0 = GOMAXPROCS)")
	f.BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
}

func logger() *nobranch.Logger {
	if verbose {
		return nobranch.NewTextLogger(slog.LevelDebug)
	}
	return nobranch.NewTextLogger(slog.LevelWarn)
}

func controller() *resource.Controller {
	return resource.NewController(resource.Config{
		MemoryLimitBytes:   memLimit,
		MaxWorkers:         workers,
		IOLimitBytesPerSec: ioLimit,
	})
}

func scorerOptions(rc *resource.Controller, model string) []nobranch.Option {
	return []nobranch.Option{
		nobranch.WithLogger(logger().WithModel(model)),
		nobranch.WithOffHeap(offHeap),
		nobranch.WithResourceController(rc),
	}
}

func openStore(ctx context.Context) (blobstore.BlobStore, error) {
	switch storeKind {
	case "local":
		return blobstore.NewLocalStore(storeRoot), nil
	case "s3":
		if bucket == "" {
			return nil, fmt.Errorf("--bucket is required for the s3 store")
		}
		opts := []s3store.Option{s3store.WithPrefix(prefix)}
		if endpoint != "" {
			opts = append(opts, s3store.WithEndpoint(endpoint))
		}
		return s3store.New(ctx, bucket, opts...)
	case "minio":
		if bucket == "" || endpoint == "" {
			return nil, fmt.Errorf("--bucket and --endpoint are required for the minio store")
		}
		client, err := minio.New(endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
			Secure: !insecure,
		})
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		return miniostore.NewStore(client, bucket, prefix), nil
	default:
		return nil, fmt.Errorf("unknown store %q", storeKind)
	}
}

func loadModel(ctx context.Context, name string, rc *resource.Controller) (*forest.Model, error) {
	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, fmt.Errorf("unknown codec %q", codecName)
	}
	store, err := openStore(ctx)
	if err != nil {
		return nil, err
	}
	return forest.Load(ctx, store, name, forest.WithCodec(c), forest.WithController(rc))
}
