// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("models/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	model, err := forest.Load(ctx, store, "ranker.json.zst")
//
// # Features
//
//   - Range reads for streaming decompression
//   - Parallel part downloads for whole-blob reads
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
