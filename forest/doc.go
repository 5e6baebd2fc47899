// Package forest loads pointer-based decision-tree models and compiles them
// into a nobranch.Scorer.
//
// Training libraries export trees as nested split/leaf nodes of arbitrary
// shape. The core only accepts complete level-order trees, so every tree is
// first balanced to its own depth: a leaf above the bottom level becomes a
// split on feature 0 whose two children repeat the leaf. Any vector reaches
// the same output either way.
//
// Model definitions are JSON documents:
//
//	{"name": "ranker", "num_features": 3,
//	 "trees": [{"feature": 0, "threshold": 5.0,
//	            "left": {"output": 1.0}, "right": {"output": 2.0}}]}
//
// Load reads them from any blobstore.BlobStore. Blobs named *.zst or *.lz4
// are decompressed transparently.
package forest
