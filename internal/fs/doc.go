// Package fs provides filesystem abstractions for testability and fault injection.
//
//   - [LocalFS]: production implementation using the os package
//   - [FaultyFS]: test utility that fails writes, syncs or closes on demand
//
// Tests can inject [FaultyFS] to simulate a full disk:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.SetLimit(1024) // fail after 1KB written
//	store := blobstore.NewLocalStore(dir, blobstore.WithFileSystem(ffs))
//
// Reads are not covered: model files are memory mapped.
package fs
