// Package storage contains the blob store abstraction for original document
// bytes. Implementations must rely on streaming I/O only; no local disk.
package storage

import (
	"context"
	"io"
)

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1 and
// the implementation will buffer/chunk as supported by the backend.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
}

// BlobStore is the durable store for raw file bytes, distinct from the
// structured metadata store. Delete is best-effort: it is the compensation
// half of the ingestion saga and its failure is logged by callers, never
// surfaced past them.
type BlobStore interface {
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
}
