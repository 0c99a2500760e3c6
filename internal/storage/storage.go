package storage

import (
	"context"
	"io"
	"time"
)

// Package storage contains the Media Store abstraction for product images,
// backed by S3-compatible object stores. Implementations must avoid using
// local disk and rely on streaming I/O only.

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1 and the implementation
// will buffer/chunk as supported by the backend.
// ContentType and Metadata are optional.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is a reusable, S3-compatible object storage client interface.
// The key returned alongside each upload doubles as the deletion reference
// stored on product records (image_ref).
type Storage interface {
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PublicURL returns the externally reachable URL for an object key.
	// Objects in the bucket are publicly readable; no signing is involved.
	PublicURL(key string) string
}
