package repositories

import (
	"context"
	"io"
)

// FileRepository stages the recordings selected in a workspace until they are processed
type FileRepository interface {
	// Put stores the object read from r under key
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error

	// Open returns a reader over the stored object
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object; deleting a missing object is not an error
	Delete(ctx context.Context, key string) error
}
