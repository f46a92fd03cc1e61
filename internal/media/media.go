package media

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned when no image exists for a key.
var ErrNotFound = errors.New("media not found")

// Store serves the project images referenced by the catalog.
type Store interface {
	Get(ctx context.Context, key string) (io.ReadCloser, string, error)
}
