package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vbonduro/amblitz/internal/media"
)

// imageTypes maps the file extensions served from the media directory to
// their content types. Anything else is reported as not found.
var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".avif": "image/avif",
	".svg":  "image/svg+xml",
}

// MediaStore serves images from a directory on disk.
type MediaStore struct {
	basePath string
}

func NewMediaStore(basePath string) (*MediaStore, error) {
	info, err := os.Stat(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open media directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("media path %s is not a directory", basePath)
	}
	return &MediaStore{basePath: basePath}, nil
}

func (s *MediaStore) Get(_ context.Context, key string) (io.ReadCloser, string, error) {
	mimeType, ok := imageTypes[strings.ToLower(filepath.Ext(key))]
	if !ok {
		return nil, "", media.ErrNotFound
	}

	filePath, err := s.safeJoin(key)
	if err != nil {
		return nil, "", err
	}

	f, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", media.ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	return f, mimeType, nil
}

// safeJoin resolves key relative to basePath and rejects directory traversal.
func (s *MediaStore) safeJoin(key string) (string, error) {
	absBase, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}

	absPath, err := filepath.Abs(filepath.Join(s.basePath, filepath.FromSlash(key)))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal attempt")
	}
	return absPath, nil
}
