package local

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/amblitz/internal/media"
)

func newStore(t *testing.T) (*MediaStore, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "harbor-loft"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "harbor-loft", "main.JPG"), []byte("fake jpeg data"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "harbor-loft", "placeholder.svg"), []byte("<svg/>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("secret"), 0o600))

	store, err := NewMediaStore(dir)
	require.NoError(t, err)
	return store, dir
}

func TestMediaStoreGet(t *testing.T) {
	store, _ := newStore(t)

	reader, mimeType, err := store.Get(context.Background(), "harbor-loft/main.JPG")
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, "image/jpeg", mimeType)
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, []byte("fake jpeg data"), data)
}

func TestMediaStoreGetSVG(t *testing.T) {
	store, _ := newStore(t)

	reader, mimeType, err := store.Get(context.Background(), "harbor-loft/placeholder.svg")
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, "image/svg+xml", mimeType)
}

func TestMediaStoreNotFound(t *testing.T) {
	store, _ := newStore(t)

	_, _, err := store.Get(context.Background(), "missing.png")
	assert.ErrorIs(t, err, media.ErrNotFound)
}

func TestMediaStoreRejectsNonImages(t *testing.T) {
	store, _ := newStore(t)

	_, _, err := store.Get(context.Background(), "notes.txt")
	assert.ErrorIs(t, err, media.ErrNotFound)
}

func TestMediaStorePathTraversal(t *testing.T) {
	store, _ := newStore(t)

	_, _, err := store.Get(context.Background(), "../../etc/passwd.png")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, media.ErrNotFound)
}

func TestNewMediaStoreRequiresDirectory(t *testing.T) {
	_, err := NewMediaStore(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	_, dir := newStore(t)
	_, err = NewMediaStore(filepath.Join(dir, "notes.txt"))
	assert.Error(t, err)
}
