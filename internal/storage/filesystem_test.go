package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreLifecycle(t *testing.T) {
	root := t.TempDir()
	store, err := NewFileStore(root, "http://localhost:8080/static/")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "furniture-images", "furniture/a.jpg", []byte("jpeg"), "image/jpeg"))
	_, err = os.Stat(filepath.Join(root, "furniture-images", "furniture", "a.jpg"))
	require.NoError(t, err)

	data, err := store.Get(ctx, "furniture-images", "furniture/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg"), data)
	assert.Equal(t, "http://localhost:8080/static/furniture-images/furniture/a.jpg", store.PublicURL("furniture-images", "furniture/a.jpg"))

	require.NoError(t, store.Delete(ctx, "furniture-images", "furniture/a.jpg"))
	_, err = store.Get(ctx, "furniture-images", "furniture/a.jpg")
	assert.ErrorIs(t, err, ErrObjectNotFound)
	assert.NoError(t, store.Delete(ctx, "furniture-images", "furniture/a.jpg"))
}

func TestFileStoreRejectsTraversal(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), "")
	require.NoError(t, err)
	ctx := context.Background()

	assert.Error(t, store.Put(ctx, "room-images", "../../etc/passwd", []byte("x"), ""))
	assert.Error(t, store.Put(ctx, "..", "k", []byte("x"), ""))
	assert.Error(t, store.Put(ctx, "a/b", "k", []byte("x"), ""))
	assert.Error(t, store.Put(ctx, "room-images", " ", []byte("x"), ""))
}

func TestNewFileStoreRequiresPath(t *testing.T) {
	_, err := NewFileStore("  ", "")
	assert.Error(t, err)
}

func TestSanitizeKey(t *testing.T) {
	key, err := sanitizeKey(`.\room-designs\\originals/x.jpg`)
	require.NoError(t, err)
	assert.Equal(t, "room-designs/originals/x.jpg", key)
}
