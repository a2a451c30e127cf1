package filestorages

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_ValidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	validKeys := []string{
		"report-2017-06-30.html",
		"nested/deep/path/file.txt",
		"file-with-dashes.txt",
		"file_with_underscores.txt",
		"file.with.dots.txt",
	}

	for _, key := range validKeys {
		t.Run(key, func(t *testing.T) {
			data := "test data"

			err := storage.Create(ctx, key, strings.NewReader(data))
			require.NoError(t, err, "key %q should be valid", key)

			content, err := os.ReadFile(storage.Path(key))
			require.NoError(t, err)
			assert.Equal(t, data, string(content))
		})
	}
}

func TestCreate_FileExists(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	key := "report.html"
	data := "initial data"

	require.NoError(t, storage.Create(ctx, key, strings.NewReader(data)))

	err := storage.Create(ctx, key, strings.NewReader("new data"))
	assert.ErrorIs(t, err, ErrFileAlreadyExists)

	// Verify original data is unchanged
	content, err := os.ReadFile(storage.Path(key))
	require.NoError(t, err)
	assert.Equal(t, data, string(content))
}

func TestCreate_CreatesRootDir(t *testing.T) {
	t.Parallel()

	rootDir := filepath.Join(t.TempDir(), "reports", "daily")
	storage, err := NewFileStorage(rootDir)
	require.NoError(t, err)

	require.NoError(t, storage.Create(context.Background(), "a.html", strings.NewReader("a")))

	content, err := os.ReadFile(filepath.Join(rootDir, "a.html"))
	require.NoError(t, err)
	assert.Equal(t, "a", string(content))
}

func TestCreate_ReaderFailureLeavesNoFile(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	readErr := errors.New("disk on fire")
	err := storage.Create(ctx, "broken.html", io.MultiReader(strings.NewReader("partial"), &failingReader{err: readErr}))
	assert.ErrorIs(t, err, readErr)

	exists, err := storage.Exists(ctx, "broken.html")
	require.NoError(t, err)
	assert.False(t, exists)

	keys, err := storage.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys, "temp files must be cleaned up")
}

func TestCreate_InvalidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	invalidKeys := []string{
		"",
		"/absolute/path",
		"..",
		"../file.txt",
		"../../etc/passwd",
		"batches/../../etc/passwd",
		"../",
		"a/../..",
		".",
	}

	for _, key := range invalidKeys {
		t.Run(key, func(t *testing.T) {
			err := storage.Create(ctx, key, strings.NewReader("data"))
			assert.ErrorIs(t, err, ErrInvalidKey, "key %q should be invalid", key)
		})
	}
}

func TestGet_FileNotFound(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	_, err := storage.Get(context.Background(), "nonexistent.txt")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestCreateGet_RoundTrip(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	key := "report-2017-06-30.html"
	data := `<html>$table_json</html>`

	require.NoError(t, storage.Create(ctx, key, strings.NewReader(data)))

	readCloser, err := storage.Get(ctx, key)
	require.NoError(t, err)
	defer readCloser.Close()

	content, err := io.ReadAll(readCloser)
	require.NoError(t, err)
	assert.Equal(t, data, string(content))
}

func TestExists(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	exists, err := storage.Exists(ctx, "a.txt")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, storage.Create(ctx, "a.txt", strings.NewReader("a")))

	exists, err = storage.Exists(ctx, "a.txt")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, os.Mkdir(storage.Path("dir"), 0755))
	exists, err = storage.Exists(ctx, "dir")
	require.NoError(t, err)
	assert.False(t, exists, "directories are not files")
}

func TestList_SortedRegularFilesOnly(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	for _, key := range []string{"c.log", "a.log", "b.log.gz"} {
		require.NoError(t, storage.Create(ctx, key, strings.NewReader(key)))
	}
	require.NoError(t, os.Mkdir(storage.Path("subdir"), 0755))
	require.NoError(t, os.WriteFile(storage.Path(".tmp-123"), []byte("x"), 0644))

	keys, err := storage.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.log", "b.log.gz", "c.log"}, keys)
}

func TestList_RootDirNotFound(t *testing.T) {
	t.Parallel()

	storage, err := NewFileStorage(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)

	_, err = storage.List(context.Background())
	assert.ErrorIs(t, err, ErrRootDirNotFound)
}

func TestNewFileStorage_EmptyRootDir(t *testing.T) {
	t.Parallel()

	_, err := NewFileStorage("")
	assert.ErrorIs(t, err, ErrInvalidRootDir)
}

type failingReader struct {
	err error
}

func (r *failingReader) Read([]byte) (int, error) {
	return 0, r.err
}

func newTestStorage(t *testing.T) FileStorage {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return storage
}
