package media_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avayezaryab/backend/internal/media"
)

func TestDiskStoreSave(t *testing.T) {
	dir := t.TempDir()
	store := media.NewDiskStore(dir, "/uploads")

	url, err := store.Save("videos/clip.mp4", strings.NewReader("payload"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/videos/clip.mp4", url)

	written, err := os.ReadFile(filepath.Join(dir, "videos", "clip.mp4"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(written))
}

func TestDiskStoreTrimsBaseURL(t *testing.T) {
	store := media.NewDiskStore(t.TempDir(), "/uploads/")

	url, err := store.Save("logo.png", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/logo.png", url)
}

func TestDiskStoreRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	store := media.NewDiskStore(dir, "/uploads")

	for _, p := range []string{"../escape.txt", "a/../../escape.txt", ".", "..\\escape.txt"} {
		_, err := store.Save(p, strings.NewReader("x"))
		assert.Error(t, err, "path %q must be rejected", p)
	}

	// Nothing may have been written outside the store directory.
	_, err := os.Stat(filepath.Join(dir, "..", "escape.txt"))
	assert.True(t, os.IsNotExist(err))
}
