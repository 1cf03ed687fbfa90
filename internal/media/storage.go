package media

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FileStore is the file sink the admin endpoints write through: it accepts a
// relative name and bytes and returns a public URL.
type FileStore interface {
	Save(relPath string, r io.Reader) (string, error)
}

// DiskStore writes under a local uploads directory and builds URLs from a
// configured base, mirroring how the pages are served as static files.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) *DiskStore {
	return &DiskStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *DiskStore) Save(relPath string, r io.Reader) (string, error) {
	relPath = path.Clean(strings.ReplaceAll(relPath, "\\", "/"))
	if relPath == "." || strings.HasPrefix(relPath, "..") {
		return "", fmt.Errorf("invalid upload path %q", relPath)
	}

	dst := filepath.Join(s.dir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return s.baseURL + "/" + relPath, nil
}
