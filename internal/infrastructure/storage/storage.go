package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Store persists uploaded assets (photos, documents, QR images) and returns
// a URL the UI can serve.
type Store interface {
	Save(name string, r io.Reader) (string, error)
}

// New selects a backend by the STORAGE_BACKEND flag. Only "local" is
// implemented; anything else fails at startup instead of at first upload.
func New(backend, dir, baseURL string) (Store, error) {
	switch backend {
	case "local":
		return NewLocal(dir, baseURL)
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", backend)
	}
}

// Local writes files under a public directory on disk.
type Local struct {
	dir     string
	baseURL string
}

func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (l *Local) Save(name string, r io.Reader) (string, error) {
	name = sanitize(name)
	dst, err := os.Create(filepath.Join(l.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", err
	}
	return l.baseURL + "/uploads/" + name, nil
}

// sanitize strips any path components so uploads cannot escape the directory.
func sanitize(name string) string {
	name = path.Base(filepath.ToSlash(name))
	if name == "." || name == "/" || name == "" {
		name = "file"
	}
	return strings.ReplaceAll(name, " ", "_")
}
