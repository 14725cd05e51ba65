package audio

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MediaPath is the URL prefix the local backend is served under.
const MediaPath = "/media"

type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(dir, publicBaseURL string) *LocalStorage {
	return &LocalStorage{dir: dir, baseURL: strings.TrimRight(publicBaseURL, "/")}
}

func (s *LocalStorage) Dir() string {
	return s.dir
}

func (s *LocalStorage) Put(_ context.Context, key, _ string, body io.Reader, _ int64) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	path := filepath.Join(s.dir, clean)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", err
	}

	return s.baseURL + MediaPath + "/" + filepath.ToSlash(clean), nil
}
