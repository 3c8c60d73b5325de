package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// LocalFile reads and replaces one document on disk.
type LocalFile struct {
	path string
	perm os.FileMode
}

// NewLocalFile returns a handle for path. The parent directory is created on
// first write, not here.
func NewLocalFile(path string) *LocalFile {
	return &LocalFile{path: filepath.Clean(path), perm: 0o644}
}

// Path exposes the document location.
func (f *LocalFile) Path() string {
	return f.path
}

// Read returns the whole document.
func (f *LocalFile) Read() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	return data, nil
}

// WriteAtomic replaces the document with data. The bytes go to a temp file in
// the same directory which is synced and renamed over the target, so readers
// see either the old document or the new one.
func (f *LocalFile) WriteAtomic(data []byte) (err error) {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("prepare directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmpName, f.perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}

// Exists reports whether the document is present.
func (f *LocalFile) Exists() bool {
	info, err := os.Stat(f.path)
	return err == nil && !info.IsDir()
}
