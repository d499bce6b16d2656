package storage

import (
	"os"
	"path/filepath"
)

// DiskStore reads and writes program files directly on the host
// filesystem. The console REPL uses it; the owner argument is ignored
// since the operator owns the whole process.
type DiskStore struct {
	// Dir, when non-empty, is prepended to relative program names.
	Dir string
}

// NewDiskStore creates a disk-backed store rooted at dir ("" = cwd).
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{Dir: dir}
}

func (s *DiskStore) path(name string) string {
	if s.Dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.Dir, name)
}

// ReadFile returns the contents of the named program file.
func (s *DiskStore) ReadFile(_, name string) (string, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteFile writes the program file, creating parent directories as
// needed.
func (s *DiskStore) WriteFile(_, name, content string) error {
	path := s.path(name)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0644)
}
