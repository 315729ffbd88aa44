package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Blob is the local device persistence collaborator: a get/set byte store
// under a fixed name. The session store treats it as opaque; it is not
// queryable.
type Blob interface {
	Load() (data []byte, ok bool, err error)
	Save(data []byte) error
}

// FileBlob persists the blob as a single file under the data directory.
type FileBlob struct {
	path string
}

// NewFileBlob creates a FileBlob at dir/name.
func NewFileBlob(dir, name string) *FileBlob {
	return &FileBlob{path: filepath.Join(dir, name)}
}

func (b *FileBlob) Load() ([]byte, bool, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading session blob: %w", err)
	}
	return data, true, nil
}

func (b *FileBlob) Save(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing session blob: %w", err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		return fmt.Errorf("replacing session blob: %w", err)
	}
	return nil
}

// MemBlob is an in-memory Blob for tests.
type MemBlob struct {
	data []byte
	set  bool
}

func (b *MemBlob) Load() ([]byte, bool, error) {
	return b.data, b.set, nil
}

func (b *MemBlob) Save(data []byte) error {
	b.data = append([]byte(nil), data...)
	b.set = true
	return nil
}
