// Package localstore mirrors the syncable snapshot to a durable local blob
// under a fixed storage name. Each write fully overwrites the blob; the read
// path runs once at process start.
package localstore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const storageName = "finance-storage.json"

// Blob is an opaque key-value blob store with a single fixed key.
type Blob interface {
	// Load returns the stored blob, or ok=false when nothing has been
	// written yet.
	Load() ([]byte, bool, error)
	Save(data []byte) error
}

type File struct {
	path string
}

func NewFile(dir string) *File {
	return &File{path: filepath.Join(dir, storageName)}
}

func (f *File) Load() ([]byte, bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Save writes the blob through a temp file and a rename, so a crash mid-write
// leaves the previous blob intact.
func (f *File) Save(data []byte) error {
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
