package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/litoraledu/gestordoc/internal/common"
	"github.com/litoraledu/gestordoc/internal/filex"
)

// FileSubstrate stores each key as a file under a data directory. This is
// the durable local analog of the browser's key-value storage.
type FileSubstrate struct {
	dir string
}

// NewFileSubstrate ensures dir exists and returns a substrate rooted there.
func NewFileSubstrate(dir string) (*FileSubstrate, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &FileSubstrate{dir: abs}, nil
}

func (f *FileSubstrate) path(key string) string {
	// Keys are fixed names chosen by the store, not user input.
	return filepath.Join(f.dir, key+".json")
}

func (f *FileSubstrate) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return b, nil
}

func (f *FileSubstrate) Set(ctx context.Context, key string, value []byte) error {
	// Write-then-rename keeps a crash from leaving a half-written blob.
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o660); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		return fmt.Errorf("rename %s: %w", key, err)
	}
	return nil
}
