package filestore

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/filebox/filebox_api/internal/models"
)

type diskStore struct {
	root string
}

// NewDiskStore serves the flat directory root, creating it if needed.
// An empty root means the current working directory.
func NewDiskStore(root string) (FileStore, error) {
	if root == "" {
		root = "."
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, err
	}

	return &diskStore{root: root}, nil
}

func (d *diskStore) Save(_ context.Context, file *models.File) error {
	defer file.Entry.Close()

	dst, err := os.Create(filepath.Join(d.root, file.Name))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, file.Entry)

	return err
}

func (d *diskStore) Open(_ context.Context, name string) (*models.File, error) {
	path := filepath.Join(d.root, name)

	// Names that resolve outside the root are reported as missing.
	rel, err := filepath.Rel(d.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, ErrFileNotFound
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrFileNotFound
		}

		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, ErrFileNotFound
	}

	return &models.File{
		Name:  name,
		Size:  info.Size(),
		Entry: f,
	}, nil
}

func (d *diskStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		names = append(names, entry.Name())
	}

	return names, nil
}
