// Package filestore keeps uploaded files in a single flat namespace and
// serves them back by name. Two backends exist: a local directory and an
// s3-compatible bucket.
package filestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/filebox/filebox_api/internal/config"
	"github.com/filebox/filebox_api/internal/models"
)

// ErrFileNotFound is returned by Open when no stored file carries the
// requested name. Names resolving outside the store are reported the same
// way.
var ErrFileNotFound = errors.New("file not found")

type FileStore interface {
	// Save stores the file under file.Name, replacing any previous file of
	// that name. It consumes and closes file.Entry.
	Save(ctx context.Context, file *models.File) error
	// Open returns the named file for reading. The caller closes Entry.
	Open(ctx context.Context, name string) (*models.File, error)
	// List returns the names of all stored files.
	List(ctx context.Context) ([]string, error)
}

// New builds the backend selected by cfg.Store.Backend.
func New(cfg config.Config) (FileStore, error) {
	switch cfg.Store.Backend {
	case "disk":
		return NewDiskStore(cfg.Store.Root)
	case "s3":
		return NewMinioStore(cfg)
	default:
		return nil, fmt.Errorf("unknown filestore backend %q", cfg.Store.Backend)
	}
}
