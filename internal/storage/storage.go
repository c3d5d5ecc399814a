// Package storage persists the address book between runs. The backend is
// chosen by file extension: vCard files for the default human-readable form,
// sqlite for callers that prefer a database file.
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// Store loads and saves a complete address book. Load returns a fresh empty
// book when no persisted form exists yet.
type Store interface {
	Load(ctx context.Context) (*book.AddressBook, error)
	Save(ctx context.Context, b *book.AddressBook) error
	Close() error
}

// Open selects a backend for path based on its extension.
func Open(path string) (Store, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case config.ExtVCF, config.ExtVCard:
		return NewVCardStore(path), nil
	case config.ExtSQLite, config.ExtSQLite3:
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrUnknownBackend, path)
	}
}
