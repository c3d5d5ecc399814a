package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

//go:embed schema.sql
var schema string

// SQLiteStore persists the book in a sqlite database. Insertion order is
// kept in an explicit position column so iteration order survives reloads.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) the database at path and ensures the
// schema exists.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSQLiteOpen, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", config.ErrSQLiteSchema, err)
	}
	return &SQLiteStore{db: db, path: path}, nil
}

// Load rebuilds the book from the contacts and phones tables. Values pass
// through the book constructors so a tampered database cannot break the
// invariants; invalid rows are skipped with a warning.
func (s *SQLiteStore) Load(ctx context.Context) (*book.AddressBook, error) {
	log := slog.With(
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyBackend, config.BackendSQLite,
		config.LogKeyFile, s.path,
	)

	rows, err := s.db.QueryContext(ctx,
		"SELECT name, birthday FROM contacts ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrBookLoad, err)
	}
	defer func() { _ = rows.Close() }()

	b := book.NewAddressBook()
	for rows.Next() {
		var name string
		var birthday sql.NullString
		if err := rows.Scan(&name, &birthday); err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrBookLoad, err)
		}

		rec, err := s.loadRecord(ctx, name, birthday)
		if err != nil {
			log.Warn(config.MsgSkippedRecord,
				config.LogKeyName, name,
				config.LogKeyError, err,
			)
			continue
		}
		b.AddRecord(rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrBookLoad, err)
	}

	log.Info(config.MsgBookLoaded, config.LogKeyCount, b.Len())
	return b, nil
}

func (s *SQLiteStore) loadRecord(ctx context.Context, name string, birthday sql.NullString) (*book.Record, error) {
	rec, err := book.NewRecord(name)
	if err != nil {
		return nil, err
	}
	if birthday.Valid {
		if err := rec.SetBirthday(birthday.String); err != nil {
			return nil, err
		}
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT value FROM phones WHERE contact = ? ORDER BY position", name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrBookLoad, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrBookLoad, err)
		}
		if err := rec.AddPhone(value); err != nil {
			return nil, err
		}
	}
	return rec, rows.Err()
}

// Save replaces the stored book with the given one inside a transaction.
func (s *SQLiteStore) Save(ctx context.Context, b *book.AddressBook) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrBookSave, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{"DELETE FROM phones", "DELETE FROM contacts"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", config.ErrBookSave, err)
		}
	}

	for pos, rec := range b.Records() {
		var birthday sql.NullString
		if bday, ok := rec.Birthday(); ok {
			birthday = sql.NullString{String: bday.String(), Valid: true}
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO contacts (name, birthday, position) VALUES (?, ?, ?)",
			rec.Name().String(), birthday, pos,
		); err != nil {
			return fmt.Errorf("%s: %w", config.ErrBookSave, err)
		}

		for i, p := range rec.Phones() {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO phones (contact, position, value) VALUES (?, ?, ?)",
				rec.Name().String(), i, p.String(),
			); err != nil {
				return fmt.Errorf("%s: %w", config.ErrBookSave, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrBookSave, err)
	}

	slog.Info(config.MsgBookSaved,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyBackend, config.BackendSQLite,
		config.LogKeyFile, s.path,
		config.LogKeyCount, b.Len(),
	)
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
