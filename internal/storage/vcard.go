package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// VCardStore persists the book as a vCard stream: FN carries the name, TEL
// entries the phones in order, BDAY the birthday.
type VCardStore struct {
	path string
}

// NewVCardStore creates a store backed by the vCard file at path.
func NewVCardStore(path string) *VCardStore {
	return &VCardStore{path: path}
}

// Load reads the vCard file and rebuilds the book. Every value passes back
// through the book constructors, so invariants hold even for a hand-edited
// file; cards that fail validation are skipped with a warning. A missing
// file yields an empty book.
func (s *VCardStore) Load(ctx context.Context) (*book.AddressBook, error) {
	log := slog.With(
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyBackend, config.BackendVCard,
		config.LogKeyFile, s.path,
	)

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info(config.MsgBookFresh)
		return book.NewAddressBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrBookLoad, err)
	}
	defer func() { _ = f.Close() }()

	b := book.NewAddressBook()
	decoder := vcard.NewDecoder(f)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Salvage the rest of the stream: the decoder resumes at the
			// next card boundary.
			log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
			continue
		}

		rec, err := recordFromCard(card)
		if err != nil {
			log.Warn(config.MsgSkippedRecord, config.LogKeyError, err)
			continue
		}
		b.AddRecord(rec)
	}

	log.Info(config.MsgBookLoaded, config.LogKeyCount, b.Len())
	return b, nil
}

// Save writes the whole book to a temporary file and renames it into place,
// so a failed or interrupted save leaves the previous contents intact.
func (s *VCardStore) Save(ctx context.Context, b *book.AddressBook) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrBookSave, err)
	}

	encoder := vcard.NewEncoder(f)
	for _, rec := range b.Records() {
		if err := ctx.Err(); err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
			return err
		}
		if err := encoder.Encode(cardFromRecord(rec)); err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
			return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%s: %w", config.ErrBookSave, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%s: %w", config.ErrBookSave, err)
	}

	slog.Info(config.MsgBookSaved,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyBackend, config.BackendVCard,
		config.LogKeyFile, s.path,
		config.LogKeyCount, b.Len(),
	)
	return nil
}

// Close is a no-op; the file is only held open during Load and Save.
func (s *VCardStore) Close() error {
	return nil
}

func recordFromCard(card vcard.Card) (*book.Record, error) {
	rec, err := book.NewRecord(card.Value(vcard.FieldFormattedName))
	if err != nil {
		return nil, err
	}

	for _, tel := range card.Values(vcard.FieldTelephone) {
		if err := rec.AddPhone(tel); err != nil {
			return nil, err
		}
	}

	if bday := card.Value(vcard.FieldBirthday); bday != "" {
		t, err := time.Parse(config.DateFormatVCard, bday)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrVCardDecode, err)
		}
		if err := rec.SetBirthday(t.Format(config.DateFormatBirthday)); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

func cardFromRecord(rec *book.Record) vcard.Card {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldFormattedName, rec.Name().String())
	for _, p := range rec.Phones() {
		card.AddValue(vcard.FieldTelephone, p.String())
	}
	if bday, ok := rec.Birthday(); ok {
		card.SetValue(vcard.FieldBirthday, bday.Date().Format(config.DateFormatVCard))
	}
	vcard.ToV4(card)
	return card
}
