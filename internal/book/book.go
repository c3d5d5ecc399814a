package book

import (
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

// AddressBook maps contact names to records. It preserves insertion order
// for iteration and keeps the key equal to the record's name text, so
// callers mutate it only through the operations below.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook returns an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{
		records: make(map[string]*Record),
	}
}

// AddRecord inserts rec keyed by its name, overwriting any existing entry.
// An overwritten entry keeps its original position in iteration order.
func (b *AddressBook) AddRecord(rec *Record) {
	key := rec.name.value
	if _, exists := b.records[key]; !exists {
		b.order = append(b.order, key)
	}
	b.records[key] = rec
}

// Find returns the record stored under the exact name text.
func (b *AddressBook) Find(name string) (*Record, bool) {
	rec, ok := b.records[name]
	return rec, ok
}

// Delete removes the entry for name and reports whether it was present.
func (b *AddressBook) Delete(name string) bool {
	if _, ok := b.records[name]; !ok {
		return false
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.records[key])
	}
	return out
}

// Len returns the number of stored records.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Greeting pairs a contact with the date their birthday greeting should be
// sent. The date is the birthday's occurrence shifted off weekends onto the
// following Monday.
type Greeting struct {
	Name               string
	CongratulationDate time.Time
}

// UpcomingBirthdays returns a greeting for every record whose birthday
// occurs within the next seven whole days relative to now.
//
// The occurrence is the birthday's day and month placed in now's year, at
// midnight in now's location. An occurrence already behind the reference
// instant (including its time of day, so a birthday earlier today counts as
// passed) rolls over to next year. Saturday occurrences shift the greeting
// forward two days and Sunday occurrences one day; the occurrence itself
// decides inclusion in the window, not the shifted date. Results follow the
// book's insertion order.
func (b *AddressBook) UpcomingBirthdays(now time.Time) []Greeting {
	loc := now.Location()
	var out []Greeting

	for _, rec := range b.Records() {
		birthday, ok := rec.Birthday()
		if !ok {
			continue
		}
		date := birthday.Date()

		occurrence := time.Date(now.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
		if occurrence.Before(now) {
			occurrence = time.Date(now.Year()+1, date.Month(), date.Day(), 0, 0, 0, 0, loc)
		}

		days := int(occurrence.Sub(now) / (24 * time.Hour))
		if days > config.UpcomingWindowDays {
			continue
		}

		congratulation := occurrence
		switch occurrence.Weekday() {
		case time.Saturday:
			congratulation = occurrence.AddDate(0, 0, 2)
		case time.Sunday:
			congratulation = occurrence.AddDate(0, 0, 1)
		}

		out = append(out, Greeting{
			Name:               rec.Name().String(),
			CongratulationDate: congratulation,
		})
	}
	return out
}
