package book

import (
	"fmt"
	"strings"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Record holds one contact: a fixed name, an ordered list of phone numbers
// (duplicates allowed) and an optional birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record for the given name.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact's name.
func (r *Record) Name() Name {
	return r.name
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// AddPhone validates value and appends it. Repeated numbers are not
// deduplicated: adding the same value twice produces two entries.
func (r *Record) AddPhone(value string) error {
	p, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to value and reports whether a
// removal occurred.
func (r *Record) RemovePhone(value string) bool {
	for i, p := range r.phones {
		if p.value == value {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return true
		}
	}
	return false
}

// EditPhone replaces the first phone equal to oldValue with newValue,
// preserving its position. The replacement is validated before any entry is
// touched, so a failed edit leaves the list unchanged. Reports whether an
// entry was found and replaced.
func (r *Record) EditPhone(oldValue, newValue string) (bool, error) {
	p, err := NewPhone(newValue)
	if err != nil {
		return false, err
	}
	for i, old := range r.phones {
		if old.value == oldValue {
			r.phones[i] = p
			return true, nil
		}
	}
	return false, nil
}

// FindPhone returns the first phone equal to value.
func (r *Record) FindPhone(value string) (Phone, bool) {
	for _, p := range r.phones {
		if p.value == value {
			return p, true
		}
	}
	return Phone{}, false
}

// SetBirthday parses value as DD.MM.YYYY and stores it, overwriting any
// previously set birthday.
func (r *Record) SetBirthday(value string) error {
	b, err := NewBirthday(value)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// Birthday returns the stored birthday, if any.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// String renders the one-line summary used by the "all" listing.
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.value
	}
	birthday := config.BirthdayAbsent
	if r.birthday != nil {
		birthday = r.birthday.String()
	}
	return fmt.Sprintf(config.FormatRecordLine,
		r.name.value,
		strings.Join(phones, config.PhoneJoinRecord),
		birthday,
	)
}
