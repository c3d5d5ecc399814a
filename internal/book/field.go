package book

import (
	"errors"
	"fmt"
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Field validation failures all wrap ErrValidation so callers can classify
// them with errors.Is without losing the specific cause.
var (
	ErrValidation = errors.New("validation failed")

	ErrNameEmpty   = fmt.Errorf("%w: name cannot be empty", ErrValidation)
	ErrPhoneFormat = fmt.Errorf("%w: phone number must be %d digits", ErrValidation, config.PhoneLength)
	ErrDateFormat  = fmt.Errorf("%w: birthday must be a valid DD.MM.YYYY date", ErrValidation)

	// ErrNotFound reports a lookup for a contact absent from the book.
	ErrNotFound = errors.New(config.ErrContactNotFound)
)

// Name is a contact's display name. Immutable once constructed.
type Name struct {
	value string
}

// NewName validates value and returns a Name. The only constraint is that
// the text is non-empty; lookups are exact-match on whatever is stored.
func NewName(value string) (Name, error) {
	if value == "" {
		return Name{}, ErrNameEmpty
	}
	return Name{value: value}, nil
}

func (n Name) String() string {
	return n.value
}

// Phone is a validated phone number: exactly ten decimal digits.
// Immutable once constructed; edits replace the value.
type Phone struct {
	value string
}

// NewPhone validates value and returns a Phone.
func NewPhone(value string) (Phone, error) {
	if len(value) != config.PhoneLength {
		return Phone{}, ErrPhoneFormat
	}
	for _, c := range value {
		if c < '0' || c > '9' {
			return Phone{}, ErrPhoneFormat
		}
	}
	return Phone{value: value}, nil
}

func (p Phone) String() string {
	return p.value
}

// Birthday is a calendar date parsed from the DD.MM.YYYY layout.
type Birthday struct {
	date time.Time
}

// NewBirthday parses value as DD.MM.YYYY. Impossible calendar dates
// (day 31 in April, Feb 29 outside leap years) are rejected by time.Parse.
func NewBirthday(value string) (Birthday, error) {
	t, err := time.Parse(config.DateFormatBirthday, value)
	if err != nil {
		return Birthday{}, ErrDateFormat
	}
	return Birthday{date: t}, nil
}

// Date returns the parsed calendar date at midnight UTC.
func (b Birthday) Date() time.Time {
	return b.date
}

// String formats the date back to its DD.MM.YYYY representation.
func (b Birthday) String() string {
	return b.date.Format(config.DateFormatBirthday)
}
