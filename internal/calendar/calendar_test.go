package calendar_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/calendar"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

func buildBook(t *testing.T, birthday string) *book.AddressBook {
	t.Helper()
	b := book.NewAddressBook()
	rec, err := book.NewRecord("John Doe")
	require.NoError(t, err)
	if birthday != "" {
		require.NoError(t, rec.SetBirthday(birthday))
	}
	b.AddRecord(rec)
	return b
}

func TestGenerate_EventsPerYear(t *testing.T) {
	gen := &calendar.Generator{
		Clock: fixedClock{t: time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)},
	}

	data, err := gen.Generate(context.Background(), buildBook(t, "15.06.1990"))
	require.NoError(t, err)

	ics := string(data)
	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "SUMMARY:Birthday: John Doe")
	// Previous, current and next year.
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20240615")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20250615")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20260615")
}

func TestGenerate_SkipsYearsBeforeBirth(t *testing.T) {
	// Born next year relative to "now": only the next-year event exists.
	gen := &calendar.Generator{
		Clock: fixedClock{t: time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)},
	}

	data, err := gen.Generate(context.Background(), buildBook(t, "01.01.2026"))
	require.NoError(t, err)

	ics := string(data)
	assert.NotContains(t, ics, "DTSTART;VALUE=DATE:20240101")
	assert.NotContains(t, ics, "DTSTART;VALUE=DATE:20250101")
	assert.Contains(t, ics, "DTSTART;VALUE=DATE:20260101")
}

func TestGenerate_EmptyBookYieldsStub(t *testing.T) {
	gen := &calendar.Generator{Clock: fixedClock{t: time.Now()}}

	data, err := gen.Generate(context.Background(), buildBook(t, ""))
	require.NoError(t, err)
	assert.Equal(t,
		"BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//Go Contacts//Calendar//EN\r\nEND:VCALENDAR\r\n",
		string(data), "no birthdays still produces a valid calendar")
}

func TestGenerate_StableUIDsAndLocalizedSummary(t *testing.T) {
	clock := fixedClock{t: time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)}
	b := buildBook(t, "15.06.1990")

	gen := &calendar.Generator{
		Clock:         clock,
		FormatSummary: func(name string) string { return "Fête: " + name },
	}

	first, err := gen.Generate(context.Background(), b)
	require.NoError(t, err)
	second, err := gen.Generate(context.Background(), b)
	require.NoError(t, err)

	assert.Contains(t, string(first), "SUMMARY:Fête: John Doe")

	uid := func(data []byte) string {
		for _, line := range strings.Split(string(data), "\r\n") {
			if strings.HasPrefix(line, "UID:") {
				return line
			}
		}
		return ""
	}
	require.NotEmpty(t, uid(first))
	assert.Equal(t, uid(first), uid(second), "re-exports must reuse event UIDs")
}
