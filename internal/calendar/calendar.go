// Package calendar renders the address book's birthdays as an iCalendar
// object, one full-day event per birthday for the previous, current and next
// year so calendar apps show neighbors without a fresh export.
package calendar

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// Generator builds the birthday calendar.
type Generator struct {
	Clock book.Clock

	// FormatSummary injects the localized event title. When nil the
	// English fallback is used.
	FormatSummary func(name string) string
}

// Generate encodes every record with a birthday into a VCALENDAR. An
// address book without birthdays yields a minimal valid empty calendar.
func (g *Generator) Generate(ctx context.Context, b *book.AddressBook) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// Event dates use the local calendar; only the stamp is UTC.
	now := g.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	events := 0
	for _, rec := range b.Records() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		birthday, ok := rec.Birthday()
		if !ok {
			continue
		}
		for _, e := range g.recordEvents(rec.Name().String(), birthday, now) {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
			events++
		}
	}

	if events == 0 {
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompCalendar,
		config.LogKeyCount, events,
		config.LogKeySizeBytes, buf.Len(),
	)
	return buf.Bytes(), nil
}

// recordEvents creates one event per target year, skipping years before the
// person was born.
func (g *Generator) recordEvents(name string, birthday book.Birthday, now time.Time) []*ical.Event {
	birthDate := birthday.Date()
	uidBase := eventUID(name, birthDate)
	loc := now.Location()

	var events []*ical.Event
	for _, y := range []int{now.Year() - 1, now.Year(), now.Year() + 1} {
		if y < birthDate.Year() {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID,
			fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))

		summary := fmt.Sprintf(config.FormatEvtSummary, name)
		if g.FormatSummary != nil {
			summary = g.FormatSummary(name)
		}
		event.Props.SetText(config.PropSummary, summary)

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(time.Date(y, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, loc))
		event.Props.Set(dtStartProp)

		events = append(events, event)
	}
	return events
}

// eventUID derives a stable identifier so re-exports update events instead
// of duplicating them.
func eventUID(name string, birthDate time.Time) string {
	input := fmt.Sprintf(config.FormatHashInput,
		name, birthDate.Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}
