// Package bot implements the line-oriented command interface around the
// address book: input parsing, command dispatch and the translation of core
// errors into fixed user-facing strings. The core stays free of any of this.
package bot

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"

	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/storage"
)

// Dispatcher-level failures. Validation and not-found errors come from the
// book package; these cover the command line itself.
var (
	ErrMalformed = errors.New(config.ErrMalformedCmd)

	// ErrNamePhoneRequired is the add command's own too-few-arguments
	// failure, kept separate because it has a dedicated reply.
	ErrNamePhoneRequired = fmt.Errorf("%w: name and phone required", ErrMalformed)
)

// errTranslations maps error kinds to message keys, most specific first.
var errTranslations = []struct {
	err error
	key string
}{
	{book.ErrNameEmpty, config.TKeyErrNameEmpty},
	{book.ErrPhoneFormat, config.TKeyErrPhoneDigits},
	{book.ErrDateFormat, config.TKeyErrDateFormat},
	{book.ErrNotFound, config.TKeyContactNotFound},
	{ErrNamePhoneRequired, config.TKeyGiveNamePhone},
	{ErrMalformed, config.TKeyInvalidFormat},
}

// Bot wires the address book, its store and the message catalog into an
// interactive command loop. One command is fully processed before the next
// line is read.
type Bot struct {
	book     *book.AddressBook
	store    storage.Store
	clock    book.Clock
	messages *Messages
	in       io.Reader
	out      io.Writer
}

// New assembles a bot around an already loaded address book.
func New(b *book.AddressBook, store storage.Store, clock book.Clock, messages *Messages, in io.Reader, out io.Writer) *Bot {
	return &Bot{
		book:     b,
		store:    store,
		clock:    clock,
		messages: messages,
		in:       in,
		out:      out,
	}
}

// Parse splits a command line into a lowercased command name and its
// arguments. At most MaxCommandFields fields are produced; the last one
// keeps any remaining text intact, matching the interactive grammar.
func Parse(line string) (string, []string) {
	parts := splitCommand(line)
	if len(parts) == 0 {
		return "", nil
	}
	if len(parts) == 1 {
		return strings.ToLower(parts[0]), nil
	}
	return strings.ToLower(parts[0]), parts[1:]
}

func splitCommand(line string) []string {
	var parts []string
	rest := strings.TrimSpace(line)
	for len(parts) < config.MaxCommandFields-1 {
		i := strings.IndexFunc(rest, unicode.IsSpace)
		if i < 0 {
			break
		}
		parts = append(parts, rest[:i])
		rest = strings.TrimLeftFunc(rest[i:], unicode.IsSpace)
	}
	if rest != "" {
		parts = append(parts, rest)
	}
	return parts
}

// Run drives the interactive loop: print the menu, read one line, dispatch,
// print the reply. It returns once the user exits or input ends, saving the
// book before returning. A failed save is a hard failure.
func (bot *Bot) Run(ctx context.Context) error {
	fmt.Fprintln(bot.out, bot.messages.Get(config.TKeyWelcome))

	scanner := bufio.NewScanner(bot.in)
	for {
		if err := ctx.Err(); err != nil {
			break
		}
		fmt.Fprint(bot.out, config.PromptMenu)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("%s: %w", config.ErrReadInput, err)
			}
			break
		}

		reply, quit := bot.Dispatch(scanner.Text())
		if reply != "" {
			fmt.Fprintln(bot.out, reply)
		}
		if quit {
			break
		}
	}

	slog.Info(config.MsgLoopDone, config.LogKeyComponent, config.CompBot)
	// The shutdown save must still run when the loop exited because the
	// signal context was cancelled.
	return bot.store.Save(context.WithoutCancel(ctx), bot.book)
}

// Dispatch parses one command line, applies it to the book and returns the
// reply text plus whether the loop should stop. Every recoverable failure is
// translated to its fixed user-facing string here; nothing terminates the
// process.
func (bot *Bot) Dispatch(line string) (reply string, quit bool) {
	command, args := Parse(line)
	slog.Debug(config.MsgCmdDispatched,
		config.LogKeyComponent, config.CompBot,
		config.LogKeyCommand, command,
	)

	var err error
	switch command {
	case config.CmdHello:
		reply = bot.messages.Get(config.TKeyHello)
	case config.CmdAdd:
		reply, err = bot.addContact(args)
	case config.CmdChange:
		reply, err = bot.changeContact(args)
	case config.CmdPhone:
		reply, err = bot.showPhones(args)
	case config.CmdAll:
		reply = bot.showAll()
	case config.CmdRemove:
		reply, err = bot.removeContact(args)
	case config.CmdAddBirthday:
		reply, err = bot.addBirthday(args)
	case config.CmdShowBirthday:
		reply, err = bot.showBirthday(args)
	case config.CmdBirthdays:
		reply = bot.upcomingBirthdays()
	case config.CmdExit, config.CmdClose:
		return bot.messages.Get(config.TKeyGoodbye), true
	default:
		reply = bot.messages.Get(config.TKeyInvalidCommand)
	}

	if err != nil {
		return bot.errorMessage(err), false
	}
	return reply, false
}

// errorMessage resolves an operation failure to its user-facing string.
func (bot *Bot) errorMessage(err error) string {
	for _, t := range errTranslations {
		if errors.Is(err, t.err) {
			return bot.messages.Get(t.key)
		}
	}
	return err.Error()
}

// addContact implements "add <name> <phone>...": find-or-create the record,
// then append every given phone. All phones are validated up front so a bad
// one leaves the book untouched.
func (bot *Bot) addContact(args []string) (string, error) {
	if len(args) < 2 {
		return "", ErrNamePhoneRequired
	}
	name, phones := args[0], args[1:]

	for _, p := range phones {
		if _, err := book.NewPhone(p); err != nil {
			return "", err
		}
	}

	rec, ok := bot.book.Find(name)
	if !ok {
		var err error
		rec, err = book.NewRecord(name)
		if err != nil {
			return "", err
		}
		bot.book.AddRecord(rec)
	}
	for _, p := range phones {
		if err := rec.AddPhone(p); err != nil {
			return "", err
		}
	}
	return bot.messages.Get(config.TKeyContactAdded), nil
}

// changeContact implements "change <name> <old_phone> <new_phone>".
func (bot *Bot) changeContact(args []string) (string, error) {
	if len(args) < 3 {
		return "", ErrMalformed
	}
	rec, ok := bot.book.Find(args[0])
	if !ok {
		return "", book.ErrNotFound
	}
	replaced, err := rec.EditPhone(args[1], args[2])
	if err != nil {
		return "", err
	}
	if !replaced {
		return "", book.ErrNotFound
	}
	return bot.messages.Get(config.TKeyContactUpdated), nil
}

// showPhones implements "phone <name>".
func (bot *Bot) showPhones(args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrMalformed
	}
	rec, ok := bot.book.Find(args[0])
	if !ok {
		return "", book.ErrNotFound
	}
	phones := make([]string, 0, len(rec.Phones()))
	for _, p := range rec.Phones() {
		phones = append(phones, p.String())
	}
	return strings.Join(phones, config.PhoneJoinList), nil
}

// showAll implements "all": one summary line per record in insertion order.
func (bot *Bot) showAll() string {
	if bot.book.Len() == 0 {
		return bot.messages.Get(config.TKeyNoContacts)
	}
	lines := make([]string, 0, bot.book.Len())
	for _, rec := range bot.book.Records() {
		lines = append(lines, rec.String())
	}
	return strings.Join(lines, "\n")
}

// removeContact implements "remove <name>".
func (bot *Bot) removeContact(args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrMalformed
	}
	if !bot.book.Delete(args[0]) {
		return "", book.ErrNotFound
	}
	return bot.messages.Get(config.TKeyContactRemoved), nil
}

// addBirthday implements "add-birthday <name> <DD.MM.YYYY>".
func (bot *Bot) addBirthday(args []string) (string, error) {
	if len(args) < 2 {
		return "", ErrMalformed
	}
	rec, ok := bot.book.Find(args[0])
	if !ok {
		return "", book.ErrNotFound
	}
	if err := rec.SetBirthday(args[1]); err != nil {
		return "", err
	}
	return bot.messages.Get(config.TKeyBirthdayAdded), nil
}

// showBirthday implements "show-birthday <name>". A contact without a
// birthday reports the same not-found reply as a missing contact.
func (bot *Bot) showBirthday(args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrMalformed
	}
	rec, ok := bot.book.Find(args[0])
	if !ok {
		return "", book.ErrNotFound
	}
	bday, ok := rec.Birthday()
	if !ok {
		return "", book.ErrNotFound
	}
	return fmt.Sprintf(config.FormatShowBirthday, bday.String()), nil
}

// upcomingBirthdays implements "birthdays" using the bot's clock as the
// reference instant.
func (bot *Bot) upcomingBirthdays() string {
	greetings := bot.book.UpcomingBirthdays(bot.clock.Now())
	if len(greetings) == 0 {
		return bot.messages.Get(config.TKeyNoUpcoming)
	}
	lines := make([]string, 0, len(greetings))
	for _, g := range greetings {
		lines = append(lines, fmt.Sprintf(config.FormatGreetingLine,
			g.Name, g.CongratulationDate.Format(config.DateFormatBirthday)))
	}
	return strings.Join(lines, "\n")
}
