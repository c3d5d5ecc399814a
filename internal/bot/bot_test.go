package bot_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/bot"
	"github.com/tartampluch/go-contacts/internal/config"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockStore records save calls so the loop's shutdown behavior is checkable.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Load(ctx context.Context) (*book.AddressBook, error) {
	args := m.Called(ctx)
	if b := args.Get(0); b != nil {
		return b.(*book.AddressBook), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) Save(ctx context.Context, b *book.AddressBook) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockClock controls the reference instant for the birthday window.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// Tuesday June 10th 2025, 10:00 local.
var fixedNow = time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

// -----------------------------------------------------------------------------
// Test Cases
// -----------------------------------------------------------------------------

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		command string
		args    []string
	}{
		{"plain", "add John 1234567890", "add", []string{"John", "1234567890"}},
		{"lowercases command", "ADD John 1234567890", "add", []string{"John", "1234567890"}},
		{"tail keeps remaining text", "add John 111 222 333", "add", []string{"John", "111", "222 333"}},
		{"surrounding whitespace", "  hello  ", "hello", nil},
		{"empty line", "", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command, args := bot.Parse(tt.line)
			assert.Equal(t, tt.command, command)
			assert.Equal(t, tt.args, args)
		})
	}
}

// TestDispatch_Script walks one session through every command, checking
// replies and that failed operations leave no partial state behind.
func TestDispatch_Script(t *testing.T) {
	b := bot.New(book.NewAddressBook(), &MockStore{}, MockClock{CurrentTime: fixedNow},
		bot.NewMessages("en"), strings.NewReader(""), &strings.Builder{})

	steps := []struct {
		line  string
		reply string
		desc  string
	}{
		{"hello", "How can I help you?", ""},
		{"all", "No contacts found.", "empty book"},
		{"birthdays", "No upcoming birthdays.", "empty book"},
		{"add John 1234567890", "Contact added.", ""},
		{"add John 0987654321", "Contact added.", "existing contact gains a phone"},
		{"phone John", "1234567890, 0987654321", "insertion order"},
		{"add Jane 123", "Phone number must be 10 digits", "invalid phone"},
		{"phone Jane", "Contact not found.", "failed add must not create the contact"},
		{"add Jane", "Give me name and phone.", "missing phone argument"},
		{"change John 1234567890 1111111111", "Contact updated.", ""},
		{"phone John", "1111111111, 0987654321", "position preserved"},
		{"change John 9999999999 2222222222", "Contact not found.", "old phone absent"},
		{"change John", "Invalid command format. Use: add [name] [phone], change [name] [old_phone] [new_phone], phone [name]", "too few arguments"},
		{"add-birthday John 12.06.1990", "Birthday added.", ""},
		{"add-birthday John 31.02.1990", "Invalid date format. Use DD.MM.YYYY", "impossible date"},
		{"show-birthday John", "Birthday: 12.06.1990", "failed set kept the old value"},
		{"add Jane 5555555555", "Contact added.", ""},
		{"show-birthday Jane", "Contact not found.", "contact without birthday"},
		{"all", "Contact name: John, phones: 1111111111; 0987654321, birthday: 12.06.1990\n" +
			"Contact name: Jane, phones: 5555555555, birthday: N/A", ""},
		{"birthdays", "Name: John. Cong_date: 12.06.2025", "Thursday, no shift"},
		{"remove Jane", "Contact removed.", ""},
		{"remove Jane", "Contact not found.", "second remove"},
		{"frobnicate", config.MsgInvalidCommand, "unknown command"},
	}

	for _, step := range steps {
		reply, quit := b.Dispatch(step.line)
		assert.Equal(t, step.reply, reply, "%q: %s", step.line, step.desc)
		assert.False(t, quit)
	}

	reply, quit := b.Dispatch("exit")
	assert.Equal(t, "Good bye!", reply)
	assert.True(t, quit)

	reply, quit = b.Dispatch("close")
	assert.Equal(t, "Good bye!", reply)
	assert.True(t, quit, "close is an alias for exit")
}

func TestDispatch_WeekendShift(t *testing.T) {
	ab := book.NewAddressBook()
	b := bot.New(ab, &MockStore{}, MockClock{CurrentTime: fixedNow},
		bot.NewMessages("en"), strings.NewReader(""), &strings.Builder{})

	for _, line := range []string{
		"add Sat 1111111111",
		"add-birthday Sat 14.06.1990",
		"add Sun 2222222222",
		"add-birthday Sun 15.06.1990",
	} {
		reply, _ := b.Dispatch(line)
		require.NotEqual(t, config.MsgInvalidCommand, reply)
	}

	reply, _ := b.Dispatch("birthdays")
	assert.Equal(t,
		"Name: Sat. Cong_date: 16.06.2025\nName: Sun. Cong_date: 16.06.2025",
		reply, "weekend occurrences greet on the following Monday")
}

func TestRun_SavesOnExit(t *testing.T) {
	ab := book.NewAddressBook()
	store := &MockStore{}
	store.On("Save", mock.Anything, ab).Return(nil).Once()

	in := strings.NewReader("add John 1234567890\nexit\n")
	var out strings.Builder

	b := bot.New(ab, store, MockClock{CurrentTime: fixedNow},
		bot.NewMessages("en"), in, &out)
	require.NoError(t, b.Run(context.Background()))

	store.AssertExpectations(t)
	assert.Contains(t, out.String(), "Welcome to the assistant bot!")
	assert.Contains(t, out.String(), "Contact added.")
	assert.Contains(t, out.String(), "Good bye!")

	_, ok := ab.Find("John")
	assert.True(t, ok, "the mutation must land in the shared book")
}

func TestRun_SavesOnEndOfInput(t *testing.T) {
	ab := book.NewAddressBook()
	store := &MockStore{}
	store.On("Save", mock.Anything, ab).Return(nil).Once()

	b := bot.New(ab, store, MockClock{CurrentTime: fixedNow},
		bot.NewMessages("en"), strings.NewReader("hello\n"), &strings.Builder{})
	require.NoError(t, b.Run(context.Background()))

	store.AssertExpectations(t)
}

func TestRun_SavesAfterInterrupt(t *testing.T) {
	ab := book.NewAddressBook()
	store := &MockStore{}
	store.On("Save", mock.Anything, ab).Run(func(args mock.Arguments) {
		ctx := args.Get(0).(context.Context)
		assert.NoError(t, ctx.Err(), "the shutdown save must not inherit the cancellation")
	}).Return(nil).Once()

	// The loop exits immediately on a cancelled signal context, but the
	// book still gets persisted.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := bot.New(ab, store, MockClock{CurrentTime: fixedNow},
		bot.NewMessages("en"), strings.NewReader("hello\n"), &strings.Builder{})
	require.NoError(t, b.Run(ctx))

	store.AssertExpectations(t)
}

func TestMessages_Localization(t *testing.T) {
	en := bot.NewMessages("en")
	assert.Equal(t, "How can I help you?", en.Get(config.TKeyHello))
	assert.Equal(t, "Birthday: John", en.EventSummary("John"))

	uk := bot.NewMessages("uk")
	assert.Equal(t, "Чим можу допомогти?", uk.Get(config.TKeyHello))
	assert.Equal(t, "День народження: John", uk.EventSummary("John"))

	// Unknown languages fall back to English.
	xx := bot.NewMessages("xx")
	assert.Equal(t, "How can I help you?", xx.Get(config.TKeyHello))
}
