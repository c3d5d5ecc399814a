package config

import "io/fs"

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Contacts"
	AppID       = "com.github.tartampluch.go-contacts"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for the address book file and logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating the app data and cache directories.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagFile         = "file"
	FlagDebug        = "debug"
	FlagLang         = "lang"
	FlagOutput       = "output"
	FlagDescFile     = "address book file (.vcf or .db; default ~/.go-contacts/contacts.vcf)"
	FlagDescDebug    = "enable debug logging to stderr"
	FlagDescLang     = "message language (en, uk)"
	FlagDescOutput   = "output path for the generated calendar"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdAll          = "all"
	CmdRemove       = "remove"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdExit         = "exit"
	CmdClose        = "close"
)

// MaxCommandFields caps how many whitespace-separated fields a command line
// is split into. The tail field keeps any remaining text intact.
const MaxCommandFields = 4

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	// PhoneLength is the exact number of decimal digits a phone number holds.
	PhoneLength = 10

	// UpcomingWindowDays bounds the birthday lookahead in whole days.
	UpcomingWindowDays = 7

	// DataDirName is the per-user directory holding the address book file.
	DataDirName = ".go-contacts"

	// DefaultBookFile is the address book file name inside DataDirName.
	DefaultBookFile = "contacts.vcf"

	// DefaultExportFile is where the export command writes unless told
	// otherwise.
	DefaultExportFile = "birthdays.ics"

	DefaultLanguage = "en"

	// UIDSalt feeds the deterministic event UID hash.
	UIDSalt = "go-contacts-v1-"
)

// SupportedLanguages lists the available message languages (ISO 639-1).
var SupportedLanguages = []string{"en", "uk"}

// -----------------------------------------------------------------------------
// Data Formats, Limits & File Extensions
// -----------------------------------------------------------------------------

const (
	// DateFormatBirthday is the user-facing birthday layout (DD.MM.YYYY).
	DateFormatBirthday = "02.01.2006"

	// DateFormatVCard is the BDAY layout used in persisted vCards.
	DateFormatVCard = "20060102"

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"
	ICalDomain      = "gocontacts"

	// File Extensions
	ExtVCF     = ".vcf"
	ExtVCard   = ".vcard"
	ExtSQLite  = ".db"
	ExtSQLite3 = ".sqlite"
	ExtICS     = ".ics"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Contacts//Calendar//EN"
	ICalCalName = "Birthdays"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	// StubVCalendar is the minimal valid iCalendar object used when no
	// record carries a birthday, so the export file is never invalid.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWelcome         = "msg_welcome"
	TKeyGoodbye         = "msg_goodbye"
	TKeyHello           = "msg_hello"
	TKeyContactAdded    = "msg_contact_added"
	TKeyContactUpdated  = "msg_contact_updated"
	TKeyContactRemoved  = "msg_contact_removed"
	TKeyContactNotFound = "msg_contact_not_found"
	TKeyBirthdayAdded   = "msg_birthday_added"
	TKeyNoContacts      = "msg_no_contacts"
	TKeyNoUpcoming      = "msg_no_upcoming"
	TKeyGiveNamePhone   = "msg_give_name_phone"
	TKeyInvalidCommand  = "msg_invalid_command"
	TKeyInvalidFormat   = "msg_invalid_format"
	TKeyErrNameEmpty    = "err_name_empty"
	TKeyErrPhoneDigits  = "err_phone_digits"
	TKeyErrDateFormat   = "err_date_format"
	TKeyEvtSummary      = "event_summary" // Requires Name
)

// -----------------------------------------------------------------------------
// User-Facing Message Defaults (English)
// -----------------------------------------------------------------------------

// The dispatcher resolves messages through the i18n bundle; these defaults
// double as the canonical English strings and the fallback when a key is
// missing from a locale.
const (
	MsgWelcome         = "Welcome to the assistant bot!"
	MsgGoodbye         = "Good bye!"
	MsgHello           = "How can I help you?"
	MsgContactAdded    = "Contact added."
	MsgContactUpdated  = "Contact updated."
	MsgContactRemoved  = "Contact removed."
	MsgContactNotFound = "Contact not found."
	MsgBirthdayAdded   = "Birthday added."
	MsgNoContacts      = "No contacts found."
	MsgNoUpcoming      = "No upcoming birthdays."
	MsgGiveNamePhone   = "Give me name and phone."
	MsgInvalidCommand  = "Invalid command. Supported commands: " +
		CmdAdd + ", " + CmdChange + ", " + CmdPhone + ", " + CmdAll + ", " +
		CmdRemove + ", " + CmdAddBirthday + ", " + CmdShowBirthday + ", " +
		CmdBirthdays + ", " + CmdHello + ", " + CmdExit + ", " + CmdClose
	MsgInvalidFormat = "Invalid command format. Use: add [name] [phone], change [name] [old_phone] [new_phone], phone [name]"
)

// Validation messages surfaced verbatim when a field constructor rejects input.
const (
	MsgNameEmpty   = "Name cannot be empty"
	MsgPhoneDigits = "Phone number must be 10 digits"
	MsgDateFormat  = "Invalid date format. Use DD.MM.YYYY"
)

// Display formats for dispatcher output.
const (
	FormatRecordLine   = "Contact name: %s, phones: %s, birthday: %s"
	FormatShowBirthday = "Birthday: %s"
	FormatGreetingLine = "Name: %s. Cong_date: %s"
	FormatEvtSummary   = "Birthday: %s"
	PhoneJoinRecord    = "; "
	PhoneJoinList      = ", "
	BirthdayAbsent     = "N/A"
)

// PromptMenu is printed before every command read, mirroring the numbered
// menu of the interactive assistant.
const PromptMenu = "Menu:\n" +
	"1- " + CmdAdd + "\n" +
	"2- " + CmdChange + "\n" +
	"3- " + CmdPhone + "\n" +
	"4- " + CmdAll + "\n" +
	"5- " + CmdRemove + "\n" +
	"6- " + CmdAddBirthday + "\n" +
	"7- " + CmdShowBirthday + "\n" +
	"8- " + CmdBirthdays + "\n" +
	"9- " + CmdExit + " or " + CmdClose + "\n" +
	"10- " + CmdHello + "\n" +
	"command: "

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrContactNotFound = "contact not found"
	ErrPhoneNotFound   = "phone not found"
	ErrMalformedCmd    = "malformed command"
	ErrEmptyCommand    = "empty command"
	ErrBookLoad        = "failed to load address book"
	ErrBookSave        = "failed to save address book"
	ErrUnknownBackend  = "unsupported address book file extension"
	ErrVCardDecode     = "failed to decode vCard stream"
	ErrVCardEncode     = "failed to encode vCard stream"
	ErrSQLiteOpen      = "failed to open sqlite database"
	ErrSQLiteSchema    = "failed to initialize sqlite schema"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrHomeDir         = "could not determine user home dir"
	ErrCreateDir       = "could not create app directory"
	ErrAppFailed       = "application failed unexpectedly"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrReadInput       = "failed to read command input"

	MsgLogWarning = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgBookLoaded    = "Address book loaded"
	MsgBookSaved     = "Address book saved"
	MsgBookFresh     = "No address book file found, starting empty"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedRecord = "Skipping invalid persisted record"
	MsgCmdDispatched = "Command dispatched"
	MsgExportDone    = "Calendar export finished"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLoopDone      = "Command loop finished"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyBackend   = "backend"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyName      = "name"
	LogKeyCommand   = "command"
	LogKeyCount     = "count"
	LogKeyDuration  = "duration_ms"
	LogKeySizeBytes = "size_bytes"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompBot      = "bot"
	CompStorage  = "storage"
	CompCalendar = "calendar"
	CompMain     = "main"
	CompI18n     = "i18n"
)

// -----------------------------------------------------------------------------
// Storage Backends
// -----------------------------------------------------------------------------

const (
	BackendVCard  = "vcard"
	BackendSQLite = "sqlite"
)
