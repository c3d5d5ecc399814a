package bot

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-contacts/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// defaultMessages holds the canonical English strings, used when a key is
// missing from the active locale.
var defaultMessages = map[string]string{
	config.TKeyWelcome:         config.MsgWelcome,
	config.TKeyGoodbye:         config.MsgGoodbye,
	config.TKeyHello:           config.MsgHello,
	config.TKeyContactAdded:    config.MsgContactAdded,
	config.TKeyContactUpdated:  config.MsgContactUpdated,
	config.TKeyContactRemoved:  config.MsgContactRemoved,
	config.TKeyContactNotFound: config.MsgContactNotFound,
	config.TKeyBirthdayAdded:   config.MsgBirthdayAdded,
	config.TKeyNoContacts:      config.MsgNoContacts,
	config.TKeyNoUpcoming:      config.MsgNoUpcoming,
	config.TKeyGiveNamePhone:   config.MsgGiveNamePhone,
	config.TKeyInvalidCommand:  config.MsgInvalidCommand,
	config.TKeyInvalidFormat:   config.MsgInvalidFormat,
	config.TKeyErrNameEmpty:    config.MsgNameEmpty,
	config.TKeyErrPhoneDigits:  config.MsgPhoneDigits,
	config.TKeyErrDateFormat:   config.MsgDateFormat,
}

// Messages resolves user-facing strings through the embedded locales.
type Messages struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
}

// NewMessages loads the embedded locale files and returns a resolver for
// the given language, falling back to English.
func NewMessages(lang string) *Messages {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyFile, name,
		)
	}

	if lang == "" {
		lang = config.DefaultLanguage
	}
	return &Messages{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, lang, config.DefaultLanguage),
	}
}

// Get translates a key, falling back to the canonical English string.
func (m *Messages) Get(key string) string {
	msg, err := m.localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err == nil {
		return msg
	}
	slog.Debug(config.MsgTransMissing,
		config.LogKeyComponent, config.CompI18n,
		config.LogKeyKey, key,
		config.LogKeyError, err,
	)
	if fallback, ok := defaultMessages[key]; ok {
		return fallback
	}
	return key
}

// EventSummary renders the calendar event title for a contact.
func (m *Messages) EventSummary(name string) string {
	msg, err := m.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    config.TKeyEvtSummary,
		TemplateData: map[string]string{"Name": name},
	})
	if err != nil {
		return fmt.Sprintf(config.FormatEvtSummary, name)
	}
	return msg
}
