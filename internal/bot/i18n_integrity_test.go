package bot_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/config"
)

// TestI18nIntegrity ensures every translation key defined in config.go
// exists in every locale JSON file, so no language silently falls back.
func TestI18nIntegrity(t *testing.T) {
	keysToCheck := []string{
		config.TKeyWelcome,
		config.TKeyGoodbye,
		config.TKeyHello,
		config.TKeyContactAdded,
		config.TKeyContactUpdated,
		config.TKeyContactRemoved,
		config.TKeyContactNotFound,
		config.TKeyBirthdayAdded,
		config.TKeyNoContacts,
		config.TKeyNoUpcoming,
		config.TKeyGiveNamePhone,
		config.TKeyInvalidCommand,
		config.TKeyInvalidFormat,
		config.TKeyErrNameEmpty,
		config.TKeyErrPhoneDigits,
		config.TKeyErrDateFormat,
		config.TKeyEvtSummary,
	}

	for _, lang := range config.SupportedLanguages {
		lang := lang
		t.Run(lang, func(t *testing.T) {
			content, err := os.ReadFile(filepath.Join("locales", "active."+lang+".json"))
			require.NoError(t, err, "Must load locale file for %s", lang)

			var jsonMap map[string]interface{}
			require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")

			for _, key := range keysToCheck {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in active.%s.json", key, lang)
			}

			for jsonKey := range jsonMap {
				found := false
				for _, key := range keysToCheck {
					if key == jsonKey {
						found = true
						break
					}
				}
				if !found {
					t.Logf("Warning: Key '%s' exists in JSON but is not referenced from config.go", jsonKey)
				}
			}
		})
	}
}
