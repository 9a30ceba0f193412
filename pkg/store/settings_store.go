package store

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/plursight/daybreak/pkg/models"
)

// SettingsKey is the preferences slot holding the JSON settings blob.
const SettingsKey = "daybreak.settings.v1"

// SettingsStore persists user settings as a single JSON blob in a
// second Prefs slot, alongside the alarm collection.
type SettingsStore struct {
	prefs Prefs
}

func NewSettingsStore(prefs Prefs) *SettingsStore {
	return &SettingsStore{prefs: prefs}
}

// Load returns the persisted settings, falling back to defaults when
// the blob is absent or corrupted.
func (s *SettingsStore) Load() models.Settings {
	settings := models.DefaultSettings()
	raw := s.prefs.String(SettingsKey)
	if raw == "" {
		return settings
	}
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		log.Printf("Discarding corrupted settings storage: %v", err)
		return models.DefaultSettings()
	}
	return settings
}

// Save writes the settings blob through the Prefs port.
func (s *SettingsStore) Save(settings models.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	s.prefs.SetString(SettingsKey, string(raw))
	return nil
}
