package models

// Settings holds user preferences, persisted as a single JSON blob
type Settings struct {
	Use24h        bool   `json:"use24h"`         // Clock and list display convention
	SnoozeMinutes int    `json:"snooze_minutes"` // How far a snoozed alarm is pushed out
	AutoStart     bool   `json:"auto_start"`     // Launch at login
	CustomSound   string `json:"custom_sound"`   // Optional path to a WAV ring tone
}

// DefaultSettings returns the settings used before the user saves any
func DefaultSettings() Settings {
	return Settings{
		Use24h:        false,
		SnoozeMinutes: 4,
	}
}
