package store

import (
	"testing"

	"github.com/plursight/daybreak/pkg/models"
)

func TestSettingsDefaults(t *testing.T) {
	s := NewSettingsStore(newFakePrefs())

	settings := s.Load()
	if settings.Use24h {
		t.Error("use24h should default to false")
	}
	if settings.SnoozeMinutes != 4 {
		t.Errorf("snooze minutes = %d, want 4", settings.SnoozeMinutes)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	prefs := newFakePrefs()
	s := NewSettingsStore(prefs)

	saved := models.Settings{Use24h: true, SnoozeMinutes: 9, AutoStart: true, CustomSound: "/tmp/ring.wav"}
	if err := s.Save(saved); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded := NewSettingsStore(prefs).Load()
	if loaded != saved {
		t.Errorf("round trip = %+v, want %+v", loaded, saved)
	}
}

func TestSettingsCorruptionFallsBack(t *testing.T) {
	prefs := newFakePrefs()
	prefs.values[SettingsKey] = "][nope"

	settings := NewSettingsStore(prefs).Load()
	if settings != models.DefaultSettings() {
		t.Errorf("corrupted settings = %+v, want defaults", settings)
	}
}
