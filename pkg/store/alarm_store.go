// Package store persists alarms and settings through a string key-value
// port, satisfied in the app by fyne Preferences.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/plursight/daybreak/pkg/models"
	"github.com/plursight/daybreak/pkg/schedule"
	"github.com/plursight/daybreak/pkg/timefmt"
)

// Prefs is the storage collaborator: a string-keyed store of opaque
// blobs. fyne.Preferences satisfies it.
type Prefs interface {
	String(key string) string
	SetString(key string, value string)
}

// AlarmsKey is the preferences slot holding the JSON alarm collection.
const AlarmsKey = "daybreak.alarms.v1"

// AlarmStore owns the in-memory alarm collection and writes it through
// the Prefs port on every mutation. Insertion order is preserved and is
// the iteration order of List and ScanDue.
type AlarmStore struct {
	mu     sync.RWMutex
	prefs  Prefs
	alarms []models.Alarm
}

// NewAlarmStore creates an empty store over prefs. Call Load to pull in
// the persisted collection.
func NewAlarmStore(prefs Prefs) *AlarmStore {
	return &AlarmStore{prefs: prefs}
}

// Load reads the persisted collection. An absent or corrupted blob
// resets to an empty collection; startup never fails on bad storage.
func (s *AlarmStore) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alarms = nil
	raw := s.prefs.String(AlarmsKey)
	if raw == "" {
		return
	}
	if err := json.Unmarshal([]byte(raw), &s.alarms); err != nil {
		log.Printf("Discarding corrupted alarm storage: %v", err)
		s.alarms = nil
	}
}

// Save serializes the full collection into the Prefs slot.
func (s *AlarmStore) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.save()
}

// save persists without locking; callers hold the mutex.
func (s *AlarmStore) save() error {
	alarms := s.alarms
	if alarms == nil {
		alarms = []models.Alarm{}
	}
	raw, err := json.Marshal(alarms)
	if err != nil {
		return fmt.Errorf("encode alarms: %w", err)
	}
	s.prefs.SetString(AlarmsKey, string(raw))
	return nil
}

// List returns independent copies of every alarm in insertion order.
func (s *AlarmStore) List() []models.Alarm {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Alarm, 0, len(s.alarms))
	for i := range s.alarms {
		out = append(out, s.alarms[i].Clone())
	}
	return out
}

// Add validates spec.Time, assigns a fresh ID and defaults
// (enabled, beep, one-shot), appends the record and persists it.
// The created record is returned.
func (s *AlarmStore) Add(spec models.Alarm) (models.Alarm, error) {
	if _, _, err := timefmt.Parse(spec.Time); err != nil {
		return models.Alarm{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a := models.Alarm{
		ID:      uuid.New().String(),
		Time:    spec.Time,
		Label:   spec.Label,
		Enabled: true,
		Repeat:  append([]time.Weekday(nil), spec.Repeat...),
		Sound:   spec.Sound,
	}
	if a.Sound == "" {
		a.Sound = models.SoundBeep
	}

	s.alarms = append(s.alarms, a)
	if err := s.save(); err != nil {
		return models.Alarm{}, err
	}
	return a.Clone(), nil
}

// Update merges the non-nil fields of patch onto the alarm with the
// given id and persists. An unknown id is a silent no-op. A patched
// time string is validated like in Add.
func (s *AlarmStore) Update(id string, patch models.Patch) error {
	if patch.Time != nil {
		if _, _, err := timefmt.Parse(*patch.Time); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.alarms {
		if s.alarms[i].ID != id {
			continue
		}
		a := &s.alarms[i]
		if patch.Time != nil {
			a.Time = *patch.Time
		}
		if patch.Label != nil {
			a.Label = *patch.Label
		}
		if patch.Enabled != nil {
			a.Enabled = *patch.Enabled
		}
		if patch.Repeat != nil {
			a.Repeat = append([]time.Weekday(nil), (*patch.Repeat)...)
		}
		if patch.Sound != nil {
			a.Sound = *patch.Sound
		}
		return s.save()
	}
	return nil
}

// Remove drops the alarm with the given id, if present, and persists
// unconditionally.
func (s *AlarmStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.alarms[:0]
	for i := range s.alarms {
		if s.alarms[i].ID != id {
			kept = append(kept, s.alarms[i])
		}
	}
	s.alarms = kept
	return s.save()
}

// Clear empties the collection and persists.
func (s *AlarmStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alarms = nil
	return s.save()
}

// ScanDue returns copies of the alarms that fire in now's minute,
// marking each fired alarm so a second scan within the same minute
// returns nothing for it. Disabled alarms are never scanned. Minutes
// with no scan are dropped, not fired retroactively. The collection is
// persisted once if anything fired.
func (s *AlarmStore) ScanDue(now time.Time) []models.Alarm {
	s.mu.Lock()
	defer s.mu.Unlock()

	nowMin := schedule.MinuteEpoch(now)
	var fired []models.Alarm
	for i := range s.alarms {
		a := &s.alarms[i]
		if !a.Enabled {
			continue
		}
		next, err := schedule.NextTrigger(a, now)
		if err != nil {
			// Stored times are validated on the way in; skip rather
			// than fire something malformed.
			log.Printf("Skipping alarm %s with bad time %q: %v", a.ID, a.Time, err)
			continue
		}
		if schedule.MinuteEpoch(next) == nowMin && a.LastFired != nowMin {
			a.LastFired = nowMin
			fired = append(fired, a.Clone())
		}
	}
	if len(fired) > 0 {
		if err := s.save(); err != nil {
			log.Printf("Failed to persist fired alarms: %v", err)
		}
	}
	return fired
}
