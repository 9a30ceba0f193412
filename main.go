package main

import (
	"log"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/plursight/daybreak/pkg/audio"
	"github.com/plursight/daybreak/pkg/models"
	"github.com/plursight/daybreak/pkg/store"
)

// dueInterval is the due-check cadence. Half a second is short enough
// to catch every minute boundary; the store de-duplicates within a
// minute, so extra ticks are harmless.
const dueInterval = 500 * time.Millisecond

type Daybreak struct {
	app           fyne.App
	settings      models.Settings
	settingsStore *store.SettingsStore
	alarms        *store.AlarmStore
	dueTicker     *time.Ticker
	mainWindow    *MainWindow
}

func main() {
	db := &Daybreak{
		app: app.NewWithID("com.plursight.daybreak"),
	}

	db.initialize()
	db.run()
}

func (db *Daybreak) initialize() {
	prefs := db.app.Preferences()
	db.settingsStore = store.NewSettingsStore(prefs)
	db.settings = db.settingsStore.Load()
	db.alarms = store.NewAlarmStore(prefs)
	db.alarms.Load()

	// Sync autostart state with settings on startup
	if err := setupAutostart(db.settings.AutoStart); err != nil {
		log.Printf("Warning: failed to setup autostart: %v", err)
	}

	db.mainWindow = NewMainWindow(db)
	db.setupSystemTray()
	db.startDueChecker()
}

func (db *Daybreak) run() {
	db.mainWindow.Show()
	db.app.Run()
}

// saveSettings persists settings and applies side effects of changes.
func (db *Daybreak) saveSettings(settings models.Settings) {
	autostartChanged := settings.AutoStart != db.settings.AutoStart
	db.settings = settings
	if err := db.settingsStore.Save(settings); err != nil {
		log.Printf("Failed to save settings: %v", err)
	}
	if autostartChanged {
		if err := setupAutostart(settings.AutoStart); err != nil {
			log.Printf("Warning: failed to setup autostart: %v", err)
		}
	}
}

func (db *Daybreak) startDueChecker() {
	db.dueTicker = time.NewTicker(dueInterval)
	go func() {
		for range db.dueTicker.C {
			db.checkDue()
		}
	}()
}

func (db *Daybreak) checkDue() {
	fired := db.alarms.ScanDue(time.Now())
	for _, alarm := range fired {
		db.fireAlarm(alarm)
	}
	if len(fired) > 0 {
		fyne.Do(db.refresh)
	}
}

// fireAlarm rings, notifies and shows the ringing window for one due
// alarm. One-shot alarms are disabled after firing so they do not
// re-arm for tomorrow.
func (db *Daybreak) fireAlarm(alarm models.Alarm) {
	log.Printf("Alarm %q fired at %s", alarm.Label, alarm.Time)

	player := audio.Ring(alarm.Sound, db.customRingTone())

	body := alarm.Label
	if body == "" {
		body = "Alarm"
	}
	db.app.SendNotification(fyne.NewNotification("Alarm", body))

	ShowAlertWindow(db, alarm, player)

	if !alarm.Repeats() {
		enabled := false
		if err := db.alarms.Update(alarm.ID, models.Patch{Enabled: &enabled}); err != nil {
			log.Printf("Failed to disable one-shot alarm %s: %v", alarm.ID, err)
		}
	}
}

// snooze re-arms a dismissed alarm as a fresh one-shot a few minutes
// out, keeping its label and sound.
func (db *Daybreak) snooze(alarm models.Alarm) {
	minutes := db.settings.SnoozeMinutes
	if minutes <= 0 {
		minutes = 1
	}
	at := time.Now().Add(time.Duration(minutes) * time.Minute)
	spec := models.Alarm{
		Time:  at.Format("15:04"),
		Label: alarm.Label,
		Sound: alarm.Sound,
	}
	if _, err := db.alarms.Add(spec); err != nil {
		log.Printf("Failed to snooze alarm %s: %v", alarm.ID, err)
		return
	}
	log.Printf("Alarm %q snoozed until %s", alarm.Label, spec.Time)
	db.refresh()
}

// customRingTone loads the user's WAV ring tone, if configured.
func (db *Daybreak) customRingTone() []byte {
	if db.settings.CustomSound == "" {
		return nil
	}
	data, err := os.ReadFile(db.settings.CustomSound)
	if err != nil {
		log.Printf("Failed to read custom ring tone: %v", err)
		return nil
	}
	return data
}

// refresh re-renders the alarm list and tray after any mutation. Must
// run on the UI goroutine; background callers wrap it in fyne.Do.
func (db *Daybreak) refresh() {
	if db.mainWindow != nil {
		db.mainWindow.RefreshAlarms()
	}
	db.updateSystemTrayMenu()
}

func (db *Daybreak) quit() {
	if db.dueTicker != nil {
		db.dueTicker.Stop()
	}
	db.app.Quit()
}
