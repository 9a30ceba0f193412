package main

import (
	"fmt"
	"log"
	"strconv"

	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/plursight/daybreak/pkg/models"
)

func (mw *MainWindow) confirmDeleteAlarm(alarm models.Alarm) {
	name := alarm.Label
	if name == "" {
		name = alarm.Time
	}
	dialog.ShowConfirm("Delete Alarm", fmt.Sprintf("Delete alarm %q?", name), func(confirmed bool) {
		if !confirmed {
			return
		}
		if err := mw.db.alarms.Remove(alarm.ID); err != nil {
			dialog.ShowError(err, mw.window)
			return
		}
		if mw.editID == alarm.ID {
			mw.resetForm()
		}
		mw.db.refresh()
	}, mw.window)
}

func (mw *MainWindow) confirmClearAlarms() {
	dialog.ShowConfirm("Clear Alarms", "Delete all alarms?", func(confirmed bool) {
		if !confirmed {
			return
		}
		if err := mw.db.alarms.Clear(); err != nil {
			dialog.ShowError(err, mw.window)
			return
		}
		mw.resetForm()
		mw.db.refresh()
	}, mw.window)
}

func (mw *MainWindow) showSettingsDialog() {
	settings := mw.db.settings

	snoozeEntry := widget.NewEntry()
	snoozeEntry.SetText(strconv.Itoa(settings.SnoozeMinutes))

	autoStartCheck := widget.NewCheck("Launch at login", nil)
	autoStartCheck.SetChecked(settings.AutoStart)

	soundEntry := widget.NewEntry()
	soundEntry.SetPlaceHolder("built-in tones")
	soundEntry.SetText(settings.CustomSound)

	items := []*widget.FormItem{
		widget.NewFormItem("Snooze minutes", snoozeEntry),
		widget.NewFormItem("Autostart", autoStartCheck),
		widget.NewFormItem("Ring tone WAV", soundEntry),
	}

	dialog.ShowForm("Settings", "Save", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}

		if minutes, err := strconv.Atoi(snoozeEntry.Text); err == nil && minutes > 0 {
			settings.SnoozeMinutes = minutes
		} else {
			log.Printf("Ignoring bad snooze minutes %q", snoozeEntry.Text)
		}
		settings.AutoStart = autoStartCheck.Checked
		settings.CustomSound = soundEntry.Text

		mw.db.saveSettings(settings)
	}, mw.window)
}
