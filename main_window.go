package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/plursight/daybreak/pkg/audio"
	"github.com/plursight/daybreak/pkg/models"
	"github.com/plursight/daybreak/pkg/schedule"
	"github.com/plursight/daybreak/pkg/timefmt"
)

// MainWindow is the alarm list and editor window.
type MainWindow struct {
	db     *Daybreak
	window fyne.Window

	clockText *canvas.Text
	clockStop chan struct{}

	// Alarm form state; editID is empty when adding a new alarm
	editID      string
	timeEntry   *widget.Entry
	labelEntry  *widget.Entry
	soundSelect *widget.Select
	dayChecks   [7]*widget.Check
	submitBtn   *widget.Button

	alarmList *fyne.Container
}

func NewMainWindow(db *Daybreak) *MainWindow {
	mw := &MainWindow{
		db:        db,
		clockStop: make(chan struct{}),
	}

	mw.window = db.app.NewWindow("Daybreak")
	mw.window.Resize(fyne.NewSize(520, 640))
	mw.window.SetCloseIntercept(func() {
		// Keep running in the tray; alarms must still fire
		mw.window.Hide()
	})

	mw.buildUI()
	mw.startClock()
	return mw
}

func (mw *MainWindow) Show() {
	mw.window.Show()
}

func (mw *MainWindow) buildUI() {
	mw.clockText = canvas.NewText("", nil)
	mw.clockText.TextSize = 42
	mw.clockText.Alignment = fyne.TextAlignCenter
	mw.renderClock(time.Now())

	use24hCheck := widget.NewCheck("24-hour clock", nil)
	use24hCheck.SetChecked(mw.db.settings.Use24h)
	// Wired after SetChecked so restoring the saved state does not
	// re-render a list that is not built yet.
	use24hCheck.OnChanged = func(checked bool) {
		settings := mw.db.settings
		settings.Use24h = checked
		mw.db.saveSettings(settings)
		mw.renderClock(time.Now())
		mw.RefreshAlarms()
	}

	mw.alarmList = container.NewVBox()
	mw.RefreshAlarms()

	content := container.NewBorder(
		container.NewVBox(
			container.NewPadded(mw.clockText),
			container.NewHBox(use24hCheck),
			widget.NewSeparator(),
			mw.buildForm(),
			widget.NewSeparator(),
		),
		container.NewHBox(
			widget.NewButton("Clear all", func() { mw.confirmClearAlarms() }),
			widget.NewButton("Export .ics", func() { mw.exportICS() }),
			widget.NewButton("Import .ics", func() { mw.importICS() }),
			widget.NewButton("Settings", func() { mw.showSettingsDialog() }),
		),
		nil,
		nil,
		container.NewVScroll(mw.alarmList),
	)

	mw.window.SetContent(container.NewPadded(content))
}

func (mw *MainWindow) buildForm() fyne.CanvasObject {
	mw.timeEntry = widget.NewEntry()
	mw.timeEntry.SetPlaceHolder("HH:MM")
	mw.labelEntry = widget.NewEntry()
	mw.labelEntry.SetPlaceHolder("Wake up")
	mw.soundSelect = widget.NewSelect([]string{string(models.SoundBeep), string(models.SoundChime)}, nil)
	mw.soundSelect.SetSelected(string(models.SoundBeep))

	dayRow := container.NewHBox()
	for i := range mw.dayChecks {
		mw.dayChecks[i] = widget.NewCheck(models.DayLabels[i], nil)
		dayRow.Add(mw.dayChecks[i])
	}

	testBtn := widget.NewButton("Test sound", func() {
		audio.PlayOnce(models.Sound(mw.soundSelect.Selected))
	})

	mw.submitBtn = widget.NewButton("Add alarm", func() { mw.submitForm() })
	mw.submitBtn.Importance = widget.HighImportance
	resetBtn := widget.NewButton("Reset", func() { mw.resetForm() })

	form := widget.NewForm(
		widget.NewFormItem("Time", mw.timeEntry),
		widget.NewFormItem("Label", mw.labelEntry),
		widget.NewFormItem("Sound", container.NewHBox(mw.soundSelect, testBtn)),
		widget.NewFormItem("Repeat", dayRow),
	)

	return container.NewVBox(form, container.NewHBox(mw.submitBtn, resetBtn))
}

// submitForm validates the form and adds or updates an alarm. A
// malformed time never reaches the store.
func (mw *MainWindow) submitForm() {
	timeText := mw.timeEntry.Text
	if _, _, err := timefmt.Parse(timeText); err != nil {
		if errors.Is(err, timefmt.ErrBadClock) {
			dialog.ShowError(fmt.Errorf("enter a time between 00:00 and 23:59"), mw.window)
		} else {
			dialog.ShowError(err, mw.window)
		}
		return
	}

	label := mw.labelEntry.Text
	sound := models.Sound(mw.soundSelect.Selected)
	var repeat []time.Weekday
	for i, check := range mw.dayChecks {
		if check.Checked {
			repeat = append(repeat, time.Weekday(i))
		}
	}

	if mw.editID != "" {
		enabled := true
		err := mw.db.alarms.Update(mw.editID, models.Patch{
			Time:    &timeText,
			Label:   &label,
			Enabled: &enabled,
			Repeat:  &repeat,
			Sound:   &sound,
		})
		if err != nil {
			dialog.ShowError(err, mw.window)
			return
		}
	} else {
		_, err := mw.db.alarms.Add(models.Alarm{
			Time:   timeText,
			Label:  label,
			Repeat: repeat,
			Sound:  sound,
		})
		if err != nil {
			dialog.ShowError(err, mw.window)
			return
		}
	}

	mw.resetForm()
	mw.db.refresh()
	audio.PlayOnce(models.SoundBeep)
}

func (mw *MainWindow) resetForm() {
	mw.editID = ""
	mw.timeEntry.SetText("")
	mw.labelEntry.SetText("")
	mw.soundSelect.SetSelected(string(models.SoundBeep))
	for _, check := range mw.dayChecks {
		check.SetChecked(false)
	}
	mw.submitBtn.SetText("Add alarm")
}

func (mw *MainWindow) editAlarm(a models.Alarm) {
	mw.editID = a.ID
	mw.timeEntry.SetText(a.Time)
	mw.labelEntry.SetText(a.Label)
	mw.soundSelect.SetSelected(string(a.Sound))
	for i, check := range mw.dayChecks {
		check.SetChecked(a.RepeatsOn(time.Weekday(i)))
	}
	mw.submitBtn.SetText("Update alarm")
}

// RefreshAlarms rebuilds the alarm list from the store.
func (mw *MainWindow) RefreshAlarms() {
	mw.alarmList.RemoveAll()

	alarms := mw.db.alarms.List()
	if len(alarms) == 0 {
		empty := widget.NewLabel("No alarms set.")
		empty.Importance = widget.MediumImportance
		mw.alarmList.Add(empty)
		mw.alarmList.Refresh()
		return
	}

	now := time.Now()
	for _, a := range alarms {
		mw.alarmList.Add(mw.alarmRow(a, now))
	}
	mw.alarmList.Refresh()
}

func (mw *MainWindow) alarmRow(a models.Alarm, now time.Time) fyne.CanvasObject {
	hour, minute, err := timefmt.Parse(a.Time)
	timeLabel := a.Time
	if err == nil {
		timeLabel = timefmt.Format(hour, minute, mw.db.settings.Use24h)
	}

	timeText := canvas.NewText(timeLabel, nil)
	timeText.TextSize = 24

	meta := a.RepeatLabel()
	if a.Label != "" {
		meta = a.Label + "  •  " + meta
	}
	if next, err := schedule.NextTrigger(&a, now); err == nil {
		meta += "  •  Next: " + next.Format("Mon Jan 2 15:04")
	}
	metaLabel := widget.NewLabel(meta)
	metaLabel.Importance = widget.MediumImportance

	alarm := a
	enabledCheck := widget.NewCheck("", nil)
	enabledCheck.SetChecked(a.Enabled)
	enabledCheck.OnChanged = func(checked bool) {
		if err := mw.db.alarms.Update(alarm.ID, models.Patch{Enabled: &checked}); err != nil {
			log.Printf("Failed to toggle alarm %s: %v", alarm.ID, err)
		}
		mw.db.refresh()
	}

	editBtn := widget.NewButton("Edit", func() { mw.editAlarm(alarm) })
	deleteBtn := widget.NewButton("Delete", func() { mw.confirmDeleteAlarm(alarm) })

	return container.NewVBox(
		container.NewBorder(nil, nil,
			container.NewHBox(enabledCheck, timeText),
			container.NewHBox(editBtn, deleteBtn),
			metaLabel,
		),
		widget.NewSeparator(),
	)
}

func (mw *MainWindow) renderClock(now time.Time) {
	mw.clockText.Text = timefmt.FormatSeconds(now.Hour(), now.Minute(), now.Second(), mw.db.settings.Use24h)
	mw.clockText.Refresh()
}

func (mw *MainWindow) startClock() {
	ticker := time.NewTicker(time.Second)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-mw.clockStop:
				return
			case now := <-ticker.C:
				fyne.Do(func() { mw.renderClock(now) })
			}
		}
	}()
}
