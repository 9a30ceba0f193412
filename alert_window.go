package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/plursight/daybreak/pkg/audio"
	"github.com/plursight/daybreak/pkg/models"
	"github.com/plursight/daybreak/pkg/timefmt"
	"github.com/plursight/daybreak/pkg/ui/components"
)

// holdToDismiss is how long the dismiss button must be held. Long
// enough that a reflexive click does not silence the alarm.
const holdToDismiss = 2 * time.Second

// ShowAlertWindow opens the full-screen ringing view for a fired
// alarm. It owns the looping player and stops it on dismiss or snooze.
// Safe to call from any goroutine.
func ShowAlertWindow(db *Daybreak, alarm models.Alarm, player *audio.Player) {
	fyne.Do(func() {
		win := db.app.NewWindow("Alarm")
		win.SetFullScreen(true)

		title := alarm.Label
		if title == "" {
			title = "Alarm"
		}
		titleText := canvas.NewText(title, nil)
		titleText.TextSize = 36
		titleText.Alignment = fyne.TextAlignCenter

		timeLabel := alarm.Time
		if hour, minute, err := timefmt.Parse(alarm.Time); err == nil {
			timeLabel = timefmt.Format(hour, minute, db.settings.Use24h)
		}
		timeText := canvas.NewText(timeLabel, nil)
		timeText.TextSize = 64
		timeText.Alignment = fyne.TextAlignCenter

		win.SetOnClosed(func() {
			player.Stop()
		})

		dismissBtn := components.NewHoldButton(
			fmt.Sprintf("Dismiss (hold %ds)", int(holdToDismiss.Seconds())),
			holdToDismiss,
			func() {
				player.Stop()
				win.Close()
			},
		)

		snoozeBtn := widget.NewButton(fmt.Sprintf("Snooze %dm", db.settings.SnoozeMinutes), func() {
			player.Stop()
			db.snooze(alarm)
			win.Close()
		})

		content := container.NewCenter(container.NewVBox(
			container.NewPadded(timeText),
			container.NewPadded(titleText),
			widget.NewSeparator(),
			container.NewHBox(snoozeBtn, dismissBtn),
		))

		win.SetContent(container.NewPadded(content))
		win.Show()
		win.RequestFocus()
	})
}
