package main

import (
	"fmt"
	"sort"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/plursight/daybreak/pkg/models"
	"github.com/plursight/daybreak/pkg/schedule"
)

func (db *Daybreak) setupSystemTray() {
	db.updateSystemTrayMenu()
}

func (db *Daybreak) updateSystemTrayMenu() {
	desk, ok := db.app.(desktop.App)
	if !ok {
		return
	}

	menuItems := []*fyne.MenuItem{}

	upcoming := db.upcomingAlarms(5)
	if len(upcoming) > 0 {
		headerItem := fyne.NewMenuItem("Upcoming:", nil)
		headerItem.Disabled = true
		menuItems = append(menuItems, headerItem)

		for _, u := range upcoming {
			label := u.alarm.Label
			if label == "" {
				label = "Alarm"
			}
			item := fyne.NewMenuItem(fmt.Sprintf("  %s - %s", u.at.Format("Mon 3:04 PM"), truncateString(label, 35)), nil)
			item.Disabled = true
			menuItems = append(menuItems, item)
		}

		menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	}

	menuItems = append(menuItems,
		fyne.NewMenuItem("Show", func() {
			db.mainWindow.Show()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			db.quit()
		}),
	)

	desk.SetSystemTrayMenu(fyne.NewMenu("Daybreak", menuItems...))
}

type upcomingAlarm struct {
	alarm models.Alarm
	at    time.Time
}

// upcomingAlarms returns the next triggers across all enabled alarms,
// soonest first, at most limit entries.
func (db *Daybreak) upcomingAlarms(limit int) []upcomingAlarm {
	now := time.Now()
	upcoming := []upcomingAlarm{}

	for _, a := range db.alarms.List() {
		if !a.Enabled {
			continue
		}
		next, err := schedule.NextTrigger(&a, now)
		if err != nil {
			continue
		}
		upcoming = append(upcoming, upcomingAlarm{alarm: a, at: next})
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].at.Before(upcoming[j].at)
	})
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// truncateString truncates a string to maxLen characters, adding "..." if needed
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
