package main

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"github.com/emersion/go-ical"

	"github.com/plursight/daybreak/pkg/models"
	"github.com/plursight/daybreak/pkg/schedule"
)

// icalDayCodes maps time.Weekday (0=Sunday) to iCalendar BYDAY codes.
var icalDayCodes = [7]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

// encodeAlarms renders the alarm collection as an iCalendar stream.
// Each alarm becomes a VEVENT at its next trigger; repeating alarms
// carry a weekly RRULE with their weekdays.
func encodeAlarms(w io.Writer, alarms []models.Alarm, now time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, "-//plursight//daybreak//EN")
	cal.Props.SetText(ical.PropVersion, "2.0")

	for i := range alarms {
		a := &alarms[i]
		next, err := schedule.NextTrigger(a, now)
		if err != nil {
			log.Printf("Skipping alarm %s with bad time %q in export: %v", a.ID, a.Time, err)
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, a.ID)
		event.Props.SetText(ical.PropSummary, a.Label)
		event.Props.SetDateTime(ical.PropDateTimeStamp, now)
		event.Props.SetDateTime(ical.PropDateTimeStart, next)
		event.Props.SetDateTime(ical.PropDateTimeEnd, next.Add(time.Minute))

		if a.Repeats() {
			days := make([]string, 0, len(a.Repeat))
			for _, d := range a.Repeat {
				days = append(days, icalDayCodes[int(d)%7])
			}
			rrule := ical.NewProp(ical.PropRecurrenceRule)
			rrule.Value = "FREQ=WEEKLY;BYDAY=" + strings.Join(days, ",")
			event.Props.Set(rrule)
		}

		cal.Children = append(cal.Children, event.Component)
	}

	return ical.NewEncoder(w).Encode(cal)
}

// decodeAlarms parses VEVENTs into alarm specs ready for AlarmStore.Add.
// Events without a parseable start time are skipped; a weekly RRULE's
// BYDAY becomes the repeat set.
func decodeAlarms(r io.Reader) ([]models.Alarm, error) {
	decoder := ical.NewDecoder(r)
	var specs []models.Alarm

	for {
		cal, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode calendar: %w", err)
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}

			startProp := comp.Props.Get(ical.PropDateTimeStart)
			if startProp == nil {
				continue
			}
			start, err := startProp.DateTime(time.Local)
			if err != nil {
				log.Printf("Skipping event with bad start time %q: %v", startProp.Value, err)
				continue
			}

			spec := models.Alarm{
				Time: start.In(time.Local).Format("15:04"),
			}
			if summary := comp.Props.Get(ical.PropSummary); summary != nil {
				spec.Label = summary.Value
			}
			if rrule := comp.Props.Get(ical.PropRecurrenceRule); rrule != nil {
				spec.Repeat = parseWeeklyByDay(rrule.Value)
			}
			specs = append(specs, spec)
		}
	}

	return specs, nil
}

// parseWeeklyByDay extracts the BYDAY weekdays from a weekly RRULE.
// Anything that is not FREQ=WEEKLY, or has no BYDAY, yields a one-shot.
func parseWeeklyByDay(rrule string) []time.Weekday {
	if !strings.Contains(rrule, "FREQ=WEEKLY") {
		return nil
	}
	var days []time.Weekday
	for _, part := range strings.Split(rrule, ";") {
		if !strings.HasPrefix(part, "BYDAY=") {
			continue
		}
		for _, code := range strings.Split(strings.TrimPrefix(part, "BYDAY="), ",") {
			code = strings.TrimSpace(code)
			for i, known := range icalDayCodes {
				if code == known {
					days = append(days, time.Weekday(i))
				}
			}
		}
	}
	return days
}

func (mw *MainWindow) exportICS() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, mw.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		if err := encodeAlarms(writer, mw.db.alarms.List(), time.Now()); err != nil {
			dialog.ShowError(err, mw.window)
			return
		}
		log.Println("Alarms exported")
	}, mw.window)
}

func (mw *MainWindow) importICS() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, mw.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		specs, err := decodeAlarms(reader)
		if err != nil {
			dialog.ShowError(err, mw.window)
			return
		}

		added := 0
		for _, spec := range specs {
			if _, err := mw.db.alarms.Add(spec); err != nil {
				log.Printf("Skipping imported alarm %q: %v", spec.Label, err)
				continue
			}
			added++
		}
		log.Printf("Imported %d of %d alarms", added, len(specs))
		mw.db.refresh()
	}, mw.window)
}
