package render

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	appLog "zosiaprint/internal/log"
	"zosiaprint/internal/model"
)

// WriteWebSchedule exports the enriched schedule as JSON for the website.
func WriteWebSchedule(path string, days []model.EnrichedDay) error {
	body, err := json.Marshal(days)
	if err != nil {
		return fmt.Errorf("render: marshal web schedule: %w", err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("render: write web schedule: %w", err)
	}
	return nil
}

// WriteICS exports the enriched schedule as an iCalendar feed. Schedule days
// carry only weekday labels, so calendar dates are anchored to the camp
// start date: day i is startDate + i days.
//
// Open-ended events (empty end time) get no DTEND; events wrapping past
// midnight end on the following day.
func WriteICS(path string, days []model.EnrichedDay, startDate time.Time) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//zosiaprint//schedule//PL")

	now := time.Now()

	for i, day := range days {
		date := startDate.AddDate(0, 0, i)

		for j, ev := range day.Events {
			startH, startM, err := parseClock(ev.StartTime)
			if err != nil {
				appLog.Warn("ics export: skipping event with bad start time",
					"day", day.Name, "title", ev.Title, "err", err)
				continue
			}
			start := time.Date(date.Year(), date.Month(), date.Day(), startH, startM, 0, 0, time.Local)

			e := cal.AddEvent(fmt.Sprintf("day%d-event%d@zosiaprint", i, j))
			e.SetCreatedTime(now)
			e.SetDtStampTime(now)
			e.SetStartAt(start)
			e.SetSummary(ev.Title)
			if ev.Lecturer != "" {
				e.SetDescription(ev.Lecturer)
			}

			if ev.EndTime != "" {
				endH, endM, err := parseClock(ev.EndTime)
				if err == nil {
					end := time.Date(date.Year(), date.Month(), date.Day(), endH, endM, 0, 0, time.Local)
					if end.Before(start) {
						end = end.AddDate(0, 0, 1)
					}
					e.SetEndAt(end)
				}
			}
		}
	}

	if err := os.WriteFile(path, []byte(cal.Serialize()), 0o644); err != nil {
		return fmt.Errorf("render: write ics: %w", err)
	}
	return nil
}

// parseClock parses "HH:MM" into hour and minute components.
func parseClock(v string) (int, int, error) {
	hh, mm, ok := strings.Cut(v, ":")
	if !ok {
		return 0, 0, fmt.Errorf("bad clock value %q", v)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, 0, fmt.Errorf("bad clock value %q", v)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, 0, fmt.Errorf("bad clock value %q", v)
	}
	return h, m, nil
}
