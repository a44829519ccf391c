package schedule

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	appLog "zosiaprint/internal/log"
	"zosiaprint/internal/model"
)

// The tabular form is an export of the scheduling spreadsheet. Column layout
// per event row:
//
//	0 start time, 1 lecturer, 2 printing title, 3 canonical-ish title,
//	4 end time (ignored; always recomputed), 5 break time, 6 event type,
//	7 comments, 8 highlighted ("yes"/"no"), 9 service, 10 additional
//	comments, 11 duration in minutes
//
// A row whose first cell is a weekday name starts a new day; the cell next
// to it optionally names the session. One column-header row follows each
// day-header row and is skipped.
const csvEventColumns = 12

// ParseCSV parses the tabular schedule form. weekdays is the lowercase
// weekday-name list used to recognize day-header rows (see dates.Weekdays).
func ParseCSV(r io.Reader, weekdays []string) ([]model.ScheduleDay, error) {
	dayHeader := make(map[string]bool, len(weekdays))
	for _, w := range weekdays {
		dayHeader[w] = true
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var (
		days       []model.ScheduleDay
		current    *model.ScheduleDay
		skipHeader bool
	)

	flush := func() {
		if current != nil && len(current.Events) > 0 {
			days = append(days, *current)
		}
	}

	for line := 1; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A structurally broken line (stray quote etc.) kills only
			// that line.
			appLog.Warn("schedule: unreadable csv line", "line", line, "err", err)
			continue
		}
		if len(row) == 0 {
			continue
		}

		if skipHeader {
			skipHeader = false
			continue
		}

		if dayHeader[strings.ToLower(row[0])] {
			flush()
			current = &model.ScheduleDay{Name: titleCase(row[0])}
			if len(row) > 1 && row[1] != "" {
				current.SessionName = row[1]
			}
			skipHeader = true
			continue
		}

		if row[0] == "" {
			// Spacer rows between sessions.
			continue
		}

		if current == nil {
			appLog.Warn("schedule: event row before any day header", "line", line, "cell", row[0])
			continue
		}

		ev, err := parseCSVEvent(row)
		if err != nil {
			appLog.Warn("schedule: skipping row", "line", line, "day", current.Name, "err", err)
			continue
		}
		current.Events = append(current.Events, ev)
	}

	flush()

	if len(days) == 0 {
		return nil, ErrEmpty
	}
	return days, nil
}

func parseCSVEvent(row []string) (model.ScheduleEvent, error) {
	if len(row) < csvEventColumns {
		return model.ScheduleEvent{}, fmt.Errorf("%w: got %d columns, want %d", ErrBadRow, len(row), csvEventColumns)
	}

	start := row[0]
	printingTitle := row[2]
	freeformTitle := row[3]
	eventType := model.ParseEventType(row[6])
	highlighted := strings.EqualFold(strings.TrimSpace(row[8]), "yes")

	duration := 0
	if raw := strings.TrimSpace(row[11]); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil {
			return model.ScheduleEvent{}, fmt.Errorf("%w: duration %q", ErrBadRow, raw)
		}
		if d < 0 {
			return model.ScheduleEvent{}, fmt.Errorf("%w: negative duration %d", ErrBadRow, d)
		}
		duration = d
	}

	// Lecture rows carry the reconciliation key in the title column; for
	// everything else the printing title is used verbatim.
	title := printingTitle
	if eventType.IsLecture() {
		title = freeformTitle
	}

	return model.ScheduleEvent{
		Type:        eventType,
		StartTime:   start,
		Duration:    duration,
		Title:       title,
		Highlighted: highlighted,
	}, nil
}

// LoadCSV reads and parses a CSV schedule file.
func LoadCSV(path string, weekdays []string) ([]model.ScheduleDay, error) {
	body, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCSV(strings.NewReader(string(body)), weekdays)
}
