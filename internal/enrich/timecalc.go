package enrich

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrFormat marks a malformed time string or field value. It is fatal to the
// single affected computation only; the enricher drops the event and moves on.
var ErrFormat = errors.New("malformed value")

const minutesPerDay = 24 * 60

// ComputeEndTime returns the "HH:MM" end time for an event starting at
// start ("HH:MM", 24h) and lasting durationMinutes.
//
// A zero duration returns the empty string: the event is open-ended and the
// templates print no end time. The hour wraps modulo 24, so late-night
// sessions crossing midnight come out as expected ("23:50" + 20 -> "00:10").
func ComputeEndTime(start string, durationMinutes int) (string, error) {
	if durationMinutes == 0 {
		return "", nil
	}
	if durationMinutes < 0 {
		return "", fmt.Errorf("%w: negative duration %d", ErrFormat, durationMinutes)
	}

	hh, mm, ok := strings.Cut(start, ":")
	if !ok {
		return "", fmt.Errorf("%w: start time %q", ErrFormat, start)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return "", fmt.Errorf("%w: start time %q", ErrFormat, start)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return "", fmt.Errorf("%w: start time %q", ErrFormat, start)
	}

	total := (h*60 + m + durationMinutes) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}
