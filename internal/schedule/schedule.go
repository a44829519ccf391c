// Package schedule parses the externally authored camp schedule into
// model.ScheduleDay values. Two source forms exist: a day-structured YAML
// file and a tabular CSV export of the scheduling spreadsheet.
//
// Row-local problems (short rows, bad durations) are logged and skipped so
// one malformed row cannot block the whole document batch. A file that
// yields no days at all is a hard error.
package schedule

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrBadRow marks a malformed row shape or field. Row-local: the row is
	// skipped with a warning, parsing continues.
	ErrBadRow = errors.New("malformed schedule row")

	// ErrEmpty is returned when a source produced no schedule days at all.
	// Callers treat it as a fatal missing-input condition.
	ErrEmpty = errors.New("schedule contains no days")
)

// readFile wraps os.ReadFile with a consistent error prefix.
func readFile(path string) ([]byte, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schedule: read %s: %w", path, err)
	}
	return body, nil
}

// titleCase capitalizes s ("friday" / "FRIDAY" -> "Friday"). Day names are
// matched lowercase but displayed capitalized.
func titleCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
