package dates

import (
	"fmt"
	"time"
)

// Locale identifiers supported by this package. The original collateral is
// produced in Polish; English is kept for test data and future editions.
const (
	LocalePL = "pl"
	LocaleEN = "en"
)

// Month names in the form used inside a full date ("13 marca 2026" needs the
// Polish genitive case, not the nominative dictionary form).
var monthNames = map[string][12]string{
	LocalePL: {
		"stycznia", "lutego", "marca", "kwietnia", "maja", "czerwca",
		"lipca", "sierpnia", "września", "października", "listopada", "grudnia",
	},
	LocaleEN: {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
}

// Weekday names, lowercase, indexed Monday..Sunday. Lowercase is the form
// used for day-header detection in the tabular schedule.
var weekdayNames = map[string][7]string{
	LocalePL: {
		"poniedziałek", "wtorek", "środa", "czwartek", "piątek", "sobota", "niedziela",
	},
	LocaleEN: {
		"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	},
}

// MonthName returns the localized in-date month name for m.
func MonthName(m time.Month, locale string) string {
	names, ok := monthNames[locale]
	if !ok {
		names = monthNames[LocalePL]
	}
	return names[int(m)-1]
}

// Weekdays returns all seven lowercase weekday names for the locale,
// Monday first. Used to recognize day-header rows in the schedule CSV.
func Weekdays(locale string) []string {
	names, ok := weekdayNames[locale]
	if !ok {
		names = weekdayNames[LocalePL]
	}
	return names[:]
}

// FormatInterval renders a human date interval such as "13–16 marca 2026".
// Shared year and month components are collapsed, matching the style of the
// camp-date line on printed collateral.
func FormatInterval(start, end time.Time, locale string) string {
	if end.Before(start) {
		start, end = end, start
	}

	sameYear := start.Year() == end.Year()
	sameMonth := sameYear && start.Month() == end.Month()

	if locale == LocaleEN {
		switch {
		case sameMonth && start.Day() == end.Day():
			return fmt.Sprintf("%s %d, %d", MonthName(start.Month(), locale), start.Day(), start.Year())
		case sameMonth:
			return fmt.Sprintf("%s %d–%d, %d", MonthName(start.Month(), locale), start.Day(), end.Day(), start.Year())
		case sameYear:
			return fmt.Sprintf("%s %d – %s %d, %d",
				MonthName(start.Month(), locale), start.Day(),
				MonthName(end.Month(), locale), end.Day(), start.Year())
		default:
			return fmt.Sprintf("%s %d, %d – %s %d, %d",
				MonthName(start.Month(), locale), start.Day(), start.Year(),
				MonthName(end.Month(), locale), end.Day(), end.Year())
		}
	}

	switch {
	case sameMonth && start.Day() == end.Day():
		return fmt.Sprintf("%d %s %d", start.Day(), MonthName(start.Month(), locale), start.Year())
	case sameMonth:
		return fmt.Sprintf("%d–%d %s %d", start.Day(), end.Day(), MonthName(start.Month(), locale), start.Year())
	case sameYear:
		return fmt.Sprintf("%d %s – %d %s %d",
			start.Day(), MonthName(start.Month(), locale),
			end.Day(), MonthName(end.Month(), locale), start.Year())
	default:
		return fmt.Sprintf("%d %s %d – %d %s %d",
			start.Day(), MonthName(start.Month(), locale), start.Year(),
			end.Day(), MonthName(end.Month(), locale), end.Year())
	}
}

// Edition returns the camp edition year for a given date. Editions are named
// after the spring they happen in: a run in January–March belongs to the
// current year, anything later prepares next year's edition.
func Edition(today time.Time) int {
	if today.Month() <= time.March {
		return today.Year()
	}
	return today.Year() + 1
}
