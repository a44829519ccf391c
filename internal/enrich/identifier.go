package enrich

import (
	appLog "zosiaprint/internal/log"
	"zosiaprint/internal/model"
)

const (
	// orgDisplayLimit is the print-layout cap on organization names.
	// Truncation is display-only: sponsor lookups always use the full name.
	orgDisplayLimit = 80
	truncationMark  = "… "

	blankName = ".............."
	blankOrg  = "............."
)

// IdentifierOptions configures identifier list building.
type IdentifierOptions struct {
	// Sponsors is the sponsor table used for highlight resolution.
	Sponsors map[string]model.SponsorEntry

	// Filter, when non-nil, selects which preferences get a card.
	// The default is to include everyone.
	Filter func(model.AttendancePreference) bool

	// Warn receives data-integrity warnings; nil means the application log.
	Warn WarnFunc
}

// PaymentAcceptedOnly is a ready-made Filter that limits cards to attendees
// with an accepted payment, as some editions require.
func PaymentAcceptedOnly(p model.AttendancePreference) bool {
	return p.PaymentAccepted
}

// BuildIdentifierList maps attendee preferences to printable identifier
// entries and appends blanks placeholder cards so the sheet fills the fixed
// page layout. Blank cards carry the dotted placeholder strings and grant
// all meals; whoever gets one at the venue fills it in by hand.
func BuildIdentifierList(prefs []model.AttendancePreference, blanks int, opts IdentifierOptions) []model.IdentifierEntry {
	warn := opts.Warn
	if warn == nil {
		warn = appLog.Warn
	}

	out := make([]model.IdentifierEntry, 0, len(prefs)+blanks)

	for _, p := range prefs {
		if opts.Filter != nil && !opts.Filter(p) {
			continue
		}

		// Resolve highlight before truncation so the lookup key is the
		// organization's real name.
		tier := ResolveHighlight(p.Category, p.Organization, opts.Sponsors, warn)

		out = append(out, model.IdentifierEntry{
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			Organization: TruncateOrganization(p.Organization, warn),
			Highlight:    tier,
			Meals:        p.Meals,
		})
	}

	for i := 0; i < blanks; i++ {
		out = append(out, model.IdentifierEntry{
			FirstName:    blankName,
			LastName:     blankName,
			Organization: blankOrg,
			Highlight:    model.HighlightNone,
			Meals: model.MealFlags{
				Dinner1:    true,
				Breakfast2: true,
				Dinner2:    true,
				Breakfast3: true,
				Dinner3:    true,
				Breakfast4: true,
			},
			Blank: true,
		})
	}

	return out
}

// TruncateOrganization caps an organization name for print layout, appending
// a visible ellipsis. Measured in runes so multibyte names are not cut
// mid-character.
func TruncateOrganization(name string, warn WarnFunc) string {
	if warn == nil {
		warn = appLog.Warn
	}
	runes := []rune(name)
	if len(runes) <= orgDisplayLimit {
		return name
	}
	warn("organization name too long, truncating for display", "organization", name)
	return string(runes[:orgDisplayLimit]) + truncationMark
}
