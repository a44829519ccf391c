package enrich

import (
	"strings"

	appLog "zosiaprint/internal/log"
	"zosiaprint/internal/model"
)

// WarnFunc receives data-integrity warnings. Warnings never alter control
// flow; they exist so an operator can fix the source data before print day.
type WarnFunc func(msg string, kv ...any)

// ResolveHighlight derives a person's highlight tier from their category and
// their organization's membership in the sponsor table.
//
// The function is total: every anomaly degrades to HighlightNone with a
// warning emitted through warn (defaulting to the application log).
//
// Rules, in order:
//   - organizers are always HighlightOrganizer
//   - sponsors get their organization's tier; a sponsor whose organization
//     is missing from the table gets none + warning
//   - anyone else affiliated with a known sponsor organization gets none +
//     warning (flagging likely miscategorized data, never auto-corrected)
//   - everyone else gets none
func ResolveHighlight(category, organization string, sponsors map[string]model.SponsorEntry, warn WarnFunc) model.HighlightTier {
	if warn == nil {
		warn = appLog.Warn
	}

	switch strings.ToLower(strings.TrimSpace(category)) {
	case model.CategoryOrganizer:
		return model.HighlightOrganizer

	case model.CategorySponsor:
		if s, ok := sponsors[organization]; ok {
			return s.Tier
		}
		warn("listed as sponsor but organization absent from sponsor table",
			"organization", organization)
		return model.HighlightNone

	default:
		if _, ok := sponsors[organization]; ok && organization != "" {
			warn("affiliated with known sponsor organization but not flagged as sponsor",
				"organization", organization, "category", category)
		}
		return model.HighlightNone
	}
}
