package enrich

import (
	"errors"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"

	"zosiaprint/internal/model"
)

// ErrNoMatch is returned when no canonical lecture title is close enough to
// a freeform schedule title. The enricher recovers by dropping the event
// with a warning; one bad schedule row must not block the rest of the
// document.
var ErrNoMatch = errors.New("no lecture title close enough")

// matchCutoff is the minimum similarity ratio a candidate must reach.
// Matches difflib's default acceptance threshold.
const matchCutoff = 0.6

// MatchLecture resolves a freeform schedule title against the canonical
// lecture set using sequence-alignment similarity over character sequences.
// Comparison is case- and whitespace-sensitive.
//
// When two candidates score equally, the first one in slice order wins.
// That tie-break is an implementation detail, not a contract.
func MatchLecture(freeformTitle string, lectures []model.LectureRecord) (model.LectureRecord, error) {
	target := splitRunes(freeformTitle)

	bestIdx := -1
	bestRatio := 0.0

	for i, l := range lectures {
		m := difflib.NewMatcher(splitRunes(l.Title), target)
		if r := m.Ratio(); r > bestRatio {
			bestRatio = r
			bestIdx = i
		}
	}

	if bestIdx < 0 || bestRatio < matchCutoff {
		return model.LectureRecord{}, fmt.Errorf("%w: %q (best ratio %.2f)", ErrNoMatch, freeformTitle, bestRatio)
	}
	return lectures[bestIdx], nil
}

// splitRunes turns a string into per-rune elements for the sequence matcher,
// so similarity is measured over characters rather than lines.
func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
