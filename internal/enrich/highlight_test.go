package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"zosiaprint/internal/model"
)

func sponsorTable() map[string]model.SponsorEntry {
	return map[string]model.SponsorEntry{
		"Acme":     {Name: "Acme", Tier: "gold"},
		"Initech":  {Name: "Initech", Tier: "silver"},
		"Globex …": {Name: "Globex …", Tier: "bronze"},
	}
}

// warnRecorder captures warning emissions for assertions.
type warnRecorder struct {
	msgs []string
}

func (w *warnRecorder) warn(msg string, _ ...any) {
	w.msgs = append(w.msgs, msg)
}

func TestResolveHighlightOrganizer(t *testing.T) {
	var rec warnRecorder
	tier := ResolveHighlight("organizer", "Acme", sponsorTable(), rec.warn)
	assert.Equal(t, model.HighlightOrganizer, tier)
	assert.Empty(t, rec.msgs, "organizer resolution never warns")
}

func TestResolveHighlightOrganizerCaseInsensitive(t *testing.T) {
	tier := ResolveHighlight("Organizer", "", sponsorTable(), (&warnRecorder{}).warn)
	assert.Equal(t, model.HighlightOrganizer, tier)
}

func TestResolveHighlightSponsorKnownOrganization(t *testing.T) {
	var rec warnRecorder
	tier := ResolveHighlight("sponsor", "Initech", sponsorTable(), rec.warn)
	assert.Equal(t, model.HighlightTier("silver"), tier)
	assert.Empty(t, rec.msgs)
}

func TestResolveHighlightSponsorUnknownOrganization(t *testing.T) {
	var rec warnRecorder
	tier := ResolveHighlight("sponsor", "Nonexistent Corp", sponsorTable(), rec.warn)
	assert.Equal(t, model.HighlightNone, tier)
	assert.Len(t, rec.msgs, 1, "sponsor with unknown organization warns once")
}

func TestResolveHighlightAttendeeFromSponsorOrganization(t *testing.T) {
	var rec warnRecorder
	tier := ResolveHighlight("attendee", "Acme", sponsorTable(), rec.warn)
	assert.Equal(t, model.HighlightNone, tier, "miscategorized data is logged, not corrected")
	assert.Len(t, rec.msgs, 1)
}

func TestResolveHighlightPlainAttendee(t *testing.T) {
	var rec warnRecorder
	tier := ResolveHighlight("attendee", "University of Nowhere", sponsorTable(), rec.warn)
	assert.Equal(t, model.HighlightNone, tier)
	assert.Empty(t, rec.msgs)
}

func TestResolveHighlightEmptyOrganization(t *testing.T) {
	var rec warnRecorder
	tier := ResolveHighlight("attendee", "", sponsorTable(), rec.warn)
	assert.Equal(t, model.HighlightNone, tier)
	assert.Empty(t, rec.msgs, "no organization means nothing to cross-check")
}

func TestResolveHighlightIsDeterministic(t *testing.T) {
	table := sponsorTable()
	first := ResolveHighlight("sponsor", "Acme", table, (&warnRecorder{}).warn)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ResolveHighlight("sponsor", "Acme", table, (&warnRecorder{}).warn))
	}
}
