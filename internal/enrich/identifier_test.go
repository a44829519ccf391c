package enrich

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zosiaprint/internal/model"
)

func testPrefs() []model.AttendancePreference {
	return []model.AttendancePreference{
		{FirstName: "Jane", LastName: "Doe", Organization: "Acme", Category: "sponsor", PaymentAccepted: true,
			Meals: model.MealFlags{Dinner1: true, Breakfast2: true}},
		{FirstName: "Adam", LastName: "Nowak", Organization: "", Category: "attendee", PaymentAccepted: true},
		{FirstName: "Ola", LastName: "Kowalska", Organization: "UWr", Category: "organizer", PaymentAccepted: false},
	}
}

func TestBuildIdentifierListPadsWithBlanks(t *testing.T) {
	out := BuildIdentifierList(testPrefs(), 5, IdentifierOptions{
		Sponsors: sponsorTable(),
		Warn:     (&warnRecorder{}).warn,
	})

	require.Len(t, out, 8, "3 real entries + 5 blanks")

	assert.Equal(t, "Jane", out[0].FirstName)
	assert.Equal(t, "Adam", out[1].FirstName)
	assert.Equal(t, "Ola", out[2].FirstName)

	for _, entry := range out[3:] {
		assert.True(t, entry.Blank)
		assert.Equal(t, blankName, entry.FirstName)
		assert.Equal(t, blankName, entry.LastName)
		assert.Equal(t, blankOrg, entry.Organization)
		assert.Equal(t, model.MealFlags{
			Dinner1: true, Breakfast2: true, Dinner2: true,
			Breakfast3: true, Dinner3: true, Breakfast4: true,
		}, entry.Meals, "blank cards grant every meal")
	}
}

func TestBuildIdentifierListResolvesHighlights(t *testing.T) {
	out := BuildIdentifierList(testPrefs(), 0, IdentifierOptions{
		Sponsors: sponsorTable(),
		Warn:     (&warnRecorder{}).warn,
	})

	require.Len(t, out, 3)
	assert.Equal(t, model.HighlightTier("gold"), out[0].Highlight)
	assert.Equal(t, model.HighlightNone, out[1].Highlight)
	assert.Equal(t, model.HighlightOrganizer, out[2].Highlight)
}

func TestBuildIdentifierListFilter(t *testing.T) {
	out := BuildIdentifierList(testPrefs(), 2, IdentifierOptions{
		Sponsors: sponsorTable(),
		Filter:   PaymentAcceptedOnly,
		Warn:     (&warnRecorder{}).warn,
	})

	require.Len(t, out, 4, "one unpaid preference filtered out, blanks unaffected")
	assert.Equal(t, "Jane", out[0].FirstName)
	assert.Equal(t, "Adam", out[1].FirstName)
	assert.True(t, out[2].Blank)
}

func TestBuildIdentifierListTruncatesLongOrganization(t *testing.T) {
	longOrg := strings.Repeat("x", 85)
	var rec warnRecorder

	out := BuildIdentifierList([]model.AttendancePreference{
		{FirstName: "A", LastName: "B", Organization: longOrg, Category: "attendee"},
	}, 0, IdentifierOptions{Sponsors: sponsorTable(), Warn: rec.warn})

	require.Len(t, out, 1)
	assert.Equal(t, strings.Repeat("x", 80)+truncationMark, out[0].Organization)
	assert.Len(t, rec.msgs, 1)
}

func TestTruncateOrganizationShortNameUntouched(t *testing.T) {
	var rec warnRecorder
	name := strings.Repeat("y", 80)
	assert.Equal(t, name, TruncateOrganization(name, rec.warn))
	assert.Empty(t, rec.msgs)
}

func TestTruncateOrganizationCountsRunes(t *testing.T) {
	// 85 multibyte characters must cut at 80 characters, not 80 bytes.
	name := strings.Repeat("ż", 85)
	got := TruncateOrganization(name, (&warnRecorder{}).warn)
	assert.Equal(t, strings.Repeat("ż", 80)+truncationMark, got)
}

func TestBuildIdentifierListSponsorLookupUsesUntruncatedName(t *testing.T) {
	longSponsor := strings.Repeat("s", 90)
	sponsors := map[string]model.SponsorEntry{
		longSponsor: {Name: longSponsor, Tier: "gold"},
	}
	var rec warnRecorder

	out := BuildIdentifierList([]model.AttendancePreference{
		{FirstName: "A", LastName: "B", Organization: longSponsor, Category: "sponsor"},
	}, 0, IdentifierOptions{Sponsors: sponsors, Warn: rec.warn})

	require.Len(t, out, 1)
	assert.Equal(t, model.HighlightTier("gold"), out[0].Highlight, "highlight resolved before display truncation")
	assert.Equal(t, strings.Repeat("s", 80)+truncationMark, out[0].Organization)
}
