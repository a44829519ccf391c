package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zosiaprint/internal/model"
)

var matchFixture = []model.LectureRecord{
	{Title: "Introduction to Rust", AuthorFirstName: "Jane", AuthorLastName: "Doe"},
	{Title: "Distributed Consensus in Practice", AuthorFirstName: "Adam", AuthorLastName: "Nowak"},
	{Title: "Profiling Go Services", AuthorFirstName: "Ola", AuthorLastName: "Kowalska"},
}

func TestMatchLectureExactTitle(t *testing.T) {
	// Matching a canonical title against itself is idempotent.
	for _, l := range matchFixture {
		got, err := MatchLecture(l.Title, matchFixture)
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}
}

func TestMatchLectureAbbreviatedTitle(t *testing.T) {
	got, err := MatchLecture("Intro to Rust", matchFixture)
	require.NoError(t, err)
	assert.Equal(t, "Introduction to Rust", got.Title)
}

func TestMatchLectureTypo(t *testing.T) {
	got, err := MatchLecture("Profilng Go Servces", matchFixture)
	require.NoError(t, err)
	assert.Equal(t, "Profiling Go Services", got.Title)
}

func TestMatchLectureNoCandidateCloseEnough(t *testing.T) {
	_, err := MatchLecture("Pottery for Beginners", matchFixture)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestMatchLectureEmptyCandidateSet(t *testing.T) {
	_, err := MatchLecture("Anything", nil)
	assert.ErrorIs(t, err, ErrNoMatch)
}
