package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zosiaprint/internal/model"
)

func TestParseYAML(t *testing.T) {
	input := []byte(`
- name: Friday
  session_name: Opening
  events:
    - type: LECTURE
      startTime: "09:00"
      duration: 45
      title: Intro to Rust
      highlighted: true
    - type: break
      startTime: "09:45"
      duration: 15
      title: Coffee
- name: Saturday
  events:
    - type: MEAL
      startTime: "08:00"
      duration: 0
      title: Breakfast
`)

	days, err := ParseYAML(input)
	require.NoError(t, err)
	require.Len(t, days, 2)

	fri := days[0]
	assert.Equal(t, "Friday", fri.Name)
	assert.Equal(t, "Opening", fri.SessionName)
	require.Len(t, fri.Events, 2)
	assert.Equal(t, model.EventLecture, fri.Events[0].Type, "event type tags are case-insensitive")
	assert.Equal(t, "Intro to Rust", fri.Events[0].Title)
	assert.True(t, fri.Events[0].Highlighted)
	assert.Equal(t, model.EventBreak, fri.Events[1].Type)

	sat := days[1]
	assert.Empty(t, sat.SessionName)
	assert.Equal(t, 0, sat.Events[0].Duration)
}

func TestParseYAMLSkipsBadEntries(t *testing.T) {
	input := []byte(`
- name: ""
  events:
    - type: OTHER
      startTime: "10:00"
      duration: 30
      title: Orphaned
- name: Friday
  events:
    - type: OTHER
      startTime: "10:00"
      duration: -5
      title: Negative
    - type: OTHER
      startTime: "11:00"
      duration: 30
      title: Fine
`)

	days, err := ParseYAML(input)
	require.NoError(t, err)
	require.Len(t, days, 1, "unnamed day skipped")
	require.Len(t, days[0].Events, 1, "negative-duration event skipped")
	assert.Equal(t, "Fine", days[0].Events[0].Title)
}

func TestParseYAMLEmpty(t *testing.T) {
	_, err := ParseYAML([]byte("[]"))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestParseYAMLMalformed(t *testing.T) {
	_, err := ParseYAML([]byte("{not a list"))
	assert.Error(t, err)
}
