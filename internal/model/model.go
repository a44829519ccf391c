package model

import "strings"

// EventType tags a schedule event. Values are stored lowercase; input from
// schedule sources is normalized via ParseEventType.
type EventType string

const (
	EventLecture EventType = "lecture"
	EventBreak   EventType = "break"
	EventMeal    EventType = "meal"
	EventOther   EventType = "other"
)

// ParseEventType normalizes a freeform event type tag. Unknown tags are kept
// as-is (lowercased) so templates can still branch on them.
func ParseEventType(s string) EventType {
	t := EventType(strings.ToLower(strings.TrimSpace(s)))
	if t == "" {
		return EventOther
	}
	return t
}

// IsLecture reports whether the event requires lecture enrichment.
func (t EventType) IsLecture() bool {
	return t == EventLecture
}

// HighlightTier is a display-priority tag for a person or lecture. The tier
// set is open: sponsor tiers come from the dataset's sponsor table, so only
// the derived states get constants here.
type HighlightTier string

const (
	HighlightNone      HighlightTier = "none"
	HighlightOrganizer HighlightTier = "organizer"
)

// Person categories as authored in the dataset.
const (
	CategoryOrganizer = "organizer"
	CategorySponsor   = "sponsor"
)

// LectureRecord is a canonical lecture from the dataset, looked up by title.
type LectureRecord struct {
	Title           string
	Abstract        string // raw text; paragraph splitting happens at enrichment
	AuthorFirstName string
	AuthorLastName  string
	Organization    string
}

// SponsorEntry maps an organization name to its sponsor tier.
type SponsorEntry struct {
	Name string
	Tier HighlightTier
}

// MealFlags are the per-day meal entitlements printed on an identifier.
// Field names follow the camp day numbering used by the templates.
type MealFlags struct {
	Dinner1    bool
	Breakfast2 bool
	Dinner2    bool
	Breakfast3 bool
	Dinner3    bool
	Breakfast4 bool
}

// AttendancePreference is one attendee's registration record.
type AttendancePreference struct {
	FirstName       string
	LastName        string
	Organization    string // empty when the attendee declared none
	Category        string // organizer | sponsor | anything else
	PaymentAccepted bool
	Meals           MealFlags
}

// ScheduleDay is one authored day of the schedule. Event order is
// chronological as authored and must be preserved.
type ScheduleDay struct {
	Name        string
	SessionName string // defaults to Name when blank
	Events      []ScheduleEvent
}

// ScheduleEvent is one authored schedule slot, before enrichment.
// Title is freeform: for lectures it may be abbreviated or typo'd and is
// reconciled against the canonical lecture titles during enrichment.
type ScheduleEvent struct {
	Type        EventType
	StartTime   string // "HH:MM", 24h
	Duration    int    // minutes, >= 0; 0 means open-ended
	Title       string
	Highlighted bool // authored "highlight this lecture" flag (CSV form only)
}

// EnrichedDay is a day ready for rendering. JSON tags match the web
// schedule contract consumed by the website.
type EnrichedDay struct {
	Name        string          `json:"name"`
	SessionName string          `json:"session_name"`
	Events      []EnrichedEvent `json:"events"`
	HasLecture  bool            `json:"has_lecture"`
}

// EnrichedEvent is a schedule slot after enrichment. EndTime is always
// derived, never authored. The lecture fields (Abstract through
// ShowOrganization) are populated only when Type is EventLecture; for all
// other types the event passes through with just the end time attached.
type EnrichedEvent struct {
	Type      EventType `json:"type"`
	StartTime string    `json:"startTime"`
	Duration  int       `json:"duration"`
	EndTime   string    `json:"endTime"`
	Title     string    `json:"title"`

	Abstract         []string      `json:"abstract,omitempty"`
	Lecturer         string        `json:"lecturer,omitempty"`
	Organization     string        `json:"organization,omitempty"`
	Highlight        HighlightTier `json:"highlight,omitempty"`
	ShowOrganization bool          `json:"showOrganization,omitempty"`
}

// IdentifierEntry is one printed meal-voucher card. Blank entries pad the
// sheet to the fixed page layout; their name/organization strings are the
// dotted placeholder and all meal flags are set.
type IdentifierEntry struct {
	FirstName    string
	LastName     string
	Organization string // truncated for display; never used as a lookup key
	Highlight    HighlightTier
	Meals        MealFlags
	Blank        bool
}
