package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	appLog "zosiaprint/internal/log"
	"zosiaprint/internal/model"
)

// ErrMissingInput marks a fatal load failure: the dataset file is absent,
// unparsable, or fails schema validation. Nothing is rendered after it.
var ErrMissingInput = errors.New("missing or invalid input")

// Dataset is the validated lecture/attendee dataset exported by the
// registration website.
type Dataset struct {
	Lectures    []model.LectureRecord
	Preferences []model.AttendancePreference
	Sponsors    []model.SponsorEntry

	// Contacts are passed to rendering verbatim; their shape is owned by
	// the templates, not by this program.
	Contacts []map[string]any

	StartDate time.Time
	EndDate   time.Time
}

// rawDataset mirrors the JSON export's field names. The double-underscore
// keys come from the website's ORM path flattening and are kept verbatim.
type rawDataset struct {
	Zosia struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	} `json:"zosia"`

	Lectures []struct {
		Title           string `json:"title"`
		Abstract        string `json:"abstract"`
		AuthorFirstName string `json:"author__first_name"`
		AuthorLastName  string `json:"author__last_name"`
		Organization    string `json:"author__preferences__organization__name"`
	} `json:"lectures"`

	Preferences []struct {
		FirstName       string `json:"user__first_name"`
		LastName        string `json:"user__last_name"`
		Organization    string `json:"organization__name"`
		PersonType      string `json:"user__person_type"`
		PaymentAccepted bool   `json:"payment_accepted"`
		Dinner1         bool   `json:"dinner_day_1"`
		Breakfast2      bool   `json:"breakfast_day_2"`
		Dinner2         bool   `json:"dinner_day_2"`
		Breakfast3      bool   `json:"breakfast_day_3"`
		Dinner3         bool   `json:"dinner_day_3"`
		Breakfast4      bool   `json:"breakfast_day_4"`
	} `json:"preferences"`

	Sponsors []struct {
		Name string `json:"name"`
		Tier string `json:"sponsor_type"`
	} `json:"sponsors"`

	Contacts []map[string]any `json:"contacts"`
}

// Load reads and validates the JSON dataset at path. Any failure here is
// fatal to the run and wraps ErrMissingInput.
func Load(path string) (*Dataset, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w: %v", path, ErrMissingInput, err)
	}

	var raw rawDataset
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("dataset: parse %s: %w: %v", path, ErrMissingInput, err)
	}

	ds, err := build(&raw)
	if err != nil {
		return nil, err
	}

	appLog.Info("dataset loaded",
		"path", path,
		"lectures", len(ds.Lectures),
		"preferences", len(ds.Preferences),
		"sponsors", len(ds.Sponsors),
	)
	return ds, nil
}

// build converts the raw JSON shape into validated model types. Validation
// is deliberately done here, at the model boundary, so malformed input fails
// fast instead of surfacing as missing fields deep inside enrichment.
func build(raw *rawDataset) (*Dataset, error) {
	start, err := time.Parse("2006-01-02", raw.Zosia.StartDate)
	if err != nil {
		return nil, fmt.Errorf("dataset: zosia.start_date %q: %w", raw.Zosia.StartDate, ErrMissingInput)
	}
	end, err := time.Parse("2006-01-02", raw.Zosia.EndDate)
	if err != nil {
		return nil, fmt.Errorf("dataset: zosia.end_date %q: %w", raw.Zosia.EndDate, ErrMissingInput)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("dataset: end_date before start_date: %w", ErrMissingInput)
	}

	ds := &Dataset{
		StartDate: start,
		EndDate:   end,
		Contacts:  raw.Contacts,
	}

	for i, l := range raw.Lectures {
		if l.Title == "" {
			return nil, fmt.Errorf("dataset: lectures[%d] has empty title: %w", i, ErrMissingInput)
		}
		ds.Lectures = append(ds.Lectures, model.LectureRecord{
			Title:           l.Title,
			Abstract:        l.Abstract,
			AuthorFirstName: l.AuthorFirstName,
			AuthorLastName:  l.AuthorLastName,
			Organization:    l.Organization,
		})
	}

	for i, s := range raw.Sponsors {
		if s.Name == "" {
			return nil, fmt.Errorf("dataset: sponsors[%d] has empty name: %w", i, ErrMissingInput)
		}
		ds.Sponsors = append(ds.Sponsors, model.SponsorEntry{
			Name: s.Name,
			Tier: model.HighlightTier(s.Tier),
		})
	}

	for _, p := range raw.Preferences {
		ds.Preferences = append(ds.Preferences, model.AttendancePreference{
			FirstName:       p.FirstName,
			LastName:        p.LastName,
			Organization:    p.Organization,
			Category:        p.PersonType,
			PaymentAccepted: p.PaymentAccepted,
			Meals: model.MealFlags{
				Dinner1:    p.Dinner1,
				Breakfast2: p.Breakfast2,
				Dinner2:    p.Dinner2,
				Breakfast3: p.Breakfast3,
				Dinner3:    p.Dinner3,
				Breakfast4: p.Breakfast4,
			},
		})
	}

	return ds, nil
}

// SponsorIndex returns the sponsor table keyed by organization name.
func (d *Dataset) SponsorIndex() map[string]model.SponsorEntry {
	idx := make(map[string]model.SponsorEntry, len(d.Sponsors))
	for _, s := range d.Sponsors {
		idx[s.Name] = s
	}
	return idx
}

// LectureIndex returns lectures keyed by canonical title.
func (d *Dataset) LectureIndex() map[string]model.LectureRecord {
	idx := make(map[string]model.LectureRecord, len(d.Lectures))
	for _, l := range d.Lectures {
		idx[l.Title] = l
	}
	return idx
}
