// Package enrich is the core of the generator: it reconciles the authored
// schedule with the canonical lecture dataset, derives end times, resolves
// sponsor highlighting, and builds the identifier card list.
//
// Everything here is a pure single-pass transformation over immutable input;
// the only side channel is the warning sink.
package enrich

import (
	"strings"

	appLog "zosiaprint/internal/log"
	"zosiaprint/internal/model"
)

// Enricher merges lecture metadata into schedule slots. Construct it once
// per run from the loaded dataset.
type Enricher struct {
	// Lectures is the canonical lecture set used for fuzzy title matching.
	Lectures []model.LectureRecord

	// Sponsors is the sponsor table keyed by organization name.
	Sponsors map[string]model.SponsorEntry

	// Warn receives data-integrity warnings. If nil, the application log
	// is used.
	Warn WarnFunc
}

// Enrich transforms the authored schedule into render-ready days. Day and
// event order is preserved exactly as authored; ordering is part of the
// display contract.
//
// Per-event failures (unmatched lecture titles, malformed times) drop that
// event with a warning and leave the rest of the day intact.
func (e *Enricher) Enrich(days []model.ScheduleDay) []model.EnrichedDay {
	warn := e.Warn
	if warn == nil {
		warn = appLog.Warn
	}

	out := make([]model.EnrichedDay, 0, len(days))
	for _, day := range days {
		ed := model.EnrichedDay{
			Name:        day.Name,
			SessionName: day.SessionName,
		}
		if ed.SessionName == "" {
			ed.SessionName = day.Name
		}

		for _, ev := range day.Events {
			ee, err := e.enrichEvent(ev, warn)
			if err != nil {
				warn("skipping schedule event", "day", day.Name, "title", ev.Title, "err", err)
				continue
			}
			ed.Events = append(ed.Events, ee)
			if ee.Type.IsLecture() {
				ed.HasLecture = true
			}
		}

		out = append(out, ed)
	}
	return out
}

func (e *Enricher) enrichEvent(ev model.ScheduleEvent, warn WarnFunc) (model.EnrichedEvent, error) {
	endTime, err := ComputeEndTime(ev.StartTime, ev.Duration)
	if err != nil {
		return model.EnrichedEvent{}, err
	}

	out := model.EnrichedEvent{
		Type:      ev.Type,
		StartTime: ev.StartTime,
		Duration:  ev.Duration,
		EndTime:   endTime,
		Title:     ev.Title,
	}

	if !ev.Type.IsLecture() {
		return out, nil
	}

	lect, err := MatchLecture(ev.Title, e.Lectures)
	if err != nil {
		return model.EnrichedEvent{}, err
	}

	// The freeform spreadsheet title is replaced by the canonical one.
	out.Title = lect.Title
	out.Abstract = SplitAbstract(lect.Abstract)
	out.Lecturer = lect.AuthorFirstName + " " + lect.AuthorLastName
	out.Organization = lect.Organization
	out.Highlight = model.HighlightNone

	if ev.Highlighted {
		if s, ok := e.Sponsors[lect.Organization]; ok {
			out.Highlight = s.Tier
			out.ShowOrganization = true
		} else {
			warn("lecture marked for highlighting but organization absent from sponsor table",
				"title", lect.Title, "organization", lect.Organization)
		}
	}

	return out, nil
}

// SplitAbstract splits a raw abstract into paragraphs on blank lines.
// Datasets edited on Windows carry CRLF endings, so the paragraph marker is
// chosen per abstract.
func SplitAbstract(raw string) []string {
	marker := "\n\n"
	if strings.Contains(raw, "\r\n") {
		marker = "\r\n\r\n"
	}
	return strings.Split(raw, marker)
}
