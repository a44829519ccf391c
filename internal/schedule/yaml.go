package schedule

import (
	"fmt"

	"gopkg.in/yaml.v3"

	appLog "zosiaprint/internal/log"
	"zosiaprint/internal/model"
)

// yamlDay / yamlEvent mirror the hand-authored YAML schedule form. Event key
// names (startTime, endTime-less) match the web schedule contract so the
// same file can be shared with the website repo.
type yamlDay struct {
	Name        string      `yaml:"name"`
	SessionName string      `yaml:"session_name"`
	Events      []yamlEvent `yaml:"events"`
}

type yamlEvent struct {
	Type        string `yaml:"type"`
	StartTime   string `yaml:"startTime"`
	Duration    int    `yaml:"duration"`
	Title       string `yaml:"title"`
	Highlighted bool   `yaml:"highlighted"`
}

// ParseYAML parses the day-structured YAML schedule form.
func ParseYAML(body []byte) ([]model.ScheduleDay, error) {
	var rawDays []yamlDay
	if err := yaml.Unmarshal(body, &rawDays); err != nil {
		return nil, fmt.Errorf("schedule: parse yaml: %w", err)
	}

	days := make([]model.ScheduleDay, 0, len(rawDays))
	for _, rd := range rawDays {
		if rd.Name == "" {
			appLog.Warn("schedule: skipping unnamed day", "events", len(rd.Events))
			continue
		}

		day := model.ScheduleDay{
			Name:        rd.Name,
			SessionName: rd.SessionName,
		}
		for _, re := range rd.Events {
			if re.Duration < 0 {
				appLog.Warn("schedule: skipping event with negative duration",
					"day", rd.Name, "title", re.Title, "duration", re.Duration)
				continue
			}
			day.Events = append(day.Events, model.ScheduleEvent{
				Type:        model.ParseEventType(re.Type),
				StartTime:   re.StartTime,
				Duration:    re.Duration,
				Title:       re.Title,
				Highlighted: re.Highlighted,
			})
		}
		days = append(days, day)
	}

	if len(days) == 0 {
		return nil, ErrEmpty
	}
	return days, nil
}

// LoadYAML reads and parses a YAML schedule file.
func LoadYAML(path string) ([]model.ScheduleDay, error) {
	body, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ParseYAML(body)
}
