package domain

import (
	"strings"
	"time"
)

// Backup is the export document: every project and task plus the export time.
type Backup struct {
	Timestamp time.Time  `json:"timestamp" yaml:"timestamp"`
	Projects  []*Project `json:"projects" yaml:"projects"`
	Tasks     []*Task    `json:"tasks" yaml:"tasks"`
}

// Backup formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ParseFormat normalizes a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", ErrUnknownFormat
	}
}

// Normalize fills the collections that older exports may leave null.
func (b *Backup) Normalize() {
	if b.Projects == nil {
		b.Projects = []*Project{}
	}
	if b.Tasks == nil {
		b.Tasks = []*Task{}
	}
	for _, p := range b.Projects {
		if p.Tags == nil {
			p.Tags = []string{}
		}
	}
	for _, t := range b.Tasks {
		if t.Tags == nil {
			t.Tags = []string{}
		}
		if t.TimeTracking.Sessions == nil {
			t.TimeTracking.Sessions = []WorkSession{}
		}
		if t.Priority == "" {
			t.Priority = DefaultPriority
		}
		if t.Recurring.Pattern == "" {
			t.Recurring.Pattern = RecurDaily
		}
		if t.Recurring.Interval < 1 {
			t.Recurring.Interval = 1
		}
	}
}
