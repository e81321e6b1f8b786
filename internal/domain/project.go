package domain

import "time"

// ProjectPalette is the fixed set of project colours.
var ProjectPalette = []string{"#7C3AED", "#06B6D4", "#10B981", "#F59E0B", "#EF4444"}

// PaletteColor picks a colour for the n-th project.
func PaletteColor(n int) string {
	if n < 0 {
		n = -n
	}
	return ProjectPalette[n%len(ProjectPalette)]
}

// Project groups tasks.
type Project struct {
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updatedAt"`
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Color       string    `json:"color" yaml:"color"`
	Tags        []string  `json:"tags" yaml:"tags"`
	Archived    bool      `json:"archived" yaml:"archived"`
}

// NewProject builds a project with an empty tag set.
func NewProject(id, title, description string, tags []string, color string, now time.Time) *Project {
	if tags == nil {
		tags = []string{}
	}
	return &Project{
		ID:          id,
		Title:       title,
		Description: description,
		Tags:        tags,
		Color:       color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// DescriptionOr returns the description or the fallback when empty.
func (p *Project) DescriptionOr(fallback string) string {
	if p.Description == "" {
		return fallback
	}
	return p.Description
}
