package models

import "errors"

// EducationEntry is one period on the education timeline
type EducationEntry struct {
	Year   Label     `json:"year"`
	School string    `json:"school"`
	Link   string    `json:"link"`
	Image  string    `json:"image"`
	Items  []Subject `json:"items"`
}

// Validate reports an entry without a subject list
func (e EducationEntry) Validate() error {
	if e.Items == nil {
		return errors.New("missing items")
	}
	return nil
}

// Subject is a graded course within an education entry
type Subject struct {
	Subject string `json:"subject"`
	Grade   Label  `json:"grade"`
}

// ExperienceEntry is one period on the work experience timeline
type ExperienceEntry struct {
	Year        Label  `json:"year"`
	Place       string `json:"place"`
	Link        string `json:"link"`
	Image       string `json:"image"`
	Description string `json:"description"`
}
