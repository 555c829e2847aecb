package models

import "errors"

// Project represents a portfolio project card
type Project struct {
	ID          Label  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	GitHubURL   string `json:"github_url"`
	HasDetails  bool   `json:"has_details"`
}

// ProjectDetail is the long-form page for a single project
type ProjectDetail struct {
	Title           string        `json:"title"`
	MainImage       string        `json:"main_image"`
	LongDescription []string      `json:"long_description"`
	Technologies    []string      `json:"technologies"`
	Gallery         []GalleryItem `json:"gallery,omitempty"`
}

// Validate reports a detail page without its description or technology list.
// Either may be empty but not absent.
func (d ProjectDetail) Validate() error {
	switch {
	case d.LongDescription == nil:
		return errors.New("missing long_description")
	case d.Technologies == nil:
		return errors.New("missing technologies")
	}
	return nil
}

// GalleryItem is one captioned image on a detail page
type GalleryItem struct {
	Image       string `json:"image"`
	Caption     string `json:"caption"`
	Description string `json:"description,omitempty"`
}
