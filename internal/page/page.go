// Package page describes the parts of a portfolio page the renderers touch:
// containers found by element id, and the location the page was loaded from.
package page

import (
	"net/url"
	"strings"
)

// Element ids of the page's fixed containers
const (
	MenuToggleID             = "menu-toggle"
	NavLinksID               = "nav-links"
	ProjectContainerID       = "project-container"
	TimelineContainerID      = "timeline-container"
	ProjectDetailContainerID = "project-detail-container"
)

// EducationPage is the final path segment that selects the education timeline
const EducationPage = "education.html"

// Container is a region of the page whose markup can be replaced or extended
type Container interface {
	SetInnerHTML(markup string) error
	AppendHTML(markup string) error
}

// Element is a container that also carries classes and attributes
type Element interface {
	Container
	ToggleClass(name string) bool
	SetAttr(key, value string)
}

// Lookup finds an element by id. It returns nil when the page has no such element.
type Lookup func(id string) Element

// Location is the path and query the page was requested with
type Location struct {
	Path  string
	Query url.Values
}

// ParseLocation splits a request URI such as "/project-detail.html?id=x"
func ParseLocation(raw string) (Location, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, err
	}
	return Location{Path: u.Path, Query: u.Query()}, nil
}

// PageName returns the final path segment, "" for a path ending in "/"
func (l Location) PageName() string {
	return l.Path[strings.LastIndex(l.Path, "/")+1:]
}

// Param returns the first value of a query parameter
func (l Location) Param(key string) string {
	if l.Query == nil {
		return ""
	}
	return l.Query.Get(key)
}
