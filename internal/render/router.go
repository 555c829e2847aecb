package render

import (
	"bytes"
	"context"
	"errors"

	"folio.dev/internal/dom"
	"folio.dev/internal/page"
)

// Route runs the renderers whose containers exist on the page. The timeline
// container shows education on education.html and experience anywhere else.
// A "menu=open" query opens the navigation menu, the fallback for browsers
// without scripting.
//
// Failures are already rendered into their containers; the joined error is
// returned for callers that want to log or count them.
func (r *Renderer) Route(ctx context.Context, lookup page.Lookup, loc page.Location) error {
	if toggle := page.BindMenuToggle(lookup); toggle != nil && loc.Param("menu") == "open" {
		toggle.Toggle()
	}

	var errs []error
	if lookup(page.ProjectContainerID) != nil {
		errs = append(errs, r.Projects(ctx, lookup))
	}
	if lookup(page.TimelineContainerID) != nil {
		if loc.PageName() == page.EducationPage {
			errs = append(errs, r.Education(ctx, lookup))
		} else {
			errs = append(errs, r.Experience(ctx, lookup))
		}
	}
	if lookup(page.ProjectDetailContainerID) != nil {
		errs = append(errs, r.ProjectDetail(ctx, lookup, loc))
	}
	return errors.Join(errs...)
}

// Document parses a page shell and routes it for loc. Renderer failures are
// already shown in their containers and logged, so only a shell that cannot
// be parsed is an error.
func (r *Renderer) Document(ctx context.Context, shell []byte, loc page.Location) (*dom.Document, error) {
	doc, err := dom.Parse(bytes.NewReader(shell))
	if err != nil {
		return nil, err
	}
	_ = r.Route(ctx, doc.Lookup, loc)
	return doc, nil
}
