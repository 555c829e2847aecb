package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"folio.dev/internal/content"
)

// maxConcurrentChecks bounds the number of resources fetched at once
const maxConcurrentChecks = 8

// CheckResult is the outcome of fetching and decoding one resource
type CheckResult struct {
	Resource string
	Items    int
	Err      error
}

// Check fetches and decodes every resource the site can show: the three
// lists plus the detail page of each project that links to one. The project
// list is loaded first since it names the detail pages; everything else is
// fetched concurrently. Results are in a stable order.
func Check(ctx context.Context, projects *ProjectService, timeline *TimelineService) []CheckResult {
	list, err := projects.GetAll(ctx)
	results := []CheckResult{{Resource: content.ProjectsResource, Items: len(list), Err: err}}

	type check struct {
		resource string
		run      func(context.Context) (int, error)
	}
	checks := []check{
		{content.EducationResource, func(ctx context.Context) (int, error) {
			entries, err := timeline.Education(ctx)
			return len(entries), err
		}},
		{content.ExperienceResource, func(ctx context.Context) (int, error) {
			entries, err := timeline.Experience(ctx)
			return len(entries), err
		}},
	}
	for _, p := range list {
		if !p.HasDetails {
			continue
		}
		id := string(p.ID)
		resource, err := content.DetailResource(id)
		if err != nil {
			resource = "data/details/" + id + ".json"
		}
		checks = append(checks, check{resource, func(ctx context.Context) (int, error) {
			detail, err := projects.GetByID(ctx, id)
			if err != nil {
				return 0, err
			}
			return len(detail.Gallery), nil
		}})
	}

	out := make([]CheckResult, len(checks))
	g := errgroup.Group{}
	g.SetLimit(maxConcurrentChecks)
	for i, c := range checks {
		g.Go(func() error {
			n, err := c.run(ctx)
			out[i] = CheckResult{Resource: c.resource, Items: n, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return append(results, out...)
}
