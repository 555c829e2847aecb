// Package render turns the portfolio's JSON records into markup and writes
// it into the page's containers.
//
// Every renderer follows the same sequence: find its container, load its
// records, build one fragment per record, then clear the container and append
// the fragments. Any failure replaces the container contents with a short
// message and is logged; nothing is retried and no partial markup is left.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"folio.dev/internal/content"
	"folio.dev/internal/models"
	"folio.dev/internal/page"
	"folio.dev/internal/services"
)

// ErrNoContainer is returned when the page lacks the renderer's container
var ErrNoContainer = errors.New("container not found")

// Renderer fills page containers from the portfolio's data
type Renderer struct {
	projects *services.ProjectService
	timeline *services.TimelineService
	md       goldmark.Markdown
	logger   *slog.Logger
}

// New creates a Renderer. A nil logger uses slog.Default().
func New(projects *services.ProjectService, timeline *services.TimelineService, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		projects: projects,
		timeline: timeline,
		md:       goldmark.New(goldmark.WithExtensions(extension.GFM)),
		logger:   logger,
	}
}

// Projects renders one card per project into the project container
func (r *Renderer) Projects(ctx context.Context, lookup page.Lookup) error {
	container := lookup(page.ProjectContainerID)
	if container == nil {
		return ErrNoContainer
	}

	projects, err := r.projects.GetAll(ctx)
	if err != nil {
		return r.fail(ctx, container, page.ProjectContainerID, content.ProjectsResource, projectsErrorHTML, err)
	}

	fragments := make([]string, 0, len(projects))
	for _, p := range projects {
		f, err := execute("project-card", p)
		if err != nil {
			return r.fail(ctx, container, page.ProjectContainerID, content.ProjectsResource, projectsErrorHTML, err)
		}
		fragments = append(fragments, f)
	}
	return r.fill(ctx, container, page.ProjectContainerID, content.ProjectsResource, projectsErrorHTML, fragments)
}

// Education renders the education timeline into the timeline container
func (r *Renderer) Education(ctx context.Context, lookup page.Lookup) error {
	container := lookup(page.TimelineContainerID)
	if container == nil {
		return ErrNoContainer
	}

	entries, err := r.timeline.Education(ctx)
	if err != nil {
		return r.fail(ctx, container, page.TimelineContainerID, content.EducationResource, educationErrorHTML, err)
	}

	fragments := make([]string, 0, len(entries))
	for _, e := range entries {
		f, err := execute("education-entry", e)
		if err != nil {
			return r.fail(ctx, container, page.TimelineContainerID, content.EducationResource, educationErrorHTML, err)
		}
		fragments = append(fragments, f)
	}
	return r.fill(ctx, container, page.TimelineContainerID, content.EducationResource, educationErrorHTML, fragments)
}

// sourceEscaper escapes raw HTML in Markdown sources so tags render as text
var sourceEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;")

type experienceView struct {
	models.ExperienceEntry
	Description template.HTML
}

// Experience renders the work experience timeline into the timeline container.
// Descriptions are Markdown; raw HTML inside them is shown as text.
func (r *Renderer) Experience(ctx context.Context, lookup page.Lookup) error {
	container := lookup(page.TimelineContainerID)
	if container == nil {
		return ErrNoContainer
	}

	entries, err := r.timeline.Experience(ctx)
	if err != nil {
		return r.fail(ctx, container, page.TimelineContainerID, content.ExperienceResource, experienceErrorHTML, err)
	}

	fragments := make([]string, 0, len(entries))
	for _, e := range entries {
		var desc bytes.Buffer
		if err := r.md.Convert([]byte(sourceEscaper.Replace(e.Description)), &desc); err != nil {
			return r.fail(ctx, container, page.TimelineContainerID, content.ExperienceResource, experienceErrorHTML, err)
		}
		f, err := execute("experience-entry", experienceView{
			ExperienceEntry: e,
			Description:     template.HTML(desc.String()),
		})
		if err != nil {
			return r.fail(ctx, container, page.TimelineContainerID, content.ExperienceResource, experienceErrorHTML, err)
		}
		fragments = append(fragments, f)
	}
	return r.fill(ctx, container, page.TimelineContainerID, content.ExperienceResource, experienceErrorHTML, fragments)
}

type detailView struct {
	ID     string
	Detail *models.ProjectDetail
}

// ProjectDetail renders the detail page named by the id query parameter.
// Without an id nothing is fetched. Unlike the list renderers, the failure
// message includes the cause.
func (r *Renderer) ProjectDetail(ctx context.Context, lookup page.Lookup, loc page.Location) error {
	container := lookup(page.ProjectDetailContainerID)
	if container == nil {
		return ErrNoContainer
	}

	id := loc.Param("id")
	resource, err := content.DetailResource(id)
	if err != nil {
		return r.failDetail(ctx, container, id, err)
	}

	detail, err := r.projects.GetByID(ctx, id)
	if err != nil {
		return r.failDetail(ctx, container, resource, err)
	}

	markup, err := execute("project-detail", detailView{ID: id, Detail: detail})
	if err != nil {
		return r.failDetail(ctx, container, resource, err)
	}
	if err := container.SetInnerHTML(markup); err != nil {
		return r.failDetail(ctx, container, resource, err)
	}
	return nil
}

// fill clears the container and appends each fragment in order
func (r *Renderer) fill(ctx context.Context, c page.Container, id, resource, failure string, fragments []string) error {
	if err := c.SetInnerHTML(""); err != nil {
		return r.fail(ctx, c, id, resource, failure, err)
	}
	for _, f := range fragments {
		if err := c.AppendHTML(f); err != nil {
			return r.fail(ctx, c, id, resource, failure, err)
		}
	}
	return nil
}

func (r *Renderer) fail(ctx context.Context, c page.Container, id, resource, message string, cause error) error {
	r.logger.ErrorContext(ctx, "Failed to render container",
		"container", id,
		"resource", resource,
		"error", cause,
	)
	if err := c.SetInnerHTML(message); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}

func (r *Renderer) failDetail(ctx context.Context, c page.Container, resource string, cause error) error {
	message, err := execute("detail-error", DetailMessage(cause))
	if err != nil {
		message = "<p>Error loading project details.</p>"
	}
	return r.fail(ctx, c, page.ProjectDetailContainerID, resource, message, cause)
}

// DetailMessage is the user-facing text for a detail page failure
func DetailMessage(err error) string {
	var se *content.StatusError
	switch {
	case errors.Is(err, content.ErrMissingID):
		return "No project ID provided in URL."
	case errors.Is(err, content.ErrInvalidID):
		return "Invalid project ID."
	case errors.As(err, &se):
		return fmt.Sprintf("Project file not found. (Status: %d)", se.Code)
	default:
		return err.Error()
	}
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("executing %s: %w", name, err)
	}
	return buf.String(), nil
}
