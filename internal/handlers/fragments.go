package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"folio.dev/internal/dom"
	"folio.dev/internal/page"
	"folio.dev/internal/render"
)

type fragment struct {
	container string
	path      string
}

var fragments = map[string]fragment{
	"projects":       {container: page.ProjectContainerID, path: "/projects.html"},
	"education":      {container: page.TimelineContainerID, path: "/" + page.EducationPage},
	"experience":     {container: page.TimelineContainerID, path: "/experience.html"},
	"project-detail": {container: page.ProjectDetailContainerID, path: "/project-detail.html"},
}

// FragmentHandler serves the inner HTML of a single container, for pages
// that swap content in with HTMX instead of reloading
type FragmentHandler struct {
	renderer *render.Renderer
}

// NewFragmentHandler creates a new FragmentHandler
func NewFragmentHandler(renderer *render.Renderer) *FragmentHandler {
	return &FragmentHandler{renderer: renderer}
}

// ServeFragment handles GET /fragments/{name}. Render failures still answer
// 200 so the error message is swapped into the page.
func (h *FragmentHandler) ServeFragment(w http.ResponseWriter, r *http.Request) {
	f, ok := fragments[chi.URLParam(r, "name")]
	if !ok {
		http.NotFound(w, r)
		return
	}

	el := dom.NewElement("div", f.container)
	lookup := func(id string) page.Element {
		if id == f.container {
			return el
		}
		return nil
	}
	_ = h.renderer.Route(r.Context(), lookup, page.Location{Path: f.path, Query: r.URL.Query()})

	markup, err := el.InnerHTML()
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to serialize fragment", "container", f.container, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(markup))
}
