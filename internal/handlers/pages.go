package handlers

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"folio.dev/internal/page"
	"folio.dev/internal/render"
)

// PageHandler serves page shells with their containers filled in
type PageHandler struct {
	renderer *render.Renderer
	site     fs.FS
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(renderer *render.Renderer, site fs.FS) *PageHandler {
	return &PageHandler{renderer: renderer, site: site}
}

// ServePage handles GET / and GET /{page}.html
func (h *PageHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "page")
	if name == "" {
		name = "index.html"
	}
	if !strings.HasSuffix(name, ".html") || !fs.ValidPath(name) {
		http.NotFound(w, r)
		return
	}

	shell, err := fs.ReadFile(h.site, name)
	if errors.Is(err, fs.ErrNotExist) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to read page shell", "page", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	loc := page.Location{Path: r.URL.Path, Query: r.URL.Query()}
	doc, err := h.renderer.Document(r.Context(), shell, loc)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to parse page shell", "page", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := doc.Render(w); err != nil {
		slog.ErrorContext(r.Context(), "Failed to write page", "page", name, "error", err)
	}
}
