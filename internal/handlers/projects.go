package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"folio.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.GetAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load projects", "error", err)
		respondError(w, contentStatus(err), "Projects unavailable")
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(r.Context(), id)
	if err != nil {
		status := contentStatus(err)
		if status == http.StatusNotFound {
			respondError(w, status, "Project not found")
			return
		}
		slog.ErrorContext(r.Context(), "Failed to load project", "id", id, "error", err)
		respondError(w, status, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, project)
}
