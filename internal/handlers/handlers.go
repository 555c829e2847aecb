package handlers

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"folio.dev/internal/config"
	"folio.dev/internal/content"
	"folio.dev/internal/middleware"
	"folio.dev/internal/render"
	"folio.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router. Page shells and
// static assets come from site; JSON records come from src, which may be the
// same directory or a remote copy of the site.
func SetupRoutes(cfg *config.Config, src content.Source, site fs.FS) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)

	// Initialize services
	projectService := services.NewProjectService(src)
	timelineService := services.NewTimelineService(src)
	renderer := render.New(projectService, timelineService, slog.Default())

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService)
	fragmentHandler := NewFragmentHandler(renderer)
	pageHandler := NewPageHandler(renderer, site)

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "HX-Request", "HX-Current-URL", "HX-Target"},
		MaxAge:         300,
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(corsHandler)

		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// HTML partials, one container at a time
	r.Route("/fragments", func(r chi.Router) {
		r.Use(corsHandler)
		r.Get("/{name}", fragmentHandler.ServeFragment)
	})

	// Static files
	if static, err := fs.Sub(site, "static"); err == nil {
		r.Handle("/static/*", http.StripPrefix("/static", http.FileServerFS(static)))
	}
	// Raw records, for clients that render in the browser
	if cfg.RemoteBase == "" {
		if data, err := fs.Sub(site, "data"); err == nil {
			r.Handle("/data/*", http.StripPrefix("/data", http.FileServerFS(data)))
		}
	}

	// Rendered pages
	r.Get("/", pageHandler.ServePage)
	r.Get("/{page}", pageHandler.ServePage)

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Error encoding JSON", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// contentStatus maps a content error to the response status
func contentStatus(err error) int {
	switch {
	case content.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, content.ErrMissingID), errors.Is(err, content.ErrInvalidID):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}
