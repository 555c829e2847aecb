package services

import (
	"context"
	"fmt"

	"folio.dev/internal/content"
	"folio.dev/internal/models"
)

// ProjectService loads project cards and detail pages
type ProjectService struct {
	src content.Source
}

// NewProjectService creates a new ProjectService
func NewProjectService(src content.Source) *ProjectService {
	return &ProjectService{src: src}
}

// GetAll returns all projects in file order
func (s *ProjectService) GetAll(ctx context.Context) ([]models.Project, error) {
	return content.LoadList[models.Project](ctx, s.src, content.ProjectsResource)
}

// GetByID returns the detail page of a specific project
func (s *ProjectService) GetByID(ctx context.Context, id string) (*models.ProjectDetail, error) {
	resource, err := content.DetailResource(id)
	if err != nil {
		return nil, err
	}
	detail, err := content.Load[models.ProjectDetail](ctx, s.src, resource)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", id, err)
	}
	return &detail, nil
}
