package services

import (
	"context"

	"folio.dev/internal/content"
	"folio.dev/internal/models"
)

// TimelineService loads the education and experience timelines
type TimelineService struct {
	src content.Source
}

// NewTimelineService creates a new TimelineService
func NewTimelineService(src content.Source) *TimelineService {
	return &TimelineService{src: src}
}

// Education returns the education timeline in file order
func (s *TimelineService) Education(ctx context.Context) ([]models.EducationEntry, error) {
	return content.LoadList[models.EducationEntry](ctx, s.src, content.EducationResource)
}

// Experience returns the work experience timeline in file order
func (s *TimelineService) Experience(ctx context.Context) ([]models.ExperienceEntry, error) {
	return content.LoadList[models.ExperienceEntry](ctx, s.src, content.ExperienceResource)
}
