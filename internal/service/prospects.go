package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/morningstar-ai/preview-engine/internal/dto"
	"github.com/morningstar-ai/preview-engine/internal/entity"
	"github.com/morningstar-ai/preview-engine/internal/repository"
)

// ProspectDetails is a prospect with the context the operator view shows
// next to it.
type ProspectDetails struct {
	Prospect       *entity.Prospect `json:"prospect"`
	LatestCapture  *entity.Capture  `json:"latest_capture"`
	PendingPreview *entity.Preview  `json:"pending_preview"`
}

// ProspectsService exposes read/write operations on the pipeline.
type ProspectsService struct {
	prospects repository.ProspectsRepository
	captures  repository.CapturesRepository
	previews  repository.PreviewsRepository
}

// NewProspectsService creates a new instance of ProspectsService.
func NewProspectsService(
	prospects repository.ProspectsRepository,
	captures repository.CapturesRepository,
	previews repository.PreviewsRepository,
) *ProspectsService {
	return &ProspectsService{
		prospects: prospects,
		captures:  captures,
		previews:  previews,
	}
}

// List returns prospects respecting pagination defaults.
func (s *ProspectsService) List(ctx context.Context, filter dto.ProspectListFilter) ([]entity.Prospect, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 200 {
		filter.Limit = 200
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.prospects.List(ctx, filter)
}

// GetDetails returns one prospect with its latest capture and pending
// preview, when either exists.
func (s *ProspectsService) GetDetails(ctx context.Context, id uuid.UUID) (*ProspectDetails, error) {
	prospect, err := s.prospects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &ProspectDetails{Prospect: prospect}

	capture, err := s.captures.LatestForProspect(ctx, id)
	switch {
	case err == nil:
		details.LatestCapture = capture
	case !errors.Is(err, repository.ErrCaptureNotFound):
		return nil, err
	}

	preview, err := s.previews.PendingForProspect(ctx, id)
	switch {
	case err == nil:
		details.PendingPreview = preview
	case !errors.Is(err, repository.ErrPreviewNotFound):
		return nil, err
	}

	return details, nil
}

// Update patches the whitelisted prospect fields.
func (s *ProspectsService) Update(ctx context.Context, update dto.ProspectUpdate) (*entity.Prospect, error) {
	if update.ID == uuid.Nil {
		return nil, ValidationError{Message: "id is required"}
	}
	return s.prospects.Update(ctx, update)
}
