package handler

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/morningstar-ai/preview-engine/internal/dto"
	"github.com/morningstar-ai/preview-engine/internal/entity"
	"github.com/morningstar-ai/preview-engine/internal/service"
)

type mockCaptureService struct {
	ingest func(ctx context.Context, req dto.CaptureRequest) (*dto.CaptureResult, error)
	scan   func(ctx context.Context, req dto.ScanRequest) (*dto.CaptureResult, error)
}

func (m *mockCaptureService) Ingest(ctx context.Context, req dto.CaptureRequest) (*dto.CaptureResult, error) {
	if m.ingest != nil {
		return m.ingest(ctx, req)
	}
	return nil, errors.New("ingest not implemented")
}

func (m *mockCaptureService) Scan(ctx context.Context, req dto.ScanRequest) (*dto.CaptureResult, error) {
	if m.scan != nil {
		return m.scan(ctx, req)
	}
	return nil, errors.New("scan not implemented")
}

type mockGenerateService struct {
	generate func(ctx context.Context, req dto.GenerateRequest) (*dto.GenerateResult, error)
}

func (m *mockGenerateService) Generate(ctx context.Context, req dto.GenerateRequest) (*dto.GenerateResult, error) {
	if m.generate != nil {
		return m.generate(ctx, req)
	}
	return nil, errors.New("generate not implemented")
}

type mockPreviewService struct {
	serve  func(ctx context.Context, id uuid.UUID) (service.ServedPreview, error)
	track  func(ctx context.Context, req dto.TrackRequest) error
	review func(ctx context.Context, req dto.ApproveRequest) (*dto.ApproveResult, error)
}

func (m *mockPreviewService) Serve(ctx context.Context, id uuid.UUID) (service.ServedPreview, error) {
	if m.serve != nil {
		return m.serve(ctx, id)
	}
	return service.ServedPreview{}, errors.New("serve not implemented")
}

func (m *mockPreviewService) Track(ctx context.Context, req dto.TrackRequest) error {
	if m.track != nil {
		return m.track(ctx, req)
	}
	return nil
}

func (m *mockPreviewService) Review(ctx context.Context, req dto.ApproveRequest) (*dto.ApproveResult, error) {
	if m.review != nil {
		return m.review(ctx, req)
	}
	return nil, errors.New("review not implemented")
}

type mockProspectsService struct {
	list       func(ctx context.Context, filter dto.ProspectListFilter) ([]entity.Prospect, error)
	getDetails func(ctx context.Context, id uuid.UUID) (*service.ProspectDetails, error)
	update     func(ctx context.Context, update dto.ProspectUpdate) (*entity.Prospect, error)
}

func (m *mockProspectsService) List(ctx context.Context, filter dto.ProspectListFilter) ([]entity.Prospect, error) {
	if m.list != nil {
		return m.list(ctx, filter)
	}
	return nil, errors.New("list not implemented")
}

func (m *mockProspectsService) GetDetails(ctx context.Context, id uuid.UUID) (*service.ProspectDetails, error) {
	if m.getDetails != nil {
		return m.getDetails(ctx, id)
	}
	return nil, errors.New("getDetails not implemented")
}

func (m *mockProspectsService) Update(ctx context.Context, update dto.ProspectUpdate) (*entity.Prospect, error) {
	if m.update != nil {
		return m.update(ctx, update)
	}
	return nil, errors.New("update not implemented")
}

type mockDashboardService struct {
	snapshot func(ctx context.Context) (*dto.Dashboard, error)
}

func (m *mockDashboardService) Snapshot(ctx context.Context) (*dto.Dashboard, error) {
	if m.snapshot != nil {
		return m.snapshot(ctx)
	}
	return nil, errors.New("snapshot not implemented")
}

type mockWebhookService struct {
	process func(ctx context.Context, source string, body []byte) error
}

func (m *mockWebhookService) Process(ctx context.Context, source string, body []byte) error {
	if m.process != nil {
		return m.process(ctx, source, body)
	}
	return errors.New("process not implemented")
}
