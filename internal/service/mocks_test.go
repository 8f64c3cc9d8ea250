package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/morningstar-ai/preview-engine/internal/dto"
	"github.com/morningstar-ai/preview-engine/internal/entity"
	"github.com/morningstar-ai/preview-engine/internal/extract"
	"github.com/morningstar-ai/preview-engine/internal/llm"
	"github.com/morningstar-ai/preview-engine/internal/repository"
)

type mockProspectsRepository struct {
	upsert        func(ctx context.Context, prospect *entity.Prospect) (*entity.Prospect, error)
	getByID       func(ctx context.Context, id uuid.UUID) (*entity.Prospect, error)
	findByEmail   func(ctx context.Context, email string) (*entity.Prospect, error)
	list          func(ctx context.Context, filter dto.ProspectListFilter) ([]entity.Prospect, error)
	update        func(ctx context.Context, update dto.ProspectUpdate) (*entity.Prospect, error)
	setStatus     func(ctx context.Context, id uuid.UUID, status string) error
	setStatusIf   func(ctx context.Context, id uuid.UUID, status string, from ...string) error
	setAnalysis   func(ctx context.Context, id uuid.UUID, vertical, subVertical string, websiteScore int) error
	countByStatus func(ctx context.Context) (map[string]int, error)
}

func (m *mockProspectsRepository) UpsertByWebsiteURL(ctx context.Context, prospect *entity.Prospect) (*entity.Prospect, error) {
	if m.upsert != nil {
		return m.upsert(ctx, prospect)
	}
	return nil, errors.New("upsert not implemented")
}

func (m *mockProspectsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Prospect, error) {
	if m.getByID != nil {
		return m.getByID(ctx, id)
	}
	return nil, errors.New("getByID not implemented")
}

func (m *mockProspectsRepository) FindByEmail(ctx context.Context, email string) (*entity.Prospect, error) {
	if m.findByEmail != nil {
		return m.findByEmail(ctx, email)
	}
	return nil, errors.New("findByEmail not implemented")
}

func (m *mockProspectsRepository) List(ctx context.Context, filter dto.ProspectListFilter) ([]entity.Prospect, error) {
	if m.list != nil {
		return m.list(ctx, filter)
	}
	return nil, errors.New("list not implemented")
}

func (m *mockProspectsRepository) Update(ctx context.Context, update dto.ProspectUpdate) (*entity.Prospect, error) {
	if m.update != nil {
		return m.update(ctx, update)
	}
	return nil, errors.New("update not implemented")
}

func (m *mockProspectsRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	if m.setStatus != nil {
		return m.setStatus(ctx, id, status)
	}
	return nil
}

func (m *mockProspectsRepository) SetStatusIf(ctx context.Context, id uuid.UUID, status string, from ...string) error {
	if m.setStatusIf != nil {
		return m.setStatusIf(ctx, id, status, from...)
	}
	return nil
}

func (m *mockProspectsRepository) SetAnalysis(ctx context.Context, id uuid.UUID, vertical, subVertical string, websiteScore int) error {
	if m.setAnalysis != nil {
		return m.setAnalysis(ctx, id, vertical, subVertical, websiteScore)
	}
	return nil
}

func (m *mockProspectsRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	if m.countByStatus != nil {
		return m.countByStatus(ctx)
	}
	return nil, errors.New("countByStatus not implemented")
}

type mockCapturesRepository struct {
	insert      func(ctx context.Context, capture *entity.Capture) (*entity.Capture, error)
	getByID     func(ctx context.Context, id uuid.UUID) (*entity.Capture, error)
	latest      func(ctx context.Context, prospectID uuid.UUID) (*entity.Capture, error)
	setAnalysis func(ctx context.Context, id uuid.UUID, analysis repository.CaptureAnalysis) error
}

func (m *mockCapturesRepository) Insert(ctx context.Context, capture *entity.Capture) (*entity.Capture, error) {
	if m.insert != nil {
		return m.insert(ctx, capture)
	}
	return nil, errors.New("insert not implemented")
}

func (m *mockCapturesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Capture, error) {
	if m.getByID != nil {
		return m.getByID(ctx, id)
	}
	return nil, errors.New("getByID not implemented")
}

func (m *mockCapturesRepository) LatestForProspect(ctx context.Context, prospectID uuid.UUID) (*entity.Capture, error) {
	if m.latest != nil {
		return m.latest(ctx, prospectID)
	}
	return nil, repository.ErrCaptureNotFound
}

func (m *mockCapturesRepository) SetAnalysis(ctx context.Context, id uuid.UUID, analysis repository.CaptureAnalysis) error {
	if m.setAnalysis != nil {
		return m.setAnalysis(ctx, id, analysis)
	}
	return nil
}

type mockPreviewsRepository struct {
	insert          func(ctx context.Context, preview *entity.Preview) error
	getByID         func(ctx context.Context, id uuid.UUID) (*entity.PreviewWithProspect, error)
	pending         func(ctx context.Context, prospectID uuid.UUID) (*entity.Preview, error)
	listPending     func(ctx context.Context, limit int) ([]entity.PreviewWithProspect, error)
	markViewed      func(ctx context.Context, id uuid.UUID) error
	setCTAClicked   func(ctx context.Context, id uuid.UUID) error
	setReviewStatus func(ctx context.Context, id uuid.UUID, status string, notes *string) (*entity.PreviewWithProspect, error)
}

func (m *mockPreviewsRepository) Insert(ctx context.Context, preview *entity.Preview) error {
	if m.insert != nil {
		return m.insert(ctx, preview)
	}
	return errors.New("insert not implemented")
}

func (m *mockPreviewsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PreviewWithProspect, error) {
	if m.getByID != nil {
		return m.getByID(ctx, id)
	}
	return nil, errors.New("getByID not implemented")
}

func (m *mockPreviewsRepository) PendingForProspect(ctx context.Context, prospectID uuid.UUID) (*entity.Preview, error) {
	if m.pending != nil {
		return m.pending(ctx, prospectID)
	}
	return nil, repository.ErrPreviewNotFound
}

func (m *mockPreviewsRepository) ListPendingReview(ctx context.Context, limit int) ([]entity.PreviewWithProspect, error) {
	if m.listPending != nil {
		return m.listPending(ctx, limit)
	}
	return nil, errors.New("listPending not implemented")
}

func (m *mockPreviewsRepository) MarkViewed(ctx context.Context, id uuid.UUID) error {
	if m.markViewed != nil {
		return m.markViewed(ctx, id)
	}
	return nil
}

func (m *mockPreviewsRepository) SetCTAClicked(ctx context.Context, id uuid.UUID) error {
	if m.setCTAClicked != nil {
		return m.setCTAClicked(ctx, id)
	}
	return nil
}

func (m *mockPreviewsRepository) SetReviewStatus(ctx context.Context, id uuid.UUID, status string, notes *string) (*entity.PreviewWithProspect, error) {
	if m.setReviewStatus != nil {
		return m.setReviewStatus(ctx, id, status, notes)
	}
	return nil, errors.New("setReviewStatus not implemented")
}

type mockTemplatesRepository struct {
	getBySlug func(ctx context.Context, slug string) (*entity.Template, error)
}

func (m *mockTemplatesRepository) GetBySlug(ctx context.Context, slug string) (*entity.Template, error) {
	if m.getBySlug != nil {
		return m.getBySlug(ctx, slug)
	}
	return nil, errors.New("getBySlug not implemented")
}

type mockNotificationsRepository struct {
	insert     func(ctx context.Context, notification *entity.Notification) error
	listUnread func(ctx context.Context, limit int) ([]entity.Notification, error)
	inserted   []entity.Notification
}

func (m *mockNotificationsRepository) Insert(ctx context.Context, notification *entity.Notification) error {
	if m.insert != nil {
		return m.insert(ctx, notification)
	}
	m.inserted = append(m.inserted, *notification)
	return nil
}

func (m *mockNotificationsRepository) ListUnread(ctx context.Context, limit int) ([]entity.Notification, error) {
	if m.listUnread != nil {
		return m.listUnread(ctx, limit)
	}
	return nil, errors.New("listUnread not implemented")
}

type mockDealsRepository struct {
	upsertMeeting  func(ctx context.Context, prospectID uuid.UUID, meetingAt time.Time, meetingURL string) error
	markWon        func(ctx context.Context, dealID uuid.UUID, paymentIntent string) error
	revenueSummary func(ctx context.Context) (dto.RevenueSummary, error)
}

func (m *mockDealsRepository) UpsertMeeting(ctx context.Context, prospectID uuid.UUID, meetingAt time.Time, meetingURL string) error {
	if m.upsertMeeting != nil {
		return m.upsertMeeting(ctx, prospectID, meetingAt, meetingURL)
	}
	return errors.New("upsertMeeting not implemented")
}

func (m *mockDealsRepository) MarkWon(ctx context.Context, dealID uuid.UUID, paymentIntent string) error {
	if m.markWon != nil {
		return m.markWon(ctx, dealID, paymentIntent)
	}
	return errors.New("markWon not implemented")
}

func (m *mockDealsRepository) RevenueSummary(ctx context.Context) (dto.RevenueSummary, error) {
	if m.revenueSummary != nil {
		return m.revenueSummary(ctx)
	}
	return dto.RevenueSummary{}, errors.New("revenueSummary not implemented")
}

type mockAnalyst struct {
	detect  func(ctx context.Context, c *extract.Capture) (*llm.TemplateDetection, error)
	extract func(ctx context.Context, c *extract.Capture, vertical, subVertical string) (map[string]any, error)
}

func (m *mockAnalyst) DetectTemplate(ctx context.Context, c *extract.Capture) (*llm.TemplateDetection, error) {
	if m.detect != nil {
		return m.detect(ctx, c)
	}
	return nil, errors.New("detect not implemented")
}

func (m *mockAnalyst) ExtractInjectionData(ctx context.Context, c *extract.Capture, vertical, subVertical string) (map[string]any, error) {
	if m.extract != nil {
		return m.extract(ctx, c, vertical, subVertical)
	}
	return nil, errors.New("extract not implemented")
}

type mockFetcher struct {
	fetch func(ctx context.Context, targetURL string) (io.ReadCloser, int, error)
}

func (m *mockFetcher) Fetch(ctx context.Context, targetURL string) (io.ReadCloser, int, error) {
	if m.fetch != nil {
		return m.fetch(ctx, targetURL)
	}
	return nil, 0, errors.New("fetch not implemented")
}
