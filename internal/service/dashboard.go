package service

import (
	"context"
	"fmt"
	"time"

	"github.com/morningstar-ai/preview-engine/internal/dto"
	"github.com/morningstar-ai/preview-engine/internal/repository"
)

const (
	pendingReviewLimit  = 20
	notificationLimit   = 30
	recentProspectLimit = 50
)

// DashboardService assembles the single payload the review dashboard polls.
type DashboardService struct {
	prospects     repository.ProspectsRepository
	previews      repository.PreviewsRepository
	notifications repository.NotificationsRepository
	deals         repository.DealsRepository
}

// NewDashboardService creates a new instance of DashboardService.
func NewDashboardService(
	prospects repository.ProspectsRepository,
	previews repository.PreviewsRepository,
	notifications repository.NotificationsRepository,
	deals repository.DealsRepository,
) *DashboardService {
	return &DashboardService{
		prospects:     prospects,
		previews:      previews,
		notifications: notifications,
		deals:         deals,
	}
}

// Snapshot gathers funnel counts, revenue, the pending review queue, unread
// notifications and recent prospects in one call.
func (s *DashboardService) Snapshot(ctx context.Context) (*dto.Dashboard, error) {
	funnel, err := s.prospects.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("funnel counts: %w", err)
	}

	revenue, err := s.deals.RevenueSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("revenue summary: %w", err)
	}

	pending, err := s.previews.ListPendingReview(ctx, pendingReviewLimit)
	if err != nil {
		return nil, fmt.Errorf("pending reviews: %w", err)
	}

	notifications, err := s.notifications.ListUnread(ctx, notificationLimit)
	if err != nil {
		return nil, fmt.Errorf("unread notifications: %w", err)
	}

	recent, err := s.prospects.List(ctx, dto.ProspectListFilter{Limit: recentProspectLimit})
	if err != nil {
		return nil, fmt.Errorf("recent prospects: %w", err)
	}

	return &dto.Dashboard{
		Funnel:          funnel,
		Revenue:         revenue,
		PendingReviews:  pending,
		Notifications:   notifications,
		RecentProspects: recent,
		GeneratedAt:     time.Now().UTC(),
	}, nil
}
