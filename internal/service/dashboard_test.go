package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/morningstar-ai/preview-engine/internal/dto"
	"github.com/morningstar-ai/preview-engine/internal/entity"
)

func TestDashboardService_Snapshot(t *testing.T) {
	prospects := &mockProspectsRepository{
		countByStatus: func(ctx context.Context) (map[string]int, error) {
			return map[string]int{"new": 4, "preview_ready": 2}, nil
		},
		list: func(ctx context.Context, filter dto.ProspectListFilter) ([]entity.Prospect, error) {
			if filter.Limit != 50 {
				t.Fatalf("expected recent prospects limit 50, got %d", filter.Limit)
			}
			return []entity.Prospect{{ID: uuid.New(), BusinessName: "Acme"}}, nil
		},
	}
	previews := &mockPreviewsRepository{
		listPending: func(ctx context.Context, limit int) ([]entity.PreviewWithProspect, error) {
			if limit != 20 {
				t.Fatalf("expected pending limit 20, got %d", limit)
			}
			return []entity.PreviewWithProspect{{BusinessName: "Acme"}}, nil
		},
	}
	notifications := &mockNotificationsRepository{
		listUnread: func(ctx context.Context, limit int) ([]entity.Notification, error) {
			if limit != 30 {
				t.Fatalf("expected notification limit 30, got %d", limit)
			}
			return []entity.Notification{{Message: "hi"}}, nil
		},
	}
	deals := &mockDealsRepository{
		revenueSummary: func(ctx context.Context) (dto.RevenueSummary, error) {
			return dto.RevenueSummary{WonDeals: 1, TotalAED: 15000, MeetingsSet: 3}, nil
		},
	}

	svc := NewDashboardService(prospects, previews, notifications, deals)
	dashboard, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dashboard.Funnel["new"] != 4 {
		t.Fatalf("unexpected funnel: %+v", dashboard.Funnel)
	}
	if dashboard.Revenue.TotalAED != 15000 {
		t.Fatalf("unexpected revenue: %+v", dashboard.Revenue)
	}
	if len(dashboard.PendingReviews) != 1 || len(dashboard.Notifications) != 1 || len(dashboard.RecentProspects) != 1 {
		t.Fatalf("unexpected dashboard sections: %+v", dashboard)
	}
	if dashboard.GeneratedAt.IsZero() {
		t.Fatalf("expected generated_at timestamp")
	}
}

func TestDashboardService_Snapshot_PropagatesErrors(t *testing.T) {
	prospects := &mockProspectsRepository{
		countByStatus: func(ctx context.Context) (map[string]int, error) {
			return nil, errors.New("db down")
		},
	}
	svc := NewDashboardService(prospects, &mockPreviewsRepository{}, &mockNotificationsRepository{}, &mockDealsRepository{})

	if _, err := svc.Snapshot(context.Background()); err == nil {
		t.Fatalf("expected error propagated")
	}
}
