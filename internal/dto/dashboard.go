package dto

import (
	"time"

	"github.com/morningstar-ai/preview-engine/internal/entity"
)

// RevenueSummary aggregates won deals.
type RevenueSummary struct {
	WonDeals    int     `json:"won_deals"`
	TotalAED    float64 `json:"total_aed"`
	MeetingsSet int     `json:"meetings_set"`
}

// Dashboard is the single payload backing the review dashboard.
type Dashboard struct {
	Funnel          map[string]int               `json:"funnel"`
	Revenue         RevenueSummary               `json:"revenue"`
	PendingReviews  []entity.PreviewWithProspect `json:"pending_reviews"`
	Notifications   []entity.Notification        `json:"notifications"`
	RecentProspects []entity.Prospect            `json:"recent_prospects"`
	GeneratedAt     time.Time                    `json:"generated_at"`
}
