package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/morningstar-ai/preview-engine/internal/dto"
	"github.com/morningstar-ai/preview-engine/internal/entity"
	"github.com/morningstar-ai/preview-engine/internal/repository"
)

// ServedPreview is what the public preview route renders: the page itself or
// a styled not-found/expired stand-in.
type ServedPreview struct {
	Status int
	HTML   string
}

const notFoundPage = `<!DOCTYPE html><html><head><title>Preview Not Found</title></head>
<body style="font-family:sans-serif;display:flex;align-items:center;justify-content:center;height:100vh;background:#f5f5f5;">
  <div style="text-align:center;padding:40px;">
    <div style="font-size:48px;margin-bottom:16px;">🔍</div>
    <h2 style="color:#1B3A5C;">Preview Not Found</h2>
    <p style="color:#666;">This preview link may be invalid or has been deleted.</p>
  </div>
</body></html>`

const expiredPage = `<!DOCTYPE html><html><head><title>Preview Expired</title></head>
<body style="font-family:sans-serif;display:flex;align-items:center;justify-content:center;height:100vh;background:#f5f5f5;">
  <div style="text-align:center;padding:40px;">
    <div style="font-size:48px;margin-bottom:16px;">⏰</div>
    <h2 style="color:#1B3A5C;">This Preview Has Expired</h2>
    <p style="color:#666;">This preview link had a limited lifetime and has now expired.</p>
    <p style="color:#666;">Contact <strong>MorningStar.ai</strong> to request a fresh preview.</p>
    <a href="https://wa.me/971XXXXXXXXX" style="display:inline-block;margin-top:20px;background:#25D366;color:#fff;padding:12px 28px;text-decoration:none;font-weight:700;">
      💬 Contact MorningStar.ai
    </a>
  </div>
</body></html>`

// PreviewService serves generated previews, records engagement events and
// applies review decisions.
type PreviewService struct {
	previews      repository.PreviewsRepository
	prospects     repository.ProspectsRepository
	notifications repository.NotificationsRepository
}

// NewPreviewService creates a new instance of PreviewService.
func NewPreviewService(
	previews repository.PreviewsRepository,
	prospects repository.ProspectsRepository,
	notifications repository.NotificationsRepository,
) *PreviewService {
	return &PreviewService{
		previews:      previews,
		prospects:     prospects,
		notifications: notifications,
	}
}

// Serve returns the preview HTML for a public link, counting the view. A
// first view notifies the dashboard and, if outreach was already sent, moves
// the prospect to replied. Unknown and expired previews get styled pages
// instead of bare errors.
func (s *PreviewService) Serve(ctx context.Context, id uuid.UUID) (ServedPreview, error) {
	preview, err := s.previews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPreviewNotFound) {
			return ServedPreview{Status: http.StatusNotFound, HTML: notFoundPage}, nil
		}
		return ServedPreview{}, err
	}

	if time.Now().After(preview.ExpiresAt) {
		if _, err := s.previews.SetReviewStatus(ctx, id, entity.ReviewStatusExpired, nil); err != nil {
			log.Printf("preview=%s expiry update failed err=%v", id, err)
		}
		return ServedPreview{Status: http.StatusGone, HTML: expiredPage}, nil
	}

	if err := s.previews.MarkViewed(ctx, id); err != nil {
		log.Printf("preview=%s view count update failed err=%v", id, err)
	}

	if preview.ViewCount == 0 {
		s.notifyFirstView(ctx, preview)
	}

	return ServedPreview{Status: http.StatusOK, HTML: preview.HTML}, nil
}

func (s *PreviewService) notifyFirstView(ctx context.Context, preview *entity.PreviewWithProspect) {
	name := preview.BusinessName
	if name == "" {
		name = "Prospect"
	}
	notification := &entity.Notification{
		Type:       entity.NotificationPreviewViewed,
		ProspectID: &preview.ProspectID,
		PreviewID:  &preview.ID,
		Message:    fmt.Sprintf("🎉 %s just viewed their preview for the first time!", name),
	}
	if err := s.notifications.Insert(ctx, notification); err != nil {
		log.Printf("preview=%s first-view notification failed err=%v", preview.ID, err)
	}

	if err := s.prospects.SetStatusIf(ctx, preview.ProspectID, entity.ProspectStatusReplied, entity.ProspectStatusOutreachSent); err != nil {
		log.Printf("preview=%s prospect status update failed err=%v", preview.ID, err)
	}
}

// Track records a view or CTA click beacon from the tracking script. Errors
// never surface to the caller; the endpoint always acks so tracking cannot
// break the page.
func (s *PreviewService) Track(ctx context.Context, req dto.TrackRequest) error {
	if req.PreviewID == uuid.Nil || req.Event == "" {
		return nil
	}

	preview, err := s.previews.GetByID(ctx, req.PreviewID)
	if err != nil {
		if errors.Is(err, repository.ErrPreviewNotFound) {
			return nil
		}
		return err
	}

	switch req.Event {
	case dto.TrackEventView:
		return s.previews.MarkViewed(ctx, req.PreviewID)
	case dto.TrackEventCTAClick:
		if err := s.previews.SetCTAClicked(ctx, req.PreviewID); err != nil {
			return err
		}

		notification := &entity.Notification{
			Type:       entity.NotificationCTAClicked,
			ProspectID: &preview.ProspectID,
			PreviewID:  &preview.ID,
			Message:    fmt.Sprintf("🔥 %s clicked the CTA button on their preview!", preview.BusinessName),
		}
		if err := s.notifications.Insert(ctx, notification); err != nil {
			return err
		}

		return s.prospects.SetStatus(ctx, preview.ProspectID, entity.ProspectStatusReplied)
	}

	return nil
}

var reviewStatusByAction = map[string]string{
	dto.ReviewActionApprove:  entity.ReviewStatusApproved,
	dto.ReviewActionReject:   entity.ReviewStatusRejected,
	dto.ReviewActionMarkSent: entity.ReviewStatusSent,
}

// Review applies a reviewer decision to a pending preview. Marking a preview
// sent also moves the prospect into outreach.
func (s *PreviewService) Review(ctx context.Context, req dto.ApproveRequest) (*dto.ApproveResult, error) {
	if req.PreviewID == uuid.Nil || req.Action == "" {
		return nil, ValidationError{Message: "preview_id and action are required"}
	}

	status, ok := reviewStatusByAction[req.Action]
	if !ok {
		return nil, ValidationError{Message: "action must be: approve | reject | mark_sent"}
	}

	preview, err := s.previews.SetReviewStatus(ctx, req.PreviewID, status, req.Notes)
	if err != nil {
		return nil, err
	}

	if req.Action == dto.ReviewActionMarkSent {
		if err := s.prospects.SetStatus(ctx, preview.ProspectID, entity.ProspectStatusOutreachSent); err != nil {
			return nil, fmt.Errorf("mark prospect outreach: %w", err)
		}
	}

	messages := map[string]string{
		dto.ReviewActionApprove:  fmt.Sprintf("✅ Preview approved for %s", preview.BusinessName),
		dto.ReviewActionReject:   fmt.Sprintf("❌ Preview rejected for %s", preview.BusinessName),
		dto.ReviewActionMarkSent: fmt.Sprintf("📤 Preview marked as sent to %s", preview.BusinessName),
	}

	notification := &entity.Notification{
		Type:       entity.NotificationPreviewReady,
		ProspectID: &preview.ProspectID,
		PreviewID:  &preview.ID,
		Message:    messages[req.Action],
		IsRead:     true,
	}
	if err := s.notifications.Insert(ctx, notification); err != nil {
		log.Printf("preview=%s review notification failed err=%v", preview.ID, err)
	}

	return &dto.ApproveResult{
		PreviewID:  preview.ID,
		NewStatus:  status,
		PreviewURL: preview.PreviewURL,
	}, nil
}
