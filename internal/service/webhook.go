package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/morningstar-ai/preview-engine/internal/dto"
	"github.com/morningstar-ai/preview-engine/internal/entity"
	"github.com/morningstar-ai/preview-engine/internal/repository"
)

// WebhookService processes payment and scheduling callbacks. The handler
// always acks first, so processing errors only surface in logs.
type WebhookService struct {
	prospects     repository.ProspectsRepository
	deals         repository.DealsRepository
	notifications repository.NotificationsRepository
}

// NewWebhookService creates a new instance of WebhookService.
func NewWebhookService(
	prospects repository.ProspectsRepository,
	deals repository.DealsRepository,
	notifications repository.NotificationsRepository,
) *WebhookService {
	return &WebhookService{
		prospects:     prospects,
		deals:         deals,
		notifications: notifications,
	}
}

// Process dispatches a webhook body by source.
func (s *WebhookService) Process(ctx context.Context, source string, body []byte) error {
	switch source {
	case "stripe":
		return s.processStripe(ctx, body)
	case "calendly":
		return s.processCalendly(ctx, body)
	default:
		return fmt.Errorf("unknown webhook source: %q", source)
	}
}

// processStripe closes the deal and the prospect on a successful payment.
// The payment intent's metadata carries our deal and prospect IDs.
func (s *WebhookService) processStripe(ctx context.Context, body []byte) error {
	var event dto.StripeEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("parse stripe event: %w", err)
	}

	if event.Type != "payment_intent.succeeded" {
		return nil
	}

	intent := event.Data.Object

	if raw, ok := intent.Metadata["deal_id"]; ok {
		dealID, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("parse deal_id %q: %w", raw, err)
		}
		if err := s.deals.MarkWon(ctx, dealID, intent.ID); err != nil && !errors.Is(err, repository.ErrDealNotFound) {
			return err
		}
	}

	raw, ok := intent.Metadata["prospect_id"]
	if !ok {
		return nil
	}
	prospectID, err := uuid.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse prospect_id %q: %w", raw, err)
	}

	if err := s.prospects.SetStatus(ctx, prospectID, entity.ProspectStatusWon); err != nil {
		return err
	}

	notification := &entity.Notification{
		Type:       entity.NotificationPaymentReceived,
		ProspectID: &prospectID,
		Message:    fmt.Sprintf("💰 Payment received! AED %.0f", float64(intent.Amount)/100),
	}
	if err := s.notifications.Insert(ctx, notification); err != nil {
		log.Printf("stripe notification failed prospect=%s err=%v", prospectID, err)
	}
	return nil
}

// processCalendly books a meeting on the prospect's deal, matched by invitee
// email. Unknown invitees are ignored.
func (s *WebhookService) processCalendly(ctx context.Context, body []byte) error {
	var event dto.CalendlyEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("parse calendly event: %w", err)
	}

	if event.Event != "invitee.created" || event.Payload.Email == "" {
		return nil
	}

	prospect, err := s.prospects.FindByEmail(ctx, event.Payload.Email)
	if err != nil {
		if errors.Is(err, repository.ErrProspectNotFound) {
			return nil
		}
		return err
	}

	startTime := event.Payload.ScheduledEvent.StartTime
	if err := s.deals.UpsertMeeting(ctx, prospect.ID, startTime, event.Payload.EventDetail.URI); err != nil {
		return err
	}

	if err := s.prospects.SetStatus(ctx, prospect.ID, entity.ProspectStatusMeetingBooked); err != nil {
		return err
	}

	notification := &entity.Notification{
		Type:       entity.NotificationMeetingBooked,
		ProspectID: &prospect.ID,
		Message:    fmt.Sprintf("📅 Meeting booked! %s at %s", prospect.BusinessName, startTime.Format("Mon, 2 Jan 2006 15:04")),
	}
	if err := s.notifications.Insert(ctx, notification); err != nil {
		log.Printf("calendly notification failed prospect=%s err=%v", prospect.ID, err)
	}
	return nil
}
