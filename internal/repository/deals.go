package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/morningstar-ai/preview-engine/internal/dto"
	"github.com/morningstar-ai/preview-engine/internal/entity"
)

// ErrDealNotFound indicates no deal row matches the lookup.
var ErrDealNotFound = errors.New("deal not found")

// DealsRepository describes persistence operations for deals.
type DealsRepository interface {
	UpsertMeeting(ctx context.Context, prospectID uuid.UUID, meetingAt time.Time, meetingURL string) error
	MarkWon(ctx context.Context, dealID uuid.UUID, paymentIntent string) error
	RevenueSummary(ctx context.Context) (dto.RevenueSummary, error)
}

// PGXDealsRepository implements DealsRepository using pgx.
type PGXDealsRepository struct {
	pool pgxPool
}

// NewPGXDealsRepository wires a pgx backed repository.
func NewPGXDealsRepository(pool *pgxpool.Pool) *PGXDealsRepository {
	return &PGXDealsRepository{pool: pool}
}

// UpsertMeeting records a booked meeting on the prospect's deal, creating
// the deal if it does not exist yet.
func (r *PGXDealsRepository) UpsertMeeting(ctx context.Context, prospectID uuid.UUID, meetingAt time.Time, meetingURL string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO deals (prospect_id, status, meeting_booked, meeting_at, meeting_url, updated_at)
		VALUES ($1, $2, TRUE, $3, NULLIF($4, ''), NOW())
		ON CONFLICT (prospect_id) DO UPDATE SET
			status = EXCLUDED.status,
			meeting_booked = TRUE,
			meeting_at = EXCLUDED.meeting_at,
			meeting_url = EXCLUDED.meeting_url,
			updated_at = NOW()`,
		prospectID, entity.DealStatusMeetingBooked, meetingAt, meetingURL)
	if err != nil {
		return fmt.Errorf("upsert meeting: %w", err)
	}
	return nil
}

// MarkWon closes a deal as won with its payment reference.
func (r *PGXDealsRepository) MarkWon(ctx context.Context, dealID uuid.UUID, paymentIntent string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE deals SET
			status = $1,
			stripe_payment_intent = NULLIF($2, ''),
			paid_at = NOW(),
			updated_at = NOW()
		WHERE id = $3`,
		entity.DealStatusWon, paymentIntent, dealID)
	if err != nil {
		return fmt.Errorf("mark deal won: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDealNotFound
	}
	return nil
}

// RevenueSummary aggregates won deals and booked meetings.
func (r *PGXDealsRepository) RevenueSummary(ctx context.Context) (dto.RevenueSummary, error) {
	var summary dto.RevenueSummary
	err := r.pool.QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE status = $1),
			COALESCE(SUM(amount_aed) FILTER (WHERE status = $1), 0),
			COUNT(*) FILTER (WHERE meeting_booked)
		FROM deals`, entity.DealStatusWon).Scan(
		&summary.WonDeals,
		&summary.TotalAED,
		&summary.MeetingsSet,
	)
	if err != nil {
		return dto.RevenueSummary{}, fmt.Errorf("revenue summary: %w", err)
	}
	return summary, nil
}
