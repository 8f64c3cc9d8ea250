package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/morningstar-ai/preview-engine/internal/entity"
)

// ErrPreviewNotFound indicates no preview row matches the lookup.
var ErrPreviewNotFound = errors.New("preview not found")

// PreviewsRepository describes persistence operations for generated
// previews.
type PreviewsRepository interface {
	Insert(ctx context.Context, preview *entity.Preview) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PreviewWithProspect, error)
	PendingForProspect(ctx context.Context, prospectID uuid.UUID) (*entity.Preview, error)
	ListPendingReview(ctx context.Context, limit int) ([]entity.PreviewWithProspect, error)
	MarkViewed(ctx context.Context, id uuid.UUID) error
	SetCTAClicked(ctx context.Context, id uuid.UUID) error
	SetReviewStatus(ctx context.Context, id uuid.UUID, status string, notes *string) (*entity.PreviewWithProspect, error)
}

// PGXPreviewsRepository implements PreviewsRepository using pgx.
type PGXPreviewsRepository struct {
	pool pgxPool
}

// NewPGXPreviewsRepository wires a pgx backed repository.
func NewPGXPreviewsRepository(pool *pgxpool.Pool) *PGXPreviewsRepository {
	return &PGXPreviewsRepository{pool: pool}
}

const previewColumns = `
		p.id,
		p.prospect_id,
		p.capture_id,
		p.template_slug,
		p.injected_data,
		p.html,
		p.preview_url,
		p.expires_at,
		p.review_status,
		p.reviewer_notes,
		p.view_count,
		p.last_viewed_at,
		p.prospect_clicked_cta,
		p.approved_at,
		p.sent_at,
		p.created_at`

// Insert stores a generated preview, HTML included.
func (r *PGXPreviewsRepository) Insert(ctx context.Context, preview *entity.Preview) error {
	if preview == nil {
		return fmt.Errorf("preview payload is nil")
	}

	injected := preview.InjectedData
	if injected == nil {
		injected = map[string]any{}
	}
	injectedJSON, err := json.Marshal(injected)
	if err != nil {
		return fmt.Errorf("marshal injected data: %w", err)
	}

	query := `
		INSERT INTO previews (
			id,
			prospect_id,
			capture_id,
			template_slug,
			injected_data,
			html,
			preview_url,
			expires_at,
			review_status
		) VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7, $8, $9)`

	_, err = r.pool.Exec(ctx, query,
		preview.ID,
		preview.ProspectID,
		preview.CaptureID,
		preview.TemplateSlug,
		string(injectedJSON),
		preview.HTML,
		preview.PreviewURL,
		preview.ExpiresAt,
		preview.ReviewStatus,
	)
	if err != nil {
		return fmt.Errorf("insert preview: %w", err)
	}
	return nil
}

// GetByID fetches a preview joined with its prospect's business name.
func (r *PGXPreviewsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PreviewWithProspect, error) {
	query := `SELECT` + previewColumns + `, pr.business_name
		FROM previews p
		JOIN prospects pr ON pr.id = p.prospect_id
		WHERE p.id = $1`

	preview, err := scanPreviewWithProspect(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPreviewNotFound
		}
		return nil, fmt.Errorf("fetch preview: %w", err)
	}
	return preview, nil
}

// PendingForProspect returns the prospect's pending preview, if any.
func (r *PGXPreviewsRepository) PendingForProspect(ctx context.Context, prospectID uuid.UUID) (*entity.Preview, error) {
	query := `SELECT` + previewColumns + `
		FROM previews p
		WHERE p.prospect_id = $1 AND p.review_status = $2
		ORDER BY p.created_at DESC
		LIMIT 1`

	row := r.pool.QueryRow(ctx, query, prospectID, entity.ReviewStatusPending)
	preview := &entity.Preview{}
	if err := scanPreview(row, preview); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPreviewNotFound
		}
		return nil, fmt.Errorf("fetch pending preview: %w", err)
	}
	return preview, nil
}

// ListPendingReview returns the newest previews awaiting review.
func (r *PGXPreviewsRepository) ListPendingReview(ctx context.Context, limit int) ([]entity.PreviewWithProspect, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT` + previewColumns + `, pr.business_name
		FROM previews p
		JOIN prospects pr ON pr.id = p.prospect_id
		WHERE p.review_status = $1
		ORDER BY p.created_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, entity.ReviewStatusPending, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending previews: %w", err)
	}
	defer rows.Close()

	var previews []entity.PreviewWithProspect
	for rows.Next() {
		preview, err := scanPreviewWithProspect(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pending preview: %w", err)
		}
		previews = append(previews, *preview)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending previews: %w", err)
	}
	return previews, nil
}

// MarkViewed bumps the view counter and stamps last_viewed_at.
func (r *PGXPreviewsRepository) MarkViewed(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE previews SET view_count = view_count + 1, last_viewed_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark preview viewed: %w", err)
	}
	return nil
}

// SetCTAClicked flags that the prospect pressed the call-to-action.
func (r *PGXPreviewsRepository) SetCTAClicked(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE previews SET prospect_clicked_cta = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("set preview cta clicked: %w", err)
	}
	return nil
}

// SetReviewStatus records a review decision, stamping approved_at/sent_at
// for the matching statuses, and returns the updated row.
func (r *PGXPreviewsRepository) SetReviewStatus(ctx context.Context, id uuid.UUID, status string, notes *string) (*entity.PreviewWithProspect, error) {
	query := `
		UPDATE previews p SET
			review_status = $1,
			reviewer_notes = $2,
			approved_at = CASE WHEN $1 = 'approved' THEN NOW() ELSE p.approved_at END,
			sent_at = CASE WHEN $1 = 'sent' THEN NOW() ELSE p.sent_at END
		FROM prospects pr
		WHERE p.id = $3 AND pr.id = p.prospect_id
		RETURNING` + previewColumns + `, pr.business_name`

	preview, err := scanPreviewWithProspect(r.pool.QueryRow(ctx, query, status, notes, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPreviewNotFound
		}
		return nil, fmt.Errorf("set preview review status: %w", err)
	}
	return preview, nil
}

func scanPreview(row pgx.Row, p *entity.Preview, extra ...any) error {
	var (
		captureID     *uuid.UUID
		injectedJSON  []byte
		reviewerNotes sql.NullString
		lastViewedAt  sql.NullTime
		approvedAt    sql.NullTime
		sentAt        sql.NullTime
	)

	dest := []any{
		&p.ID,
		&p.ProspectID,
		&captureID,
		&p.TemplateSlug,
		&injectedJSON,
		&p.HTML,
		&p.PreviewURL,
		&p.ExpiresAt,
		&p.ReviewStatus,
		&reviewerNotes,
		&p.ViewCount,
		&lastViewedAt,
		&p.ProspectClickedCTA,
		&approvedAt,
		&sentAt,
		&p.CreatedAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return err
	}

	p.CaptureID = captureID
	p.ReviewerNotes = nullStringToPtr(reviewerNotes)
	if len(injectedJSON) > 0 {
		if err := json.Unmarshal(injectedJSON, &p.InjectedData); err != nil {
			return fmt.Errorf("unmarshal injected data: %w", err)
		}
	}
	if lastViewedAt.Valid {
		ts := lastViewedAt.Time
		p.LastViewedAt = &ts
	}
	if approvedAt.Valid {
		ts := approvedAt.Time
		p.ApprovedAt = &ts
	}
	if sentAt.Valid {
		ts := sentAt.Time
		p.SentAt = &ts
	}
	return nil
}

func scanPreviewWithProspect(row pgx.Row) (*entity.PreviewWithProspect, error) {
	var preview entity.PreviewWithProspect
	if err := scanPreview(row, &preview.Preview, &preview.BusinessName); err != nil {
		return nil, err
	}
	return &preview, nil
}
