package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/morningstar-ai/preview-engine/internal/entity"
)

// ErrCaptureNotFound indicates no capture row matches the lookup.
var ErrCaptureNotFound = errors.New("capture not found")

// CapturesRepository describes persistence operations for site captures.
type CapturesRepository interface {
	Insert(ctx context.Context, capture *entity.Capture) (*entity.Capture, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Capture, error)
	LatestForProspect(ctx context.Context, prospectID uuid.UUID) (*entity.Capture, error)
	SetAnalysis(ctx context.Context, id uuid.UUID, analysis CaptureAnalysis) error
}

// CaptureAnalysis is the verdict written back after the detection step.
type CaptureAnalysis struct {
	Vertical     string
	SubVertical  string
	TemplateSlug string
	Quality      int
	Reasoning    string
	Confidence   string
}

// PGXCapturesRepository implements CapturesRepository using pgx.
type PGXCapturesRepository struct {
	pool pgxPool
}

// NewPGXCapturesRepository wires a pgx backed repository.
func NewPGXCapturesRepository(pool *pgxpool.Pool) *PGXCapturesRepository {
	return &PGXCapturesRepository{pool: pool}
}

const captureColumns = `
		id,
		prospect_id,
		page_url,
		page_title,
		meta_description,
		h1_text,
		h2_texts,
		logo_url,
		hero_image_url,
		color_palette,
		font_families,
		has_booking,
		has_whatsapp,
		has_instagram,
		contact_emails,
		contact_phones,
		page_content,
		detected_vertical,
		detected_sub_vertical,
		recommended_template,
		website_quality_score,
		analysis_reasoning,
		extraction_confidence,
		analysed_at,
		captured_at`

// Insert stores a new capture snapshot and returns the stored row.
func (r *PGXCapturesRepository) Insert(ctx context.Context, capture *entity.Capture) (*entity.Capture, error) {
	if capture == nil {
		return nil, fmt.Errorf("capture payload is nil")
	}

	query := `
		INSERT INTO captures (
			prospect_id,
			page_url,
			page_title,
			meta_description,
			h1_text,
			h2_texts,
			logo_url,
			hero_image_url,
			color_palette,
			font_families,
			has_booking,
			has_whatsapp,
			has_instagram,
			contact_emails,
			contact_phones,
			page_content
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING` + captureColumns

	row := r.pool.QueryRow(ctx, query,
		capture.ProspectID,
		capture.PageURL,
		capture.PageTitle,
		capture.MetaDescription,
		capture.H1Text,
		sliceOrEmpty(capture.H2Texts),
		capture.LogoURL,
		capture.HeroImageURL,
		sliceOrEmpty(capture.ColorPalette),
		sliceOrEmpty(capture.FontFamilies),
		capture.HasBooking,
		capture.HasWhatsApp,
		capture.HasInstagram,
		sliceOrEmpty(capture.ContactEmails),
		sliceOrEmpty(capture.ContactPhones),
		capture.PageContent,
	)

	stored, err := scanCapture(row)
	if err != nil {
		return nil, fmt.Errorf("insert capture: %w", err)
	}
	return stored, nil
}

// GetByID fetches a single capture.
func (r *PGXCapturesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Capture, error) {
	query := `SELECT` + captureColumns + ` FROM captures WHERE id = $1`

	capture, err := scanCapture(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCaptureNotFound
		}
		return nil, fmt.Errorf("fetch capture: %w", err)
	}
	return capture, nil
}

// LatestForProspect returns the most recent capture for a prospect.
func (r *PGXCapturesRepository) LatestForProspect(ctx context.Context, prospectID uuid.UUID) (*entity.Capture, error) {
	query := `SELECT` + captureColumns + `
		FROM captures
		WHERE prospect_id = $1
		ORDER BY captured_at DESC
		LIMIT 1`

	capture, err := scanCapture(r.pool.QueryRow(ctx, query, prospectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCaptureNotFound
		}
		return nil, fmt.Errorf("fetch latest capture: %w", err)
	}
	return capture, nil
}

// SetAnalysis writes the detection verdict onto the capture row.
func (r *PGXCapturesRepository) SetAnalysis(ctx context.Context, id uuid.UUID, analysis CaptureAnalysis) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE captures SET
			detected_vertical = $1,
			detected_sub_vertical = NULLIF($2, ''),
			recommended_template = $3,
			website_quality_score = $4,
			analysis_reasoning = $5,
			extraction_confidence = $6,
			analysed_at = NOW()
		WHERE id = $7`,
		analysis.Vertical,
		analysis.SubVertical,
		analysis.TemplateSlug,
		analysis.Quality,
		analysis.Reasoning,
		analysis.Confidence,
		id)
	if err != nil {
		return fmt.Errorf("set capture analysis: %w", err)
	}
	return nil
}

func scanCapture(row pgx.Row) (*entity.Capture, error) {
	var (
		c             entity.Capture
		logoURL       sql.NullString
		heroImageURL  sql.NullString
		pageContent   sql.NullString
		vertical      sql.NullString
		subVertical   sql.NullString
		template      sql.NullString
		qualityScore  sql.NullInt64
		reasoning     sql.NullString
		confidence    sql.NullString
		analysedAt    sql.NullTime
	)

	err := row.Scan(
		&c.ID,
		&c.ProspectID,
		&c.PageURL,
		&c.PageTitle,
		&c.MetaDescription,
		&c.H1Text,
		&c.H2Texts,
		&logoURL,
		&heroImageURL,
		&c.ColorPalette,
		&c.FontFamilies,
		&c.HasBooking,
		&c.HasWhatsApp,
		&c.HasInstagram,
		&c.ContactEmails,
		&c.ContactPhones,
		&pageContent,
		&vertical,
		&subVertical,
		&template,
		&qualityScore,
		&reasoning,
		&confidence,
		&analysedAt,
		&c.CapturedAt,
	)
	if err != nil {
		return nil, err
	}

	c.LogoURL = nullStringToPtr(logoURL)
	c.HeroImageURL = nullStringToPtr(heroImageURL)
	c.PageContent = nullStringToPtr(pageContent)
	c.DetectedVertical = nullStringToPtr(vertical)
	c.DetectedSubVertical = nullStringToPtr(subVertical)
	c.RecommendedTemplate = nullStringToPtr(template)
	c.AnalysisReasoning = nullStringToPtr(reasoning)
	c.ExtractionConfidence = nullStringToPtr(confidence)
	if qualityScore.Valid {
		val := int(qualityScore.Int64)
		c.WebsiteQualityScore = &val
	}
	if analysedAt.Valid {
		ts := analysedAt.Time
		c.AnalysedAt = &ts
	}
	return &c, nil
}

func sliceOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
