package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/morningstar-ai/preview-engine/internal/dto"
	"github.com/morningstar-ai/preview-engine/internal/entity"
)

// ErrProspectNotFound indicates no prospect row matches the lookup.
var ErrProspectNotFound = errors.New("prospect not found")

// ProspectsRepository describes persistence operations for prospects.
type ProspectsRepository interface {
	UpsertByWebsiteURL(ctx context.Context, prospect *entity.Prospect) (*entity.Prospect, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Prospect, error)
	FindByEmail(ctx context.Context, email string) (*entity.Prospect, error)
	List(ctx context.Context, filter dto.ProspectListFilter) ([]entity.Prospect, error)
	Update(ctx context.Context, update dto.ProspectUpdate) (*entity.Prospect, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
	SetStatusIf(ctx context.Context, id uuid.UUID, status string, fromStatuses ...string) error
	SetAnalysis(ctx context.Context, id uuid.UUID, vertical, subVertical string, websiteScore int) error
	CountByStatus(ctx context.Context) (map[string]int, error)
}

// PGXProspectsRepository implements ProspectsRepository using pgx.
type PGXProspectsRepository struct {
	pool pgxPool
}

// NewPGXProspectsRepository wires a pgx backed repository.
func NewPGXProspectsRepository(pool *pgxpool.Pool) *PGXProspectsRepository {
	return &PGXProspectsRepository{pool: pool}
}

var _ pgxPool = (*pgxpool.Pool)(nil)

const prospectColumns = `
		id,
		website_url,
		business_name,
		phone,
		whatsapp,
		email,
		address,
		doctor_name,
		google_rating,
		google_maps_url,
		vertical,
		sub_vertical,
		website_score,
		opportunity_score,
		status,
		source,
		notes,
		created_at,
		updated_at`

// UpsertByWebsiteURL inserts or refreshes a prospect keyed by website_url
// and returns the stored row.
func (r *PGXProspectsRepository) UpsertByWebsiteURL(ctx context.Context, prospect *entity.Prospect) (*entity.Prospect, error) {
	if prospect == nil {
		return nil, fmt.Errorf("prospect payload is nil")
	}

	query := `
		INSERT INTO prospects (
			website_url,
			business_name,
			phone,
			whatsapp,
			email,
			address,
			doctor_name,
			google_rating,
			google_maps_url,
			status,
			source,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		ON CONFLICT (website_url) DO UPDATE SET
			business_name = EXCLUDED.business_name,
			phone = COALESCE(EXCLUDED.phone, prospects.phone),
			whatsapp = COALESCE(EXCLUDED.whatsapp, prospects.whatsapp),
			email = COALESCE(EXCLUDED.email, prospects.email),
			address = COALESCE(EXCLUDED.address, prospects.address),
			doctor_name = COALESCE(EXCLUDED.doctor_name, prospects.doctor_name),
			google_rating = COALESCE(EXCLUDED.google_rating, prospects.google_rating),
			google_maps_url = COALESCE(EXCLUDED.google_maps_url, prospects.google_maps_url),
			updated_at = NOW()
		RETURNING` + prospectColumns

	row := r.pool.QueryRow(ctx, query,
		prospect.WebsiteURL,
		prospect.BusinessName,
		prospect.Phone,
		prospect.WhatsApp,
		prospect.Email,
		prospect.Address,
		prospect.DoctorName,
		prospect.GoogleRating,
		prospect.GoogleMapsURL,
		prospect.Status,
		prospect.Source,
	)

	stored, err := scanProspect(row)
	if err != nil {
		return nil, fmt.Errorf("upsert prospect: %w", err)
	}
	return stored, nil
}

// GetByID fetches a single prospect.
func (r *PGXProspectsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Prospect, error) {
	query := `SELECT` + prospectColumns + ` FROM prospects WHERE id = $1`

	prospect, err := scanProspect(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProspectNotFound
		}
		return nil, fmt.Errorf("fetch prospect: %w", err)
	}
	return prospect, nil
}

// FindByEmail matches a prospect by contact email, used by webhook matching.
func (r *PGXProspectsRepository) FindByEmail(ctx context.Context, email string) (*entity.Prospect, error) {
	query := `SELECT` + prospectColumns + ` FROM prospects WHERE LOWER(email) = LOWER($1) LIMIT 1`

	prospect, err := scanProspect(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProspectNotFound
		}
		return nil, fmt.Errorf("find prospect by email: %w", err)
	}
	return prospect, nil
}

// List retrieves prospects newest first with optional status/vertical
// filters.
func (r *PGXProspectsRepository) List(ctx context.Context, filter dto.ProspectListFilter) ([]entity.Prospect, error) {
	query := strings.Builder{}
	query.WriteString(`SELECT` + prospectColumns + ` FROM prospects`)

	var (
		clauses []string
		args    []any
		idx     = 1
	)
	if filter.Status != "" {
		clauses = append(clauses, fmt.Sprintf("status = $%d", idx))
		args = append(args, filter.Status)
		idx++
	}
	if filter.Vertical != "" {
		clauses = append(clauses, fmt.Sprintf("vertical = $%d", idx))
		args = append(args, filter.Vertical)
		idx++
	}
	if len(clauses) > 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(clauses, " AND "))
	}

	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query.WriteString(" ORDER BY created_at DESC")
	query.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", idx, idx+1))
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list prospects: %w", err)
	}
	defer rows.Close()

	var prospects []entity.Prospect
	for rows.Next() {
		prospect, err := scanProspect(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prospect: %w", err)
		}
		prospects = append(prospects, *prospect)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prospects: %w", err)
	}
	return prospects, nil
}

// Update patches the whitelisted fields and returns the updated row.
func (r *PGXProspectsRepository) Update(ctx context.Context, update dto.ProspectUpdate) (*entity.Prospect, error) {
	var (
		sets []string
		args []any
		idx  = 1
	)
	set := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if update.Status != nil {
		set("status", *update.Status)
	}
	if update.Notes != nil {
		set("notes", *update.Notes)
	}
	if update.Phone != nil {
		set("phone", *update.Phone)
	}
	if update.WhatsApp != nil {
		set("whatsapp", *update.WhatsApp)
	}
	if update.Email != nil {
		set("email", *update.Email)
	}
	if update.DoctorName != nil {
		set("doctor_name", *update.DoctorName)
	}
	if update.Address != nil {
		set("address", *update.Address)
	}
	if update.WebsiteScore != nil {
		set("website_score", *update.WebsiteScore)
	}
	if update.OpportunityScore != nil {
		set("opportunity_score", *update.OpportunityScore)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, update.ID)
	}

	sets = append(sets, "updated_at = NOW()")
	query := fmt.Sprintf(`UPDATE prospects SET %s WHERE id = $%d RETURNING`+prospectColumns,
		strings.Join(sets, ", "), idx)
	args = append(args, update.ID)

	prospect, err := scanProspect(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProspectNotFound
		}
		return nil, fmt.Errorf("update prospect: %w", err)
	}
	return prospect, nil
}

// SetStatus moves a prospect to the given pipeline status.
func (r *PGXProspectsRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE prospects SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("set prospect status: %w", err)
	}
	return nil
}

// SetStatusIf moves a prospect to the given status only when it currently
// sits in one of fromStatuses. A no-match is not an error.
func (r *PGXProspectsRepository) SetStatusIf(ctx context.Context, id uuid.UUID, status string, fromStatuses ...string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE prospects SET status = $1, updated_at = NOW() WHERE id = $2 AND status = ANY($3)`,
		status, id, fromStatuses)
	if err != nil {
		return fmt.Errorf("set prospect status: %w", err)
	}
	return nil
}

// SetAnalysis records the detection verdict on the prospect row.
func (r *PGXProspectsRepository) SetAnalysis(ctx context.Context, id uuid.UUID, vertical, subVertical string, websiteScore int) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE prospects SET
			vertical = $1,
			sub_vertical = NULLIF($2, ''),
			website_score = $3,
			updated_at = NOW()
		WHERE id = $4`,
		vertical, subVertical, websiteScore, id)
	if err != nil {
		return fmt.Errorf("set prospect analysis: %w", err)
	}
	return nil
}

// CountByStatus returns funnel counts keyed by pipeline status.
func (r *PGXProspectsRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM prospects GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count prospects: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan funnel count: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate funnel counts: %w", err)
	}
	return counts, nil
}

func scanProspect(row pgx.Row) (*entity.Prospect, error) {
	var (
		p                entity.Prospect
		phone            sql.NullString
		whatsapp         sql.NullString
		email            sql.NullString
		address          sql.NullString
		doctorName       sql.NullString
		googleRating     sql.NullFloat64
		googleMapsURL    sql.NullString
		vertical         sql.NullString
		subVertical      sql.NullString
		websiteScore     sql.NullInt64
		opportunityScore sql.NullInt64
		notes            sql.NullString
	)

	err := row.Scan(
		&p.ID,
		&p.WebsiteURL,
		&p.BusinessName,
		&phone,
		&whatsapp,
		&email,
		&address,
		&doctorName,
		&googleRating,
		&googleMapsURL,
		&vertical,
		&subVertical,
		&websiteScore,
		&opportunityScore,
		&p.Status,
		&p.Source,
		&notes,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Phone = nullStringToPtr(phone)
	p.WhatsApp = nullStringToPtr(whatsapp)
	p.Email = nullStringToPtr(email)
	p.Address = nullStringToPtr(address)
	p.DoctorName = nullStringToPtr(doctorName)
	p.GoogleMapsURL = nullStringToPtr(googleMapsURL)
	p.Vertical = nullStringToPtr(vertical)
	p.SubVertical = nullStringToPtr(subVertical)
	p.Notes = nullStringToPtr(notes)
	if googleRating.Valid {
		val := googleRating.Float64
		p.GoogleRating = &val
	}
	if websiteScore.Valid {
		val := int(websiteScore.Int64)
		p.WebsiteScore = &val
	}
	if opportunityScore.Valid {
		val := int(opportunityScore.Int64)
		p.OpportunityScore = &val
	}
	return &p, nil
}

func nullStringToPtr(value sql.NullString) *string {
	if value.Valid {
		val := value.String
		return &val
	}
	return nil
}
