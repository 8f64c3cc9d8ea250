package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/morningstar-ai/preview-engine/internal/entity"
)

// ErrTemplateNotFound indicates the slug has no template library entry.
var ErrTemplateNotFound = errors.New("template not found")

// TemplatesRepository describes lookups against the template library.
type TemplatesRepository interface {
	GetBySlug(ctx context.Context, slug string) (*entity.Template, error)
}

// PGXTemplatesRepository implements TemplatesRepository using pgx.
type PGXTemplatesRepository struct {
	pool pgxPool
}

// NewPGXTemplatesRepository wires a pgx backed repository.
func NewPGXTemplatesRepository(pool *pgxpool.Pool) *PGXTemplatesRepository {
	return &PGXTemplatesRepository{pool: pool}
}

// GetBySlug fetches an active template by its slug.
func (r *PGXTemplatesRepository) GetBySlug(ctx context.Context, slug string) (*entity.Template, error) {
	query := `
		SELECT id, slug, name, filename, vertical, sub_vertical, is_active, created_at
		FROM templates
		WHERE slug = $1 AND is_active`

	var (
		t           entity.Template
		subVertical sql.NullString
	)
	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&t.ID,
		&t.Slug,
		&t.Name,
		&t.Filename,
		&t.Vertical,
		&subVertical,
		&t.IsActive,
		&t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("fetch template: %w", err)
	}
	t.SubVertical = nullStringToPtr(subVertical)
	return &t, nil
}
