package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/morningstar-ai/preview-engine/internal/dto"
	"github.com/morningstar-ai/preview-engine/internal/entity"
)

func prospectRow(id uuid.UUID, websiteURL, businessName string) *stubRow {
	return &stubRow{scan: func(dest ...any) error {
		*(dest[0].(*uuid.UUID)) = id
		*(dest[1].(*string)) = websiteURL
		*(dest[2].(*string)) = businessName
		*(dest[14].(*string)) = entity.ProspectStatusNew
		*(dest[15].(*string)) = "chrome_extension"
		*(dest[17].(*time.Time)) = time.Now()
		*(dest[18].(*time.Time)) = time.Now()
		return nil
	}}
}

func TestPGXProspectsRepository_UpsertByWebsiteURL(t *testing.T) {
	id := uuid.New()
	var gotQuery string
	var gotArgs []any

	repo := &PGXProspectsRepository{pool: &stubPool{
		queryRowFunc: func(_ context.Context, query string, args ...any) pgx.Row {
			gotQuery = query
			gotArgs = args
			return prospectRow(id, "https://clinic.ae", "Bright Smile")
		},
	}}

	stored, err := repo.UpsertByWebsiteURL(context.Background(), &entity.Prospect{
		WebsiteURL:   "https://clinic.ae",
		BusinessName: "Bright Smile",
		Status:       entity.ProspectStatusNew,
		Source:       "chrome_extension",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.ID != id || stored.BusinessName != "Bright Smile" {
		t.Fatalf("unexpected row: %+v", stored)
	}
	if !strings.Contains(gotQuery, "ON CONFLICT (website_url)") {
		t.Fatalf("expected website_url conflict clause, got:\n%s", gotQuery)
	}
	if gotArgs[0] != "https://clinic.ae" {
		t.Fatalf("unexpected args: %v", gotArgs)
	}
}

func TestPGXProspectsRepository_UpsertByWebsiteURL_NilPayload(t *testing.T) {
	repo := &PGXProspectsRepository{pool: &stubPool{}}
	if _, err := repo.UpsertByWebsiteURL(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil payload")
	}
}

func TestPGXProspectsRepository_GetByID_NotFound(t *testing.T) {
	repo := &PGXProspectsRepository{pool: &stubPool{
		queryRowFunc: func(_ context.Context, _ string, _ ...any) pgx.Row {
			return &stubRow{scan: func(_ ...any) error { return pgx.ErrNoRows }}
		},
	}}

	_, err := repo.GetByID(context.Background(), uuid.New())
	if err != ErrProspectNotFound {
		t.Fatalf("expected ErrProspectNotFound, got %v", err)
	}
}

func TestPGXProspectsRepository_Update_BuildsSetClause(t *testing.T) {
	var gotQuery string
	var gotArgs []any

	repo := &PGXProspectsRepository{pool: &stubPool{
		queryRowFunc: func(_ context.Context, query string, args ...any) pgx.Row {
			gotQuery = query
			gotArgs = args
			return prospectRow(uuid.New(), "https://clinic.ae", "Bright Smile")
		},
	}}

	status := entity.ProspectStatusReplied
	notes := "called back"
	_, err := repo.Update(context.Background(), dto.ProspectUpdate{
		ID:     uuid.New(),
		Status: &status,
		Notes:  &notes,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(gotQuery, "status = $1") || !strings.Contains(gotQuery, "notes = $2") {
		t.Fatalf("unexpected query:\n%s", gotQuery)
	}
	if gotArgs[0] != entity.ProspectStatusReplied || gotArgs[1] != "called back" {
		t.Fatalf("unexpected args: %v", gotArgs)
	}
}

func TestPGXProspectsRepository_Update_NoFieldsFallsBackToGet(t *testing.T) {
	var gotQuery string
	repo := &PGXProspectsRepository{pool: &stubPool{
		queryRowFunc: func(_ context.Context, query string, _ ...any) pgx.Row {
			gotQuery = query
			return prospectRow(uuid.New(), "https://clinic.ae", "Bright Smile")
		},
	}}

	if _, err := repo.Update(context.Background(), dto.ProspectUpdate{ID: uuid.New()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(gotQuery, "SELECT") || strings.Contains(gotQuery, "UPDATE") {
		t.Fatalf("expected plain fetch when nothing to update, got:\n%s", gotQuery)
	}
}

func TestPGXProspectsRepository_CountByStatus(t *testing.T) {
	repo := &PGXProspectsRepository{pool: &stubPool{
		queryFunc: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
			return &stubRows{scans: []func(dest ...any) error{
				func(dest ...any) error {
					*(dest[0].(*string)) = entity.ProspectStatusNew
					*(dest[1].(*int)) = 7
					return nil
				},
				func(dest ...any) error {
					*(dest[0].(*string)) = entity.ProspectStatusWon
					*(dest[1].(*int)) = 2
					return nil
				},
			}}, nil
		},
	}}

	counts, err := repo.CountByStatus(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts[entity.ProspectStatusNew] != 7 || counts[entity.ProspectStatusWon] != 2 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}
