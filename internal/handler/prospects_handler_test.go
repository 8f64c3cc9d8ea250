package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/morningstar-ai/preview-engine/internal/dto"
	"github.com/morningstar-ai/preview-engine/internal/entity"
	"github.com/morningstar-ai/preview-engine/internal/repository"
	"github.com/morningstar-ai/preview-engine/internal/service"
)

func TestProspectsHandler_List(t *testing.T) {
	e := echo.New()

	t.Run("filters forwarded", func(t *testing.T) {
		handler := NewProspectsHandler(&mockProspectsService{
			list: func(ctx context.Context, filter dto.ProspectListFilter) ([]entity.Prospect, error) {
				if filter.Status != "preview_ready" || filter.Vertical != "medical" || filter.Limit != 10 || filter.Offset != 20 {
					t.Fatalf("unexpected filter: %+v", filter)
				}
				return []entity.Prospect{{BusinessName: "Bright Smile"}}, nil
			},
		})
		req := httptest.NewRequest(http.MethodGet, "/api/prospects?status=preview_ready&vertical=medical&limit=10&offset=20", nil)
		rec := httptest.NewRecorder()

		_ = handler.List(e.NewContext(req, rec))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("invalid limit", func(t *testing.T) {
		handler := NewProspectsHandler(&mockProspectsService{})
		req := httptest.NewRequest(http.MethodGet, "/api/prospects?limit=ten", nil)
		rec := httptest.NewRecorder()

		_ = handler.List(e.NewContext(req, rec))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestProspectsHandler_Get(t *testing.T) {
	e := echo.New()

	t.Run("invalid id", func(t *testing.T) {
		handler := NewProspectsHandler(&mockProspectsService{})
		req := httptest.NewRequest(http.MethodGet, "/api/prospects/abc", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("abc")

		_ = handler.Get(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		handler := NewProspectsHandler(&mockProspectsService{
			getDetails: func(ctx context.Context, id uuid.UUID) (*service.ProspectDetails, error) {
				return nil, repository.ErrProspectNotFound
			},
		})
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/api/prospects/"+id, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(id)

		_ = handler.Get(c)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		handler := NewProspectsHandler(&mockProspectsService{
			getDetails: func(ctx context.Context, got uuid.UUID) (*service.ProspectDetails, error) {
				if got != id {
					t.Fatalf("unexpected id")
				}
				return &service.ProspectDetails{Prospect: &entity.Prospect{ID: id, BusinessName: "Bright Smile"}}, nil
			},
		})
		req := httptest.NewRequest(http.MethodGet, "/api/prospects/"+id.String(), nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		_ = handler.Get(c)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var resp APIResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		data := resp.Data.(map[string]any)
		prospect := data["prospect"].(map[string]any)
		if prospect["business_name"] != "Bright Smile" {
			t.Fatalf("unexpected data: %+v", data)
		}
	})
}

func TestProspectsHandler_Update(t *testing.T) {
	e := echo.New()

	t.Run("missing id", func(t *testing.T) {
		handler := NewProspectsHandler(&mockProspectsService{
			update: func(ctx context.Context, update dto.ProspectUpdate) (*entity.Prospect, error) {
				return nil, service.ValidationError{Message: "id is required"}
			},
		})
		req := httptest.NewRequest(http.MethodPatch, "/api/prospects", strings.NewReader(`{"status":"replied"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		_ = handler.Update(e.NewContext(req, rec))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		handler := NewProspectsHandler(&mockProspectsService{
			update: func(ctx context.Context, update dto.ProspectUpdate) (*entity.Prospect, error) {
				if update.ID != id || update.Notes == nil || *update.Notes != "called twice" {
					t.Fatalf("unexpected update: %+v", update)
				}
				return &entity.Prospect{ID: id, BusinessName: "Bright Smile"}, nil
			},
		})
		body := `{"id":"` + id.String() + `","notes":"called twice"}`
		req := httptest.NewRequest(http.MethodPatch, "/api/prospects", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		_ = handler.Update(e.NewContext(req, rec))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}
