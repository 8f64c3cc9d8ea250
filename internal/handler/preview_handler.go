package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/morningstar-ai/preview-engine/internal/dto"
	"github.com/morningstar-ai/preview-engine/internal/repository"
	"github.com/morningstar-ai/preview-engine/internal/service"
)

// PreviewServer covers the preview service operations the handler needs.
type PreviewServer interface {
	Serve(ctx context.Context, id uuid.UUID) (service.ServedPreview, error)
	Track(ctx context.Context, req dto.TrackRequest) error
	Review(ctx context.Context, req dto.ApproveRequest) (*dto.ApproveResult, error)
}

// PreviewHandler serves public previews and the review/tracking endpoints
// around them.
type PreviewHandler struct {
	previews PreviewServer
}

// NewPreviewHandler constructs a preview handler.
func NewPreviewHandler(previews PreviewServer) *PreviewHandler {
	return &PreviewHandler{previews: previews}
}

// Serve handles GET /p/:id. The response is always HTML, so prospects never
// see a JSON error.
func (h *PreviewHandler) Serve(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.HTML(http.StatusBadRequest, "<h1>Preview ID missing</h1>")
	}

	served, err := h.previews.Serve(c.Request().Context(), id)
	if err != nil {
		log.Printf("preview=%s serve failed err=%v", id, err)
		return c.HTML(http.StatusInternalServerError, "<h1>Error loading preview</h1>")
	}

	c.Response().Header().Set("Cache-Control", "no-store")
	return c.HTML(served.Status, served.HTML)
}

// Track handles POST /api/track. It always acks so a failing beacon can
// never break the prospect's page.
func (h *PreviewHandler) Track(c echo.Context) error {
	var req dto.TrackRequest
	if err := c.Bind(&req); err == nil {
		if err := h.previews.Track(c.Request().Context(), req); err != nil {
			log.Printf("track preview=%s event=%s failed err=%v", req.PreviewID, req.Event, err)
		}
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// Review handles POST /api/approve.
func (h *PreviewHandler) Review(c echo.Context) error {
	var req dto.ApproveRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	result, err := h.previews.Review(c.Request().Context(), req)
	if err != nil {
		var vErr service.ValidationError
		switch {
		case errors.As(err, &vErr):
			return Error(c, http.StatusBadRequest, vErr.Message)
		case errors.Is(err, repository.ErrPreviewNotFound):
			return Error(c, http.StatusNotFound, "preview not found")
		default:
			return Error(c, http.StatusInternalServerError, err.Error())
		}
	}

	return Success(c, http.StatusOK, "review recorded", result)
}
