package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/morningstar-ai/preview-engine/internal/dto"
	"github.com/morningstar-ai/preview-engine/internal/repository"
	"github.com/morningstar-ai/preview-engine/internal/service"
)

// PreviewEngine covers the generate operation the handler needs.
type PreviewEngine interface {
	Generate(ctx context.Context, req dto.GenerateRequest) (*dto.GenerateResult, error)
}

// GenerateHandler triggers preview generation for a prospect.
type GenerateHandler struct {
	engine PreviewEngine
}

// NewGenerateHandler constructs a generate handler.
func NewGenerateHandler(engine PreviewEngine) *GenerateHandler {
	return &GenerateHandler{engine: engine}
}

// Generate handles POST /api/generate.
func (h *GenerateHandler) Generate(c echo.Context) error {
	var req dto.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	result, err := h.engine.Generate(c.Request().Context(), req)
	if err != nil {
		var vErr service.ValidationError
		switch {
		case errors.As(err, &vErr):
			return Error(c, http.StatusBadRequest, vErr.Message)
		case errors.Is(err, repository.ErrProspectNotFound):
			return Error(c, http.StatusNotFound, "prospect not found")
		case errors.Is(err, repository.ErrCaptureNotFound):
			return Error(c, http.StatusNotFound, "capture not found")
		default:
			return Error(c, http.StatusInternalServerError, err.Error())
		}
	}

	message := "preview generated"
	if result.AlreadyExists {
		message = "preview already exists, pass force to regenerate"
	}
	return Success(c, http.StatusOK, message, result)
}
