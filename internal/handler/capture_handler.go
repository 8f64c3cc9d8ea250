package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/morningstar-ai/preview-engine/internal/dto"
	"github.com/morningstar-ai/preview-engine/internal/service"
)

// CaptureIngester covers the capture service operations the handler needs.
type CaptureIngester interface {
	Ingest(ctx context.Context, req dto.CaptureRequest) (*dto.CaptureResult, error)
	Scan(ctx context.Context, req dto.ScanRequest) (*dto.CaptureResult, error)
}

// CaptureHandler receives website captures from the extension and scan
// requests from the dashboard.
type CaptureHandler struct {
	captures CaptureIngester
}

// NewCaptureHandler constructs a capture handler.
func NewCaptureHandler(captures CaptureIngester) *CaptureHandler {
	return &CaptureHandler{captures: captures}
}

// Ingest handles POST /api/capture.
func (h *CaptureHandler) Ingest(c echo.Context) error {
	var req dto.CaptureRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	result, err := h.captures.Ingest(c.Request().Context(), req)
	if err != nil {
		var vErr service.ValidationError
		if errors.As(err, &vErr) {
			return Error(c, http.StatusBadRequest, vErr.Message)
		}
		return Error(c, http.StatusInternalServerError, err.Error())
	}

	return Success(c, http.StatusOK, "capture saved, run generate to create a preview", result)
}

// Scan handles POST /api/scan.
func (h *CaptureHandler) Scan(c echo.Context) error {
	var req dto.ScanRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	result, err := h.captures.Scan(c.Request().Context(), req)
	if err != nil {
		var vErr service.ValidationError
		if errors.As(err, &vErr) {
			return Error(c, http.StatusBadRequest, vErr.Message)
		}
		return Error(c, http.StatusBadGateway, err.Error())
	}

	return Success(c, http.StatusOK, "scan complete", result)
}
