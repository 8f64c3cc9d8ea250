package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/morningstar-ai/preview-engine/internal/dto"
)

// DashboardProvider covers the dashboard snapshot operation.
type DashboardProvider interface {
	Snapshot(ctx context.Context) (*dto.Dashboard, error)
}

// DashboardHandler backs the single-call review dashboard.
type DashboardHandler struct {
	dashboard DashboardProvider
}

// NewDashboardHandler constructs a dashboard handler.
func NewDashboardHandler(dashboard DashboardProvider) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Snapshot handles GET /api/dashboard.
func (h *DashboardHandler) Snapshot(c echo.Context) error {
	dashboard, err := h.dashboard.Snapshot(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, err.Error())
	}
	return Success(c, http.StatusOK, "", dashboard)
}
