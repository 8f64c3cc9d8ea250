package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/morningstar-ai/preview-engine/internal/dto"
	"github.com/morningstar-ai/preview-engine/internal/entity"
	"github.com/morningstar-ai/preview-engine/internal/repository"
	"github.com/morningstar-ai/preview-engine/internal/service"
)

// ProspectsReader covers the prospect operations the handler needs.
type ProspectsReader interface {
	List(ctx context.Context, filter dto.ProspectListFilter) ([]entity.Prospect, error)
	GetDetails(ctx context.Context, id uuid.UUID) (*service.ProspectDetails, error)
	Update(ctx context.Context, update dto.ProspectUpdate) (*entity.Prospect, error)
}

// ProspectsHandler exposes the pipeline CRM endpoints.
type ProspectsHandler struct {
	prospects ProspectsReader
}

// NewProspectsHandler constructs a prospects handler.
func NewProspectsHandler(prospects ProspectsReader) *ProspectsHandler {
	return &ProspectsHandler{prospects: prospects}
}

// List handles GET /api/prospects.
func (h *ProspectsHandler) List(c echo.Context) error {
	filter := dto.ProspectListFilter{
		Status:   c.QueryParam("status"),
		Vertical: c.QueryParam("vertical"),
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Error(c, http.StatusBadRequest, "invalid limit")
		}
		filter.Limit = n
	}
	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Error(c, http.StatusBadRequest, "invalid offset")
		}
		filter.Offset = n
	}

	prospects, err := h.prospects.List(c.Request().Context(), filter)
	if err != nil {
		return Error(c, http.StatusInternalServerError, err.Error())
	}
	return Success(c, http.StatusOK, "", prospects)
}

// Get handles GET /api/prospects/:id.
func (h *ProspectsHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid prospect id")
	}

	details, err := h.prospects.GetDetails(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProspectNotFound) {
			return Error(c, http.StatusNotFound, "prospect not found")
		}
		return Error(c, http.StatusInternalServerError, err.Error())
	}
	return Success(c, http.StatusOK, "", details)
}

// Update handles PATCH /api/prospects.
func (h *ProspectsHandler) Update(c echo.Context) error {
	var req dto.ProspectUpdate
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	prospect, err := h.prospects.Update(c.Request().Context(), req)
	if err != nil {
		var vErr service.ValidationError
		switch {
		case errors.As(err, &vErr):
			return Error(c, http.StatusBadRequest, vErr.Message)
		case errors.Is(err, repository.ErrProspectNotFound):
			return Error(c, http.StatusNotFound, "prospect not found")
		default:
			return Error(c, http.StatusInternalServerError, err.Error())
		}
	}
	return Success(c, http.StatusOK, "prospect updated", prospect)
}
