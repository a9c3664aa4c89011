package handler

import (
	"log/slog"
	"net/http"

	"mirathi/internal/delivery/http/response"
	"mirathi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler serves the read-only family projections.
type DashboardHandler struct {
	uc     usecase.DashboardUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetDashboard returns the composed projection for one family.
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	familyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}

	dashboard, err := h.uc.GetDashboard(c.Request().Context(), familyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboard, "")
}

// GetClassification returns the structural summary for one family.
func (h *DashboardHandler) GetClassification(c echo.Context) error {
	familyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}

	classification, err := h.uc.GetClassification(c.Request().Context(), familyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, classification, "")
}

// GetHealth returns the data-quality indicators for one family.
func (h *DashboardHandler) GetHealth(c echo.Context) error {
	familyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}

	health, err := h.uc.GetHealth(c.Request().Context(), familyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, health, "")
}

// GetReadiness returns the succession-readiness assessment for one family.
func (h *DashboardHandler) GetReadiness(c echo.Context) error {
	familyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}

	readiness, err := h.uc.GetReadiness(c.Request().Context(), familyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, readiness, "")
}

// GetExtractQR returns the PNG QR code for a printed record extract.
func (h *DashboardHandler) GetExtractQR(c echo.Context) error {
	familyID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid family ID")
	}

	png, err := h.uc.GenerateExtractQR(c.Request().Context(), familyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
