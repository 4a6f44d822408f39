package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"saaransh/internal/service"
)

// AnalyticsHandler handles the cross-consultation analysis endpoints.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Overview godoc
// @Summary Analytics overview
// @Tags analytics
// @Produce json
// @Success 200 {object} service.AnalyticsReport
// @Failure 500 {object} errors.ErrorResponse
// @Router /analytics [get]
func (h *AnalyticsHandler) Overview(c echo.Context) error {
	report, err := h.analyticsService.Analytics(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, report)
}

// Stakeholders godoc
// @Summary Stakeholder analytics
// @Tags analytics
// @Produce json
// @Success 200 {object} service.StakeholderReport
// @Failure 500 {object} errors.ErrorResponse
// @Router /stakeholders [get]
func (h *AnalyticsHandler) Stakeholders(c echo.Context) error {
	report, err := h.analyticsService.Stakeholders(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, report)
}

// Trends godoc
// @Summary Topic trends
// @Tags analytics
// @Produce json
// @Success 200 {object} service.TrendsReport
// @Failure 500 {object} errors.ErrorResponse
// @Router /trends [get]
func (h *AnalyticsHandler) Trends(c echo.Context) error {
	report, err := h.analyticsService.Trends(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, report)
}
