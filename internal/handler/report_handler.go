package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"saaransh/internal/service"
)

// ReportHandler handles report listing and raw exports.
type ReportHandler struct {
	analyticsService service.AnalyticsService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(analyticsService service.AnalyticsService) *ReportHandler {
	return &ReportHandler{analyticsService: analyticsService}
}

// List godoc
// @Summary Available and recent reports
// @Tags reports
// @Produce json
// @Success 200 {object} service.ReportCatalog
// @Router /reports [get]
func (h *ReportHandler) List(c echo.Context) error {
	catalog, err := h.analyticsService.Reports(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, catalog)
}

// Raw godoc
// @Summary Download every comment
// @Tags reports
// @Produce json
// @Produce text/csv
// @Param format query string false "json or csv" Enums(json, csv)
// @Success 200 {file} file
// @Failure 400 {object} errors.ErrorResponse
// @Router /reports/raw [get]
func (h *ReportHandler) Raw(c echo.Context) error {
	export, err := h.analyticsService.ExportComments(c.Request().Context(), c.QueryParam("format"))
	if err != nil {
		return serviceError(err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.Filename))
	return c.Blob(http.StatusOK, export.ContentType, export.Body)
}
