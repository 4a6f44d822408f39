package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"saaransh/internal/service"
)

// ConsultationHandler handles dashboard and consultation endpoints.
type ConsultationHandler struct {
	analyticsService service.AnalyticsService
}

// NewConsultationHandler creates a new consultation handler.
func NewConsultationHandler(analyticsService service.AnalyticsService) *ConsultationHandler {
	return &ConsultationHandler{analyticsService: analyticsService}
}

// Dashboard godoc
// @Summary Dashboard summary
// @Tags consultations
// @Produce json
// @Success 200 {object} service.DashboardReport
// @Success 302 "Not signed in"
// @Failure 500 {object} errors.ErrorResponse
// @Failure 503 {object} middleware.LoadingResponse
// @Router /dashboard [get]
func (h *ConsultationHandler) Dashboard(c echo.Context) error {
	report, err := h.analyticsService.Dashboard(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, report)
}

// List godoc
// @Summary List consultations
// @Tags consultations
// @Produce json
// @Success 200 {array} model.Consultation
// @Failure 500 {object} errors.ErrorResponse
// @Router /consultations [get]
func (h *ConsultationHandler) List(c echo.Context) error {
	consultations, err := h.analyticsService.ListConsultations(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, consultations)
}

// Detail godoc
// @Summary Consultation detail
// @Tags consultations
// @Produce json
// @Param id path string true "Consultation ID or slug"
// @Success 200 {object} service.ConsultationReport
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /consultations/{id} [get]
func (h *ConsultationHandler) Detail(c echo.Context) error {
	report, err := h.analyticsService.ConsultationDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, report)
}

// Comments godoc
// @Summary Filter a consultation's comments
// @Tags consultations
// @Produce json
// @Param id path string true "Consultation ID or slug"
// @Param stance query string false "All or a stance"
// @Param q query string false "Search term"
// @Success 200 {object} service.CommentPage
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /consultations/{id}/comments [get]
func (h *ConsultationHandler) Comments(c echo.Context) error {
	page, err := h.analyticsService.ConsultationComments(c.Request().Context(), c.Param("id"), c.QueryParam("stance"), c.QueryParam("q"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// WordCloud godoc
// @Summary Word cloud of a consultation
// @Tags consultations
// @Produce json
// @Param id path string true "Consultation ID or slug"
// @Param stance query string false "All or a stance"
// @Success 200 {object} service.WordCloudReport
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /consultations/{id}/wordcloud [get]
func (h *ConsultationHandler) WordCloud(c echo.Context) error {
	report, err := h.analyticsService.WordCloud(c.Request().Context(), c.Param("id"), c.QueryParam("stance"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, report)
}
