package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"saaransh/internal/middleware"
	"saaransh/internal/model"
	"saaransh/internal/service"
)

// ProfileHandler handles the signed-in user's own pages.
type ProfileHandler struct {
	analyticsService service.AnalyticsService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(analyticsService service.AnalyticsService) *ProfileHandler {
	return &ProfileHandler{analyticsService: analyticsService}
}

// ProfileResponse is the signed-in user with session metadata.
type ProfileResponse struct {
	User    *model.User    `json:"user"`
	Session *model.Session `json:"session"`
}

// AuthorizationsResponse lists past sign-ins.
type AuthorizationsResponse struct {
	AccessLogs []model.AccessLog `json:"accessLogs"`
}

// Profile godoc
// @Summary Current user profile
// @Tags profile
// @Produce json
// @Success 200 {object} ProfileResponse
// @Router /profile [get]
func (h *ProfileHandler) Profile(c echo.Context) error {
	gate := middleware.GateFrom(c)
	if gate == nil {
		return sessionUnavailable()
	}
	snap := gate.Snapshot()
	return c.JSON(http.StatusOK, ProfileResponse{User: snap.User, Session: snap.Session})
}

// Authorizations godoc
// @Summary Access log of the account
// @Tags profile
// @Produce json
// @Success 200 {object} AuthorizationsResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /authorizations [get]
func (h *ProfileHandler) Authorizations(c echo.Context) error {
	logs, err := h.analyticsService.AccessLogs(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, AuthorizationsResponse{AccessLogs: logs})
}
