package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"saaransh/internal/auth"
	"saaransh/internal/errors"
	"saaransh/internal/middleware"
	"saaransh/internal/model"
)

const (
	loginSuccessMessage = "Welcome back to Project Saaransh!"
	loginFailureMessage = "Invalid credentials or OTP. Please try again."
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct{}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// LoginRequest represents a login form submission.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	OTP      string `json:"otp" validate:"required"`
}

// LoginResponse reports the outcome of a login attempt.
type LoginResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	User    *model.User    `json:"user,omitempty"`
	Session *model.Session `json:"session,omitempty"`
}

// SessionResponse describes the client's current authentication state.
type SessionResponse struct {
	State           auth.State     `json:"state" swaggertype:"string" enums:"unknown,anonymous,authenticated"`
	IsAuthenticated bool           `json:"isAuthenticated"`
	User            *model.User    `json:"user"`
	Session         *model.Session `json:"session"`
}

// LoginViewResponse describes the login form.
type LoginViewResponse struct {
	View   string   `json:"view"`
	Fields []string `json:"fields"`
	Action string   `json:"action"`
}

// ForgotPasswordRequest asks for password reset instructions.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// MessageResponse carries a user-visible message.
type MessageResponse struct {
	Message string `json:"message"`
}

// Session godoc
// @Summary Current authentication state
// @Tags auth
// @Produce json
// @Success 200 {object} SessionResponse
// @Router /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	gate := middleware.GateFrom(c)
	if gate == nil {
		return c.JSON(http.StatusOK, SessionResponse{State: auth.StateUnknown})
	}
	snap := gate.Snapshot()
	return c.JSON(http.StatusOK, SessionResponse{
		State:           snap.State,
		IsAuthenticated: snap.User != nil,
		User:            snap.User,
		Session:         snap.Session,
	})
}

// LoginView godoc
// @Summary Describe the login form
// @Tags auth
// @Produce json
// @Success 200 {object} LoginViewResponse
// @Success 302 "Already signed in"
// @Failure 503 {object} middleware.LoadingResponse
// @Router /auth [get]
func (h *AuthHandler) LoginView(c echo.Context) error {
	return c.JSON(http.StatusOK, LoginViewResponse{
		View:   "login",
		Fields: []string{"email", "password", "otp"},
		Action: "/api/auth/login",
	})
}

// Login godoc
// @Summary Sign in with email, password and OTP
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} LoginResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	gate := middleware.GateFrom(c)
	if gate == nil {
		return sessionUnavailable()
	}

	ok, err := gate.Login(c.Request().Context(), auth.Credentials{
		Email:    req.Email,
		Password: req.Password,
		OTP:      req.OTP,
	})
	if err != nil {
		return sessionUnavailable()
	}
	if !ok {
		return c.JSON(http.StatusUnauthorized, LoginResponse{Success: false, Message: loginFailureMessage})
	}

	snap := gate.Snapshot()
	return c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		Message: loginSuccessMessage,
		User:    snap.User,
		Session: snap.Session,
	})
}

// Logout godoc
// @Summary Sign out
// @Tags auth
// @Produce json
// @Success 200 {object} SessionResponse
// @Success 302 "Not signed in"
// @Failure 503 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	gate := middleware.GateFrom(c)
	if gate == nil {
		return sessionUnavailable()
	}
	if err := gate.Logout(c.Request().Context()); err != nil {
		return sessionUnavailable()
	}
	return c.JSON(http.StatusOK, SessionResponse{State: gate.State()})
}

// ForgotPassword godoc
// @Summary Request password reset instructions
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Account email"
// @Success 202 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	return c.JSON(http.StatusAccepted, MessageResponse{
		Message: "Password reset instructions have been sent to " + req.Email + ".",
	})
}

func sessionUnavailable() error {
	httpErr := errors.MapErrorToHTTP(errors.ErrSessionUnavailable)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// serviceError renders a service error through the domain error mapping.
func serviceError(err error) error {
	var he *echo.HTTPError
	if stderrors.As(err, &he) {
		return he
	}
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
