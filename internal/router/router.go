package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"saaransh/internal/auth"
	"saaransh/internal/handler"
	"saaransh/internal/middleware"
)

const (
	// LoginPath is where anonymous clients are sent.
	LoginPath = "/api/auth"
	// HomePath is where signed-in clients are sent.
	HomePath = "/api/dashboard"
)

// Deps bundles what Register needs besides handlers.
type Deps struct {
	Logger       *zap.Logger
	JWTService   *auth.JWTService
	Sessions     middleware.GateOpener
	SecureCookie bool
}

// Handlers bundles the route handlers.
type Handlers struct {
	Auth          *handler.AuthHandler
	Consultations *handler.ConsultationHandler
	Analytics     *handler.AnalyticsHandler
	Reports       *handler.ReportHandler
	Profile       *handler.ProfileHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, deps Deps, h Handlers) {
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echomw.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api",
		middleware.ClientToken(deps.JWTService),
		middleware.EnsureClient(deps.JWTService, deps.SecureCookie),
		middleware.LoadGate(deps.Sessions),
	)

	// Public routes
	api.GET("/auth/session", h.Auth.Session)

	// Anonymous-only routes
	anonymous := api.Group("", middleware.RequireAnonymous(HomePath))
	anonymous.GET("/auth", h.Auth.LoginView)
	anonymous.POST("/auth/login", h.Auth.Login)
	anonymous.POST("/auth/forgot-password", h.Auth.ForgotPassword)

	// Authenticated-only routes
	secured := api.Group("", middleware.RequireAuthenticated(LoginPath))
	secured.POST("/auth/logout", h.Auth.Logout)

	secured.GET("/dashboard", h.Consultations.Dashboard)
	secured.GET("/consultations", h.Consultations.List)
	secured.GET("/consultations/:id", h.Consultations.Detail)
	secured.GET("/consultations/:id/comments", h.Consultations.Comments)
	secured.GET("/consultations/:id/wordcloud", h.Consultations.WordCloud)

	secured.GET("/analytics", h.Analytics.Overview)
	secured.GET("/stakeholders", h.Analytics.Stakeholders)
	secured.GET("/trends", h.Analytics.Trends)

	secured.GET("/reports", h.Reports.List)
	secured.GET("/reports/raw", h.Reports.Raw)

	secured.GET("/profile", h.Profile.Profile)
	secured.GET("/authorizations", h.Profile.Authorizations)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
