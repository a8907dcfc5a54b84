package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/holamundo/registry-api/docs"
	"github.com/holamundo/registry-api/internal/api/handler"
	"github.com/holamundo/registry-api/internal/api/middleware"
	"github.com/holamundo/registry-api/internal/core/domain"
	"github.com/holamundo/registry-api/internal/core/ports"
	"github.com/holamundo/registry-api/internal/core/service"
)

const metricsSubsystem = "registry"

// RouterConfig carries the settings the router needs besides the services.
type RouterConfig struct {
	// JWTSecret enables bearer auth on write routes when non-empty.
	JWTSecret string
	// RateLimitRPS enables per-IP rate limiting when > 0.
	RateLimitRPS float64
	// Checks are the readiness probes, keyed by dependency name.
	Checks map[string]handler.Checker
	// Registry receives the per-request HTTP metrics and backs /metrics.
	// Nil uses the default registry.
	Registry *prometheus.Registry
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(users *service.UserService, forms *service.FormService, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(cfg.Logger))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if cfg.Registry != nil {
		registerer, gatherer = cfg.Registry, cfg.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metricsSubsystem,
		Registerer: registerer,
	}))
	if cfg.RateLimitRPS > 0 {
		e.Use(middleware.RateLimit(cfg.RateLimitRPS))
	}

	// --- Operational endpoints (no auth required) ---
	health := handler.NewHealthHandler(cfg.Checks)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Use cases, one Handler per operation shared by every family ---
	userHandler := handler.NewUserHandler(
		ports.HandlerFunc[ports.CreateUserInput, *ports.UserResult](users.Create),
		ports.HandlerFunc[ports.CreateUserInput, domain.ValidationResult](users.Validate),
		ports.HandlerFunc[ports.GetUserInput, *ports.UserDetail](users.Get),
		ports.HandlerFunc[ports.ListUsersInput, *ports.ListUsersResult](users.List),
	)
	formHandler := handler.NewFormHandler(
		ports.HandlerFunc[ports.CreateFormInput, *ports.FormResult](forms.Create),
		ports.HandlerFunc[ports.CreateFormInput, domain.ValidationResult](forms.Validate),
		ports.HandlerFunc[ports.GetFormInput, *ports.FormDetail](forms.Get),
		ports.HandlerFunc[ports.ListFormsInput, *ports.ListFormsResult](forms.List),
	)
	write := writeGuard(cfg.JWTSecret)

	// --- /api/v3: commands and queries ---
	v3 := e.Group("/api/v3")
	v3.POST("/users", userHandler.Create(handler.UserSummaryView), write...)
	v3.POST("/users/validate", userHandler.Validate)
	v3.GET("/users", userHandler.List)
	v3.GET("/users/:id", userHandler.Get)
	v3.POST("/forms", formHandler.Create(handler.FormSummaryView), write...)
	v3.POST("/forms/validate", formHandler.Validate)
	v3.GET("/forms", formHandler.List)
	v3.GET("/forms/:id", formHandler.Get)

	// --- /api/v2: use-case style creates ---
	v2 := e.Group("/api/v2")
	v2.POST("/users", userHandler.Create(handler.UserSummaryView), write...)
	v2.POST("/forms", formHandler.Create(handler.FormSummaryView), write...)

	// --- /api: legacy creates returning the full record ---
	legacy := e.Group("/api")
	legacy.POST("/users", userHandler.Create(handler.UserRecordView), write...)
	legacy.POST("/forms", formHandler.Create(handler.FormRecordView), write...)

	return e
}

// writeGuard returns the middleware chain protecting create routes. Without
// a secret the routes are open.
func writeGuard(jwtSecret string) []echo.MiddlewareFunc {
	if jwtSecret == "" {
		return nil
	}
	return []echo.MiddlewareFunc{
		middleware.Auth(jwtSecret),
		middleware.RBAC(domain.RoleAdmin, domain.RoleEditor),
	}
}
