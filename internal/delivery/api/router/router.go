// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strings"

	"resumecoach/config"
	"resumecoach/internal/delivery/api/middleware"
	"resumecoach/internal/delivery/api/router/handler"
	"resumecoach/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

const defaultMetricsPath = "/metrics"

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	AnalysisHandler *handler.AnalysisHandler
	HealthHandler   *handler.HealthHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
	Metrics         *metrics.Metrics `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	analysisHandler *handler.AnalysisHandler
	healthHandler   *handler.HealthHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
	metrics         *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		analysisHandler: params.AnalysisHandler,
		healthHandler:   params.HealthHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
		metrics:         params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled && r.metrics != nil {
		path := r.config.Metrics.Path
		if path == "" {
			path = defaultMetricsPath
		}
		e.GET(path, echo.WrapHandler(r.metrics.Handler()))
	}

	api := e.Group("/api")

	// Credential routes are throttled per client
	throttle := middleware.NewRateLimiter(r.config.RateLimit)
	api.POST("/signup", r.accountHandler.Signup, throttle)
	api.POST("/login", r.accountHandler.Login, throttle)

	api.POST("/analyze", r.analysisHandler.Analyze, r.authMiddleware.Authenticate)
	api.GET("/history", r.analysisHandler.History, r.authMiddleware.Authenticate)

	api.Any("", middleware.NotFoundAPI)
	api.Any("/*", middleware.NotFoundAPI)
}

// RegisterStatic serves the browser client for every path outside /api.
func (r *router) RegisterStatic(e *echo.Echo) {
	if r.config.HTTP.StaticDir == "" {
		return
	}

	e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
		Root:  r.config.HTTP.StaticDir,
		Index: "index.html",
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path

			return path == "/api" || strings.HasPrefix(path, "/api/")
		},
	}))
}
