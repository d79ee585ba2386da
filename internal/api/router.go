package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/sweettreats/storefront/internal/api/handler"
	"github.com/sweettreats/storefront/internal/api/middleware"
	"github.com/sweettreats/storefront/internal/core/ports"
)

// Deps are the collaborators the HTTP adapter is built from.
type Deps struct {
	Store     ports.Storefront
	Exec      handler.Executor
	Tokens    handler.TokenIssuer
	JWTSecret string

	// Notifier and Redis are optional.
	Notifier ports.OrderNotifier
	Redis    *redis.Client
	Log      zerolog.Logger

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "bakery_http",
		Registerer: d.Registerer,
	}))

	// --- Dependencies ---
	session := handler.NewSession(d.Store, d.Exec)
	authHandler := handler.NewAuthHandler(session, d.Tokens)
	catalogHandler := handler.NewCatalogHandler(session)
	orderHandler := handler.NewOrderHandler(session, d.Notifier, d.Log)
	healthHandler := handler.NewHealthHandler(d.Exec, d.Redis)
	authMiddleware := middleware.Auth(d.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- Storefront routes ---
	e.GET("/v1/catalog", catalogHandler.List)

	v1 := e.Group("/v1", authMiddleware)
	v1.GET("/session", authHandler.Current)

	v1.POST("/catalog", catalogHandler.Create)
	v1.PUT("/catalog/:id", catalogHandler.Update)
	v1.DELETE("/catalog/:id", catalogHandler.Delete)

	v1.GET("/cart", orderHandler.Cart)
	v1.POST("/cart/lines", orderHandler.AddLine)
	v1.DELETE("/cart/lines/:id", orderHandler.RemoveLine)
	v1.POST("/checkout", orderHandler.Checkout)
	v1.POST("/payments", orderHandler.Pay)

	// --- Health probes & metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – is the event loop draining?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: d.Gatherer,
	}))

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
