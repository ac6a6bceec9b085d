package api

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/space-market/pos-server/docs"
	"github.com/space-market/pos-server/internal/api/handler"
	"github.com/space-market/pos-server/internal/api/middleware"
	"github.com/space-market/pos-server/internal/core/domain"
	"github.com/space-market/pos-server/internal/core/ports"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Products ports.ProductService
	Users    ports.UserService
	Balance  ports.BalanceService
	Info     domain.ServerInfo
	// Checks are run by the readiness probe, keyed by dependency name.
	Checks map[string]handler.Check

	// An empty JWTSecret leaves every route public.
	JWTSecret      string
	RequestTimeout time.Duration
	Log            zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.Metrics())
	e.Use(requestLogger(d.Log))
	e.Use(echomiddleware.Recover())

	// --- Handlers ---
	products := handler.NewProductHandler(d.Products)
	users := handler.NewUserHandler(d.Users)
	balance := handler.NewBalanceHandler(d.Balance)
	info := handler.NewInfoHandler(d.Info)
	health := handler.NewHealthHandler(d.Checks)

	admin := middleware.Require(d.JWTSecret, domain.RoleAdmin)
	till := middleware.Require(d.JWTSecret, domain.RoleAdmin, domain.RoleTerminal)

	v3 := e.Group("/api/v3", middleware.Timeout(d.RequestTimeout))

	// --- Products ---
	v3.GET("/products", products.List)
	v3.POST("/products", products.Create, admin...)
	v3.GET("/products/:id", products.Get)
	v3.PATCH("/products/:id", products.Edit, admin...)
	v3.DELETE("/products/:id", products.Delete, admin...)

	// --- Users ---
	v3.GET("/users", users.List)
	v3.POST("/users", users.Create, admin...)
	v3.GET("/users/stats", users.Stats)
	v3.GET("/users/:id", users.Get)
	v3.PATCH("/users/:id", users.Edit, admin...)
	v3.DELETE("/users/:id", users.Delete, admin...)

	// --- Balance ---
	v3.POST("/users/:id/buy", balance.Buy, till...)
	v3.POST("/users/:id/transfer", balance.Transfer, till...)
	v3.POST("/users/:id/:operation", balance.Operation, till...)
	v3.GET("/users/:id/events", balance.Events)

	v3.GET("/info", info.Get)

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", health.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", health.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("route", v.RoutePath).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
