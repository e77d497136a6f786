package api

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/lightbnb/lightbnb-api/docs"
	"github.com/lightbnb/lightbnb-api/internal/api/handler"
	"github.com/lightbnb/lightbnb-api/internal/api/middleware"
	"github.com/lightbnb/lightbnb-api/internal/core/ports"
	"github.com/lightbnb/lightbnb-api/internal/core/service"
	"github.com/lightbnb/lightbnb-api/internal/infrastructure/db/postgres"
	redisstore "github.com/lightbnb/lightbnb-api/internal/infrastructure/db/redis"
)

// Dependencies are the connections and settings the router wires into
// repositories, services and handlers.
type Dependencies struct {
	DB    *sqlx.DB
	Redis *redis.Client // nil disables the idempotency guard
	Mongo *mongo.Client // nil unless properties are written to MongoDB

	// PropertyWriter receives new properties; PropertyStore names it.
	PropertyWriter ports.PropertyWriter
	PropertyStore  string

	JWTSecret      string
	TokenTTL       time.Duration
	QueryTimeout   time.Duration
	IdempotencyTTL time.Duration

	Logger zerolog.Logger
	// Registerer receives the HTTP metrics. Defaults to a fresh registry.
	Registerer *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	reg := deps.Registerer
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "lightbnb",
		Registerer: reg,
	}))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(deps.DB, deps.QueryTimeout)
	propertyRepo := postgres.NewPropertyRepository(deps.DB, deps.QueryTimeout)
	reservationRepo := postgres.NewReservationRepository(deps.DB, deps.QueryTimeout)

	writer := deps.PropertyWriter
	if writer == nil {
		writer = propertyRepo
	}

	userService := service.NewUserService(userRepo, deps.JWTSecret, deps.TokenTTL, deps.Logger.With().Str("component", "users").Logger())
	propertyService := service.NewPropertyService(propertyRepo, writer, deps.Logger.With().Str("component", "properties").Logger())
	reservationService := service.NewReservationService(reservationRepo, deps.Logger.With().Str("component", "reservations").Logger())

	userHandler := handler.NewUserHandler(userService)
	propertyHandler := handler.NewPropertyHandler(propertyService, deps.PropertyStore)
	reservationHandler := handler.NewReservationHandler(reservationService)

	auth := middleware.Auth(deps.JWTSecret)
	guard := func(scope string) []echo.MiddlewareFunc {
		if deps.Redis == nil {
			return nil
		}
		store := redisstore.NewIdempotencyStore(deps.Redis, deps.IdempotencyTTL)
		return []echo.MiddlewareFunc{middleware.Idempotency(store, scope, deps.Logger)}
	}

	// --- User routes ---
	e.POST("/users", userHandler.Register, guard("users")...)
	e.POST("/users/login", userHandler.Login)
	e.GET("/users/me", userHandler.Me, auth)

	// --- Property routes ---
	e.GET("/properties", propertyHandler.List)
	e.POST("/properties", propertyHandler.Create, append([]echo.MiddlewareFunc{auth}, guard("properties")...)...)

	// --- Reservation routes ---
	e.GET("/reservations", reservationHandler.List, auth)

	// --- Health probes (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewHealthDependenciesHandler(dependencyChecks(deps)).Readiness)

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{prometheus.DefaultGatherer, reg},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func dependencyChecks(deps Dependencies) map[string]handler.DependencyCheck {
	checks := map[string]handler.DependencyCheck{
		"postgres": deps.DB.PingContext,
	}
	if deps.Redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return deps.Redis.Ping(ctx).Err()
		}
	}
	if deps.Mongo != nil {
		checks["mongodb"] = func(ctx context.Context) error {
			return deps.Mongo.Ping(ctx, nil)
		}
	}
	return checks
}

// requestLogger writes one zerolog line per request.
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
			evt := log.Info()
			if v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
