package api

import (
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/comingup/marketplace-api/internal/api/graphql"
	"github.com/comingup/marketplace-api/internal/api/handler"
	"github.com/comingup/marketplace-api/internal/api/middleware"
)

// Dependencies carries everything the router needs, constructed at startup.
type Dependencies struct {
	DB         *mongo.Database
	Redis      *redis.Client
	Services   graphql.Services
	Dispatcher graphql.Dispatcher
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// The single GraphQL endpoint runs behind the optional-auth middleware:
// authentication never rejects a request, the authorization policy does.
func NewRouter(deps Dependencies) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- GraphQL ---
	schema, err := graphql.NewSchema(deps.Services, deps.Dispatcher, deps.Log)
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}
	gqlHandler := graphql.NewHandler(schema, deps.Log)
	e.POST("/graphql", gqlHandler.Execute, middleware.Auth(deps.Services.Auth))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)             // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)   // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
