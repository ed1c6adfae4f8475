package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/userhub/auth-service/docs"
	"github.com/userhub/auth-service/internal/api/handler"
	"github.com/userhub/auth-service/internal/api/middleware"
	"github.com/userhub/auth-service/internal/core/ports"
	"github.com/userhub/auth-service/internal/core/service"
	"github.com/userhub/auth-service/internal/core/token"
	mongodb "github.com/userhub/auth-service/internal/infrastructure/db/mongo"
	healthhandlers "github.com/userhub/auth-service/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, issuer *token.Issuer, audit ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("auth"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, service.NewBcryptHasher(), issuer, audit, log)
	authHandler := handler.NewAuthHandler(authService, issuer.AccessTTL(), issuer.RefreshTTL())
	authMiddleware := middleware.Auth(issuer)

	// --- Auth routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/admin", authHandler.RegisterAdmin)
	e.POST("/api/login", authHandler.Login)
	e.GET("/api/logout", authHandler.Logout)
	e.GET("/api/refresh", authHandler.Refresh)
	e.GET("/api/me", authHandler.Me, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
