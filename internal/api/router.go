package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Mayursuryawanshi23/CodeX-backend/internal/api/handler"
	"github.com/Mayursuryawanshi23/CodeX-backend/internal/api/middleware"
	"github.com/Mayursuryawanshi23/CodeX-backend/internal/core/service"
	"github.com/Mayursuryawanshi23/CodeX-backend/internal/infrastructure/config"
	mongodb "github.com/Mayursuryawanshi23/CodeX-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/Mayursuryawanshi23/CodeX-backend/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("codex"))

	// --- Dependencies ---
	tokenCfg := service.TokenConfig{Secret: cfg.JWTSecret, TTL: cfg.TokenTTL}
	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	verifier := service.NewIdentityVerifier(userRepo, tokenCfg)
	issuer := service.NewTokenIssuer(tokenCfg)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.LoginFailureLimit)

	authService := service.NewAuthService(userRepo, issuer, verifier, throttle, log)
	projectService := service.NewProjectService(projectRepo, verifier, log)

	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	bearer := middleware.BearerToken()

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.SignUp)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, bearer)

	// --- Project routes ---
	v1 := e.Group("/v1", bearer)
	v1.POST("/projects", projectHandler.Create)
	v1.GET("/projects", projectHandler.List)
	v1.GET("/projects/:id", projectHandler.Get)
	v1.PUT("/projects/:id", projectHandler.Save)
	v1.PATCH("/projects/:id", projectHandler.Rename)
	v1.DELETE("/projects/:id", projectHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
