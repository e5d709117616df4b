package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sidd-gupta05/getfly-project/internal/api/handler"
	"github.com/sidd-gupta05/getfly-project/internal/api/middleware"
	"github.com/sidd-gupta05/getfly-project/internal/core/domain"
	"github.com/sidd-gupta05/getfly-project/internal/core/service"
	mongodb "github.com/sidd-gupta05/getfly-project/internal/infrastructure/db/mongo"
	redisdb "github.com/sidd-gupta05/getfly-project/internal/infrastructure/db/redis"
	healthhandlers "github.com/sidd-gupta05/getfly-project/internal/infrastructure/http/handlers"
)

// Deps carries the shared infrastructure the router wires handlers onto.
type Deps struct {
	DB     *mongo.Database
	Redis  *redis.Client
	Tokens *service.TokenService
	Queue  service.ReportQueue
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("sitetracker"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.DB)
	projectRepo := mongodb.NewProjectRepository(deps.DB)
	reportRepo := mongodb.NewReportRepository(deps.DB)
	accessCache := redisdb.NewAccessCache(deps.Redis)

	authService := service.NewAuthService(userRepo, deps.Tokens)
	projectService := service.NewProjectService(projectRepo, reportRepo, accessCache, deps.Logger)
	reportService := service.NewReportService(projectRepo, reportRepo, deps.Queue, accessCache, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	reportHandler := handler.NewReportHandler(reportService)

	// --- Public routes: login and register are exempt from auth ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Protected routes ---
	v1 := e.Group("/v1", middleware.Auth(deps.Tokens))

	v1.GET("/projects", projectHandler.List)
	v1.POST("/projects", projectHandler.Create,
		middleware.RBAC("only admins and managers can create projects", domain.RoleAdmin, domain.RoleManager))
	v1.GET("/projects/:id", projectHandler.Get)
	v1.PUT("/projects/:id", projectHandler.Update,
		middleware.RBAC("only admins and managers can update projects", domain.RoleAdmin, domain.RoleManager))
	v1.DELETE("/projects/:id", projectHandler.Delete,
		middleware.RBAC("only admins can delete projects", domain.RoleAdmin))
	v1.GET("/projects/:id/reports", reportHandler.List)
	v1.POST("/projects/:id/reports", reportHandler.Create)

	return e
}
