package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"scamwatch/internal/cache"
	"scamwatch/internal/config"
	"scamwatch/internal/database"
	"scamwatch/internal/featureflags"
	"scamwatch/internal/middleware"
	"scamwatch/internal/models"
	"scamwatch/internal/repository"
	"scamwatch/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	reportRepo     repository.ReportRepository
	notifRepo      repository.NotificationRepository
	analyticsRepo  repository.AnalyticsRepository
	featureFlags   *featureflags.Manager

	userService         *service.UserService
	reportService       *service.ReportService
	notificationService *service.NotificationService
	analyticsService    *service.AnalyticsService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis and optionally
// performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	prom := middleware.InitMetrics("scamwatch-api")

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		userRepo:       userRepo,
		reportRepo:     reportRepo,
		notifRepo:      notifRepo,
		analyticsRepo:  analyticsRepo,
		featureFlags:   featureflags.NewManager(cfg.FeatureFlags),
	}

	server.userService = service.NewUserService(server.userRepo)
	server.notificationService = service.NewNotificationService(server.notifRepo)
	server.reportService = service.NewReportService(server.reportRepo, server.notificationService, server.featureFlags)
	server.analyticsService = service.NewAnalyticsService(server.analyticsRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// OpenTelemetry server span (sets the traceID local)
	app.Use(middleware.TracingMiddleware())

	// Context Middleware to propagate request and trace IDs
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	// Backwards-compatible legacy route: map /health to readiness (keeps existing scripts working)
	app.Get("/health", s.ReadinessCheck)
	api.Get("/", s.HealthCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Scamwatch Backend Metrics Dashboard",
	}))

	// User routes
	users := api.Group("/users")
	users.Get("/", s.GetUsers)
	users.Post("/", middleware.RateLimit(
		s.redis, 10, 10*time.Minute, "create_user"), s.CreateUser)
	// Define specific /:userId/:resource routes BEFORE generic /:id routes
	users.Get("/:userId/reports", s.GetUserReports)
	users.Get("/:userId/notifications", s.GetUserNotifications)
	users.Put("/:userId/notifications/read-all", s.MarkAllNotificationsRead)
	users.Get("/:id", s.GetUser)
	users.Put("/:id", s.UpdateUser)

	// Report routes
	reports := api.Group("/reports")
	reports.Post("/", middleware.RateLimit(
		s.redis, 5, 5*time.Minute, "create_report"), s.CreateReport)
	reports.Get("/", s.GetReports)
	// Specific routes before generic /:id
	reports.Get("/trending", s.GetTrendingReports)
	reports.Post("/:id/vote", middleware.RateLimit(
		s.redis, 30, time.Minute, "vote"), s.VoteOnReport)
	reports.Put("/:id/status", s.UpdateReportStatus)
	reports.Get("/:id", s.GetReport)
	reports.Delete("/:id", s.DeleteReport)

	// Notification routes
	notifications := api.Group("/notifications")
	notifications.Put("/:id/read", s.MarkNotificationRead)

	// Analytics routes
	analytics := api.Group("/analytics")
	analytics.Get("/reports", s.GetReportStats)

	// Operational routes
	api.Get("/feature-flags", s.GetFeatureFlags)
}

// HealthCheck is a legacy/simple alias for ReadinessCheck
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return s.ReadinessCheck(c)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	// The API degrades gracefully without Redis (no caching, fail-open rate
	// limits), so Redis state is reported but never fails readiness.
	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	switch {
	case dbStatus == "unhealthy":
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	case redisStatus != "healthy":
		overallStatus = "degraded"
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "Scamwatch",
		"version": "1.0.0",
		"status":  overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Scamwatch API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, err)
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	// Close database connection
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	// Close Redis connection
	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
