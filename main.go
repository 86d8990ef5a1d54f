package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Anjani2611/legal-doc-simplifier/config"
	"github.com/Anjani2611/legal-doc-simplifier/engine"
	"github.com/Anjani2611/legal-doc-simplifier/handler"
	"github.com/Anjani2611/legal-doc-simplifier/job"
	"github.com/Anjani2611/legal-doc-simplifier/middleware"
	"github.com/Anjani2611/legal-doc-simplifier/monitoring"
	"github.com/Anjani2611/legal-doc-simplifier/pkg/logger"
	"github.com/Anjani2611/legal-doc-simplifier/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully")

	// Known-bad output log
	badStore := engine.NewKnownBadStore(cfg.KnownBad.Path)
	if err := badStore.Init(); err != nil {
		slog.Error("failed to initialize known-bad store", "error", err)
		os.Exit(1)
	}

	pipeline := engine.NewPipeline(badStore)

	// Optional MINIO archive for uploaded originals
	var archiveSvc *service.ArchiveService
	if cfg.Archive.Enabled {
		archiveSvc, err = service.NewArchiveService(&cfg.Archive)
		if err != nil {
			slog.Error("failed to initialize archive service", "error", err)
			os.Exit(1)
		}
		if err := archiveSvc.EnsureBucket(context.Background()); err != nil {
			slog.Error("failed to ensure archive bucket", "error", err)
			os.Exit(1)
		}
	}

	webhooks := service.NewWebhookManager(cfg.Webhooks)

	// Initialize document store with config
	service.InitDocumentStore(&cfg.Store)

	// Retention job removes documents past the configured window
	retention := job.NewRetentionJob(service.GetDocumentStore(), archiveSvc, &cfg.Store)
	if err := retention.Start(cfg.Jobs.RetentionSchedule); err != nil {
		slog.Error("failed to start retention job", "error", err)
		os.Exit(1)
	}
	defer retention.Stop()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(cfg)
	simplifyHandler := handler.NewSimplifyHandler(pipeline, webhooks, &cfg.Engine)
	documentHandler := handler.NewDocumentHandler(pipeline, archiveSvc, webhooks, &cfg.Engine)
	analysisHandler := handler.NewAnalysisHandler()
	adminHandler := handler.NewAdminHandler(badStore)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New() // Use New() instead of Default() to avoid default middleware

	// Add custom middleware
	router.Use(middleware.RequestID())                 // Request ID for tracing
	router.Use(middleware.Recovery())                  // Panic recovery
	router.Use(middleware.RequestLogger())             // Access logging
	router.Use(middleware.RateLimit(100, time.Minute)) // Rate limiting: 100 requests per minute

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(monitoring.Handler()))

	// Public routes
	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(&cfg.Auth))
	{
		protected.GET("/auth/me", authHandler.GetCurrentUser)

		protected.POST("/simplify/text", simplifyHandler.SimplifyText)

		protected.POST("/documents/upload", documentHandler.Upload)
		protected.GET("/documents", documentHandler.List)
		protected.GET("/documents/:id", documentHandler.Get)
		protected.GET("/documents/:id/export", documentHandler.Export)
		protected.DELETE("/documents/:id", documentHandler.Delete)

		protected.POST("/documents/:id/analyze", analysisHandler.Analyze)
		protected.GET("/documents/:id/risks", analysisHandler.Risks)

		protected.POST("/admin/mark_bad", adminHandler.MarkBad)
	}

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}
