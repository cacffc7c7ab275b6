package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/paintops/damagecast/config"
	_ "github.com/paintops/damagecast/docs"
	"github.com/paintops/damagecast/internal/cache"
	"github.com/paintops/damagecast/internal/database"
	"github.com/paintops/damagecast/internal/features"
	"github.com/paintops/damagecast/internal/handlers"
	"github.com/paintops/damagecast/internal/metrics"
	"github.com/paintops/damagecast/internal/middleware"
	"github.com/paintops/damagecast/internal/models"
	"github.com/paintops/damagecast/internal/profiles"
	"github.com/paintops/damagecast/internal/repository"
	"github.com/paintops/damagecast/internal/scoring"
	"github.com/paintops/damagecast/internal/services"
)

// @title Paint Shipment Damage API
// @version 1.0
// @description Damage prediction and shipment analytics for paint tin logistics
// @BasePath /api/v1
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Invalid LOG_LEVEL %q: %v", cfg.LogLevel, err)
	}
	log.SetLevel(level)

	// Create context for initialization
	ctx := context.Background()

	// Initialize database connection
	db, err := database.New(ctx, cfg.PGURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Load model artifacts. Both loaders tolerate missing files so the
	// service can start and fall back to heuristic scoring.
	snapshot := profiles.Load(cfg.ModelDir)
	adapter := scoring.Load(cfg.ModelDir)

	// Initialize caches and metrics
	analyticsCache := cache.NewAnalyticsCache(5 * time.Minute)
	registry := metrics.NewRegistry()

	// Initialize repositories
	shipmentRepo := repository.NewShipmentRepository(db.Pool)
	predictionRepo := repository.NewPredictionRepository(db.Pool)
	analyticsRepo := repository.NewAnalyticsRepository(db.Pool)

	// Initialize services
	predictionSvc := services.NewPredictionService(features.NewEngineer(snapshot), adapter, predictionRepo, registry)
	shipmentSvc := services.NewShipmentService(shipmentRepo)
	analyticsSvc := services.NewAnalyticsService(analyticsRepo, analyticsCache)

	// Initialize handlers
	predictionHandler := handlers.NewPredictionHandler(predictionSvc)
	shipmentHandler := handlers.NewShipmentHandler(shipmentSvc)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsSvc)

	// Setup Gin router
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery(), middleware.Metrics(registry))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		dbStatus := "connected"
		if err := db.Ping(pingCtx); err != nil {
			dbStatus = "disconnected"
		}
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:       "healthy",
			Database:     dbStatus,
			ModelsLoaded: len(adapter.ModelNames()),
		})
	})

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(registry.Handler()))

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		// Prediction routes
		predictions := v1.Group("/predictions")
		{
			predictions.POST("/predict", predictionHandler.Predict)
			predictions.POST("/predict/batch", predictionHandler.PredictBatch)
			predictions.GET("/models", predictionHandler.Models)
			predictions.GET("/recent", predictionHandler.Recent)
		}

		// Shipment routes
		shipments := v1.Group("/shipments")
		{
			shipments.POST("", shipmentHandler.Create)
			shipments.GET("", shipmentHandler.List)
			shipments.GET("/:id", shipmentHandler.Get)
			shipments.PATCH("/:id", shipmentHandler.Update)
			shipments.DELETE("/:id", shipmentHandler.Delete)
			shipments.POST("/import", shipmentHandler.Import)
		}

		// Analytics routes
		analytics := v1.Group("/analytics")
		{
			analytics.GET("/summary", analyticsHandler.Summary)
			analytics.GET("/dealers", analyticsHandler.Dealers)
			analytics.GET("/warehouses", analyticsHandler.Warehouses)
			analytics.GET("/trends", analyticsHandler.Trends)
			analytics.GET("/problems", analyticsHandler.Problems)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	fmt.Println("Server exited")
}
