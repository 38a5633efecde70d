package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ecoscanhq/ecoscan-api/internal/cache"
	"github.com/ecoscanhq/ecoscan-api/internal/config"
	"github.com/ecoscanhq/ecoscan-api/internal/database"
	"github.com/ecoscanhq/ecoscan-api/internal/handler"
	"github.com/ecoscanhq/ecoscan-api/internal/middleware"
	"github.com/ecoscanhq/ecoscan-api/internal/repository"
	"github.com/ecoscanhq/ecoscan-api/internal/service"
	"github.com/ecoscanhq/ecoscan-api/internal/worker"
	"github.com/ecoscanhq/ecoscan-api/pkg/openfoodfacts"
)

// main is the application entrypoint for the EcoScan API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting ecoscan api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 3c. Initialize product cache
	productCache := cache.NewProductCache(redisClient, cfg.Cache.ProductTTL)

	// 4. Initialize Open Food Facts client
	offClient := openfoodfacts.NewClient(cfg.Lookup.BaseURL, cfg.Lookup.Timeout)

	// 5. Initialize repositories
	scanRepo := repository.NewScanRepository(db)

	// 6. Initialize services
	analysisSvc := service.NewAnalysisService(offClient, productCache)
	scanSvc := service.NewScanService(analysisSvc, scanRepo)
	analyticsSvc := service.NewAnalyticsService(scanRepo)
	reportSvc := service.NewReportService(scanRepo)

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:    handler.NewHealthHandler(db, redisClient),
		City:      handler.NewCityHandler(),
		Analysis:  handler.NewAnalysisHandler(analysisSvc),
		Scan:      handler.NewScanHandler(scanSvc),
		Analytics: handler.NewAnalyticsHandler(analyticsSvc),
		Report:    handler.NewReportHandler(reportSvc),
	}

	// 8. Initialize middleware
	scanLimiter := middleware.NewScanRateLimiter(20, time.Minute)
	defer scanLimiter.Stop()

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, scanLimiter)

	// 10. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 11. Start cache warm worker
	go worker.NewCacheWarmWorker(
		scanRepo, offClient, productCache,
		cfg.Worker.CacheWarmInterval,
		cfg.Worker.CacheWarmLimit,
	).Start(ctx)

	// 12. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 13. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 14. Cancel context to stop workers
	cancel()

	// 15. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health    *handler.HealthHandler
	City      *handler.CityHandler
	Analysis  *handler.AnalysisHandler
	Scan      *handler.ScanHandler
	Analytics *handler.AnalyticsHandler
	Report    *handler.ReportHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, scanLimiter *middleware.ScanRateLimiter) {
	v1 := router.Group("/v1")
	{
		v1.GET("/health", handlers.Health.GetHealth)
		v1.GET("/cities", handlers.City.GetCities)

		// Endpoints that hit the external product lookup are rate limited.
		v1.POST("/analyze", scanLimiter.Handle(), handlers.Analysis.AnalyzeProduct)
		v1.POST("/scans", scanLimiter.Handle(), handlers.Scan.CreateScan)

		v1.GET("/scans", handlers.Scan.ListScans)
		v1.GET("/scans/:id", handlers.Scan.GetScan)
		v1.GET("/analytics", handlers.Analytics.GetAnalytics)
		v1.GET("/reports/monthly", handlers.Report.GetMonthlyReport)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	// Run migrations
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
