package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aviodata/traffic-api/docs"
	"github.com/aviodata/traffic-api/internal/config"
	"github.com/aviodata/traffic-api/internal/database"
	"github.com/aviodata/traffic-api/internal/http/handler"
	"github.com/aviodata/traffic-api/internal/http/middleware"
	"github.com/aviodata/traffic-api/internal/http/router"
	"github.com/aviodata/traffic-api/internal/ingest"
	"github.com/aviodata/traffic-api/internal/jobs"
	"github.com/aviodata/traffic-api/internal/logger"
	"github.com/aviodata/traffic-api/internal/repository"
	"github.com/aviodata/traffic-api/internal/service"
	"github.com/aviodata/traffic-api/internal/storage"
	"go.uber.org/zap"
)

// @title Aviodata Traffic API
// @version 1.0
// @description Aggregated views over the French monthly air carrier traffic dataset (ASP_CIE, data.gouv.fr)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@aviodata.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description API Key for dataset administration

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	// Configure Swagger host based on environment
	switch basicCfg.App.Environment {
	case "staging":
		docs.SwaggerInfo.Host = "traffic-api-staging.aviodata.io"
	case "production":
		docs.SwaggerInfo.Host = "api.aviodata.io"
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// Load full configuration with secrets
	// In development: uses environment variables
	// In staging/production: fetches from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	// Connect to database
	db, err := database.NewDatabase(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Keep the schema current; migrations cover postgres deployments and
	// AutoMigrate covers the sqlite development database
	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize snapshot storage
	snapshotStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	// Initialize repositories
	trafficRepo := repository.NewTrafficRepository(db)
	importRunRepo := repository.NewImportRunRepository(db)
	eventRepo := repository.NewEventRepository(db)

	// Initialize services
	fetcher := ingest.NewClient(&cfg.Dataset, log)
	datasetService := service.NewDatasetService(fetcher, snapshotStorage, trafficRepo, importRunRepo, &cfg.Dataset, log)
	trafficService := service.NewTrafficService(trafficRepo, log)
	analyticsService := service.NewAnalyticsService(trafficRepo, eventRepo, cfg.Dataset.BaselineYear, log)
	eventService := service.NewEventService(eventRepo)

	// Seed the built-in disruption annotations
	if err := eventService.Seed(ctx); err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}

	// Initialize middleware
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	recordsHandler := handler.NewRecordsHandler(trafficService, log)
	metaHandler := handler.NewMetaHandler(trafficService, log)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, log)
	datasetHandler := handler.NewDatasetHandler(datasetService, log)
	eventsHandler := handler.NewEventsHandler(eventService, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		rateLimiter,
		recordsHandler,
		metaHandler,
		analyticsHandler,
		datasetHandler,
		eventsHandler,
	)

	// Initialize and start scheduler for the periodic dataset refresh
	var scheduler *jobs.Scheduler
	if cfg.Dataset.RefreshEnabled {
		scheduler = jobs.NewScheduler(log)

		// runStartupRefresh=true ingests the dataset immediately when the
		// store is empty or stale
		if err := jobs.RegisterRefreshJob(
			scheduler,
			datasetService,
			log,
			cfg.Dataset.RefreshCron,
			cfg.Dataset.RefreshTimeoutDuration(),
			true,
		); err != nil {
			log.Error("Failed to register refresh job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started with dataset refresh job",
				zap.String("cron_expr", cfg.Dataset.RefreshCron),
				zap.Duration("timeout", cfg.Dataset.RefreshTimeoutDuration()),
			)
		}
	} else {
		log.Info("Periodic dataset refresh disabled")
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		// Stop scheduler if running
		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
