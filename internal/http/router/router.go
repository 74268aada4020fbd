package router

import (
	"encoding/json"
	"net/http"

	"github.com/aviodata/traffic-api/internal/config"
	"github.com/aviodata/traffic-api/internal/database"
	"github.com/aviodata/traffic-api/internal/http/handler"
	"github.com/aviodata/traffic-api/internal/http/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/aviodata/traffic-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg              *config.Config
	logger           *zap.Logger
	db               *gorm.DB
	rateLimiter      *middleware.RateLimiter
	recordsHandler   *handler.RecordsHandler
	metaHandler      *handler.MetaHandler
	analyticsHandler *handler.AnalyticsHandler
	datasetHandler   *handler.DatasetHandler
	eventsHandler    *handler.EventsHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	rateLimiter *middleware.RateLimiter,
	recordsHandler *handler.RecordsHandler,
	metaHandler *handler.MetaHandler,
	analyticsHandler *handler.AnalyticsHandler,
	datasetHandler *handler.DatasetHandler,
	eventsHandler *handler.EventsHandler,
) *Router {
	return &Router{
		cfg:              cfg,
		logger:           logger,
		db:               db,
		rateLimiter:      rateLimiter,
		recordsHandler:   recordsHandler,
		metaHandler:      metaHandler,
		analyticsHandler: analyticsHandler,
		datasetHandler:   datasetHandler,
		eventsHandler:    eventsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with detailed stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
				"wait_count":           stats.WaitCount,
				"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
				"max_idle_closed":      stats.MaxIdleClosed,
				"max_lifetime_closed":  stats.MaxLifetimeClosed,
			},
		})
	})

	// Combined readiness check (checks all dependencies)
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		allHealthy := true

		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{
				"status": "healthy",
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if allHealthy {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "healthy",
				"checks": checks,
			})
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "unhealthy",
				"checks": checks,
			})
		}
	})

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Records
		r.Get("/records", rt.recordsHandler.List)

		// Filter discovery
		r.Route("/meta", func(r chi.Router) {
			r.Get("/years", rt.metaHandler.Years)
			r.Get("/countries", rt.metaHandler.Countries)
			r.Get("/metrics", rt.metaHandler.Metrics)
		})

		// Aggregated views
		r.Route("/analytics", func(r chi.Router) {
			r.Get("/summary", rt.analyticsHandler.Summary)
			r.Get("/timeseries", rt.analyticsHandler.Timeseries)
			r.Get("/countries", rt.analyticsHandler.Countries)
			r.Get("/seasonality", rt.analyticsHandler.Seasonality)
			r.Get("/carriers", rt.analyticsHandler.Carriers)
			r.Get("/recovery", rt.analyticsHandler.Recovery)
		})

		// Disruption annotations
		r.Get("/events", rt.eventsHandler.List)

		// Dataset status and admin operations
		r.Route("/dataset", func(r chi.Router) {
			r.Get("/status", rt.datasetHandler.Status)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAPIKey(rt.cfg.ApiKey.Value, rt.logger))
				r.Post("/refresh", rt.datasetHandler.Refresh)
				r.Get("/history", rt.datasetHandler.History)
			})
		})
	})

	return r
}
