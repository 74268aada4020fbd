package middleware

import (
	"net/http"

	"github.com/aviodata/traffic-api/internal/config"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// CORS builds the cross-origin policy from config. The dataset API is
// consumed by browser dashboards, so development allows any origin while
// deployed environments require an explicit origin list.
func CORS(cfg *config.CORSConfig, environment string, logger *zap.Logger) func(http.Handler) http.Handler {
	options := cors.Options{
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   cfg.ExposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	allowAny := func(r *http.Request, origin string) bool {
		return origin != ""
	}

	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			if environment != "development" && environment != "local" {
				logger.Warn("CORS configured with wildcard origin outside development",
					zap.String("environment", environment))
			}
			options.AllowOriginFunc = allowAny
			break
		}
	}

	switch {
	case options.AllowOriginFunc != nil:
		// wildcard already handled
	case len(cfg.AllowedOrigins) > 0:
		options.AllowedOrigins = cfg.AllowedOrigins
		logger.Info("CORS configured with explicit origins",
			zap.Strings("origins", cfg.AllowedOrigins))
	case environment == "development" || environment == "local" || environment == "":
		options.AllowOriginFunc = allowAny
		logger.Info("CORS allowing all origins in development mode")
	default:
		// an empty AllowedOrigins list defaults to "*" inside the cors
		// package, so deployed environments must deny explicitly
		options.AllowOriginFunc = func(r *http.Request, origin string) bool {
			return false
		}
		logger.Warn("CORS has no allowed origins, denying all cross-origin requests",
			zap.String("environment", environment))
	}

	return cors.Handler(options)
}
