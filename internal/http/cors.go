package http

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	cardgenHTTP "github.com/allisson/cardgen/internal/cardgen/http"
)

// createCORSMiddleware creates a CORS middleware for browser clients of the card
// endpoints. Returns nil when CORS is disabled or no valid origin is configured.
// The batch headers are exposed so a browser can read them off the download.
func createCORSMiddleware(enabled bool, allowOriginsStr string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins := parseOrigins(allowOriginsStr)
	if len(origins) == 0 {
		logger.Warn("CORS enabled but no valid origins configured, CORS will not be applied")
		return nil
	}

	logger.Info("CORS enabled",
		slog.Int("origin_count", len(origins)),
		slog.Any("origins", origins))

	return cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Accept", "Content-Type"},
		ExposeHeaders: []string{
			"X-Request-Id",
			"Content-Disposition",
			cardgenHTTP.HeaderBatchID,
			cardgenHTTP.HeaderGenerated,
			cardgenHTTP.HeaderAttempts,
		},
		MaxAge: 12 * time.Hour,
	})
}

// parseOrigins splits a comma-separated origin list, dropping blanks.
func parseOrigins(originsStr string) []string {
	if originsStr == "" {
		return nil
	}

	parts := strings.Split(originsStr, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
