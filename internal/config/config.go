// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int
	// ServerWriteTimeout bounds a single response, generation included.
	ServerWriteTimeout time.Duration
	// ShutdownTimeout is how long graceful shutdown waits for in-flight requests.
	ShutdownTimeout time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// GeneratorTargetLength is the generated number length, check digit included.
	GeneratorTargetLength int
	// GeneratorAttemptMultiplier sizes the attempt budget as quantity times this value.
	GeneratorAttemptMultiplier int
	// GeneratorProgressInterval is the number of attempts between progress reports.
	GeneratorProgressInterval int
	// GeneratorMaxQuantity caps the quantity of a single generation.
	GeneratorMaxQuantity int
	// GeneratorOutputFile is the default export path used by the generate command.
	GeneratorOutputFile string
	// GeneratorExportBucketURL, when set, sends exports of the generate command to
	// a blob bucket (file:///dir, mem://) instead of the local file system.
	GeneratorExportBucketURL string

	// RateLimitEnabled indicates whether per-IP rate limiting of the card endpoints is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second per IP.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size of the per-IP limiter.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	loadDotEnv()

	return &Config{
		// Server
		ServerHost:         env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:         env.GetInt("SERVER_PORT", 8080),
		ServerWriteTimeout: env.GetDuration("SERVER_WRITE_TIMEOUT_SECONDS", 120, time.Second),
		ShutdownTimeout:    env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Generator
		GeneratorTargetLength:      env.GetInt("GENERATOR_TARGET_LENGTH", 16),
		GeneratorAttemptMultiplier: env.GetInt("GENERATOR_ATTEMPT_MULTIPLIER", 10),
		GeneratorProgressInterval:  env.GetInt("GENERATOR_PROGRESS_INTERVAL", 10000),
		GeneratorMaxQuantity:       env.GetInt("GENERATOR_MAX_QUANTITY", 1000000),
		GeneratorOutputFile:        env.GetString("GENERATOR_OUTPUT_FILE", "generated_cards.txt"),
		GeneratorExportBucketURL:   env.GetString("GENERATOR_EXPORT_BUCKET_URL", ""),

		// Rate limiting (per IP)
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 5.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 10),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "cardgen"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

// loadDotEnv searches for a .env file from the current directory up to the
// root directory and loads the first one found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
