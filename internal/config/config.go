package config

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port     string
	Provider string
	Logging  LoggingConfig
	Sleeper  SleeperConfig
	Sync     SyncConfig
	Upstream UpstreamConfig
	HTTP     HTTPConfig
	Metrics  MetricsConfig
}

// LoggingConfig selects log level and output format.
type LoggingConfig struct {
	Level  string
	Format string
}

// HTTPConfig controls the public HTTP surface.
type HTTPConfig struct {
	AllowedOrigins []string
}

var dotenvFiles = []string{".env"}

// Load reads configuration from environment variables with sensible defaults.
// Values from a local .env file are applied first without overriding the real environment.
func Load() Config {
	loadDotenv()
	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Provider: envOrDefault(envProvider, defaultProvider),
		Logging: LoggingConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Sleeper:  loadSleeper(),
		Sync:     loadSync(),
		Upstream: loadUpstream(),
		HTTP: HTTPConfig{
			AllowedOrigins: listEnvOrDefault(envCORSOrigins, []string{defaultCORSOrigin}),
		},
		Metrics: loadMetrics(),
	}
}

func loadDotenv() {
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("failed to read env file", slog.String("file", file), "error", err)
		}
	}
}
