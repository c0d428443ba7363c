package config

import "time"

const (
	envPort         = "PORT"
	envProvider     = "PROVIDER"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envCORSOrigins  = "CORS_ALLOWED_ORIGINS"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envTrendingInterval = "TRENDING_INTERVAL"
	envTrendingLookback = "TRENDING_LOOKBACK_HOURS"
	envTrendingLimit    = "TRENDING_LIMIT"
	envDirectoryEvery   = "DIRECTORY_INTERVAL"
	envLeagueID         = "LEAGUE_ID"

	envMaxAttempts = "PROVIDER_MAX_ATTEMPTS"
	envBackoff     = "PROVIDER_BACKOFF"
	envMinSpacing  = "PROVIDER_MIN_SPACING"

	defaultPort        = "4000"
	defaultProvider    = "fixture"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	defaultCORSOrigin  = "*"
	defaultMetricsPort = "9090"
	defaultServiceName = "fantasy-hud-service"

	defaultTrendingInterval = 5 * time.Minute
	defaultTrendingLookback = 24
	defaultTrendingLimit    = 25
	defaultDirectoryEvery   = 60 * time.Minute

	defaultMaxAttempts = 2
	defaultBackoff     = 250 * time.Millisecond
	// Sleeper asks clients to stay under 1000 calls per minute.
	defaultMinSpacing = 60 * time.Millisecond
)
