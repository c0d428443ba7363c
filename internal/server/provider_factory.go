package server

import (
	"log/slog"
	"strings"

	"fantasy-hud-service/internal/config"
	"fantasy-hud-service/internal/metrics"
	"fantasy-hud-service/internal/providers"
	"fantasy-hud-service/internal/providers/fixture"
	"fantasy-hud-service/internal/providers/sleeper"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

// wrap spaces every upstream call and retries transient failures.
func (f providerFactory) wrap(cfg config.Config, base providers.DataProvider) providers.DataProvider {
	limited := providers.NewRateLimitedProvider(base, cfg.Upstream.MinSpacing, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), cfg.Upstream.MaxAttempts, cfg.Upstream.Backoff)
}

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "fixture", "":
		return fixture.New()
	case "sleeper":
		return sleeper.NewClient(sleeper.Config{
			BaseURL: cfg.Sleeper.BaseURL,
			Sport:   cfg.Sleeper.Sport,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
