package providers

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"fantasy-hud-service/internal/domain/leagues"
	"fantasy-hud-service/internal/domain/players"
	"fantasy-hud-service/internal/domain/trending"
	"fantasy-hud-service/internal/metrics"
)

const (
	defaultRetryAttempts = 2
	defaultBackoff       = 250 * time.Millisecond
	maxRetryAfter        = 10 * time.Second
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a DataProvider with retry/backoff behavior and attempt metrics.
type retryingProvider struct {
	inner       DataProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			base := time.Duration(attempt) * backoff
			jitter := time.Duration(rand.Int63n(int64(backoff)/5 + 1))
			return base + jitter
		},
	}
}

func (r *retryingProvider) FetchPlayers(ctx context.Context, sport string) ([]players.Player, error) {
	return withRetry(ctx, r, ResourcePlayers, func(ctx context.Context) ([]players.Player, error) {
		return r.inner.FetchPlayers(ctx, sport)
	})
}

func (r *retryingProvider) FetchTrending(ctx context.Context, query trending.Query) ([]trending.Entry, error) {
	return withRetry(ctx, r, ResourceTrending, func(ctx context.Context) ([]trending.Entry, error) {
		return r.inner.FetchTrending(ctx, query)
	})
}

func (r *retryingProvider) FetchLeague(ctx context.Context, leagueID string) (leagues.League, error) {
	return withRetry(ctx, r, ResourceLeague, func(ctx context.Context) (leagues.League, error) {
		return r.inner.FetchLeague(ctx, leagueID)
	})
}

func (r *retryingProvider) FetchRosters(ctx context.Context, leagueID string) ([]leagues.Roster, error) {
	return withRetry(ctx, r, ResourceRosters, func(ctx context.Context) ([]leagues.Roster, error) {
		return r.inner.FetchRosters(ctx, leagueID)
	})
}

// Close releases resources held by the wrapped provider.
func (r *retryingProvider) Close() {
	if c, ok := r.inner.(interface{ Close() }); ok {
		c.Close()
	}
}

func withRetry[T any](ctx context.Context, r *retryingProvider, resource Resource, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if r == nil || r.inner == nil {
		return zero, ErrProviderUnavailable
	}

	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		result, err := fn(ctx)
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ErrProviderUnavailable) {
			return zero, err
		}
		if attempt == r.maxAttempts {
			break
		}

		delay := r.backoffFn(attempt)
		if rl, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.name, rl.RetryAfter)
			if rl.RetryAfter > 0 {
				delay = min(rl.RetryAfter, maxRetryAfter)
			}
		}

		logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch retry",
			"resource", string(resource), "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		// backoff with context awareness
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}

	logWithProvider(ctx, r.logger, slog.LevelWarn, r.name, "provider fetch failed",
		"resource", string(resource), "attempts", r.maxAttempts, "err", lastErr)
	return zero, lastErr
}
