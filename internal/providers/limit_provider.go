package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fantasy-hud-service/internal/domain/leagues"
	"fantasy-hud-service/internal/domain/players"
	"fantasy-hud-service/internal/domain/trending"
)

const defaultMinSpacing = 60 * time.Millisecond

// rateLimitedProvider wraps a DataProvider and enforces a minimum spacing between upstream calls.
type rateLimitedProvider struct {
	next     DataProvider
	interval time.Duration
	logger   *slog.Logger

	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

// NewRateLimitedProvider returns a DataProvider that spaces calls at least interval apart.
// Calls block until their slot arrives to avoid exceeding upstream quotas.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) DataProvider {
	if interval <= 0 {
		interval = defaultMinSpacing
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

func (p *rateLimitedProvider) FetchPlayers(ctx context.Context, sport string) ([]players.Player, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchPlayers(ctx, sport)
}

func (p *rateLimitedProvider) FetchTrending(ctx context.Context, query trending.Query) ([]trending.Entry, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchTrending(ctx, query)
}

func (p *rateLimitedProvider) FetchLeague(ctx context.Context, leagueID string) (leagues.League, error) {
	if err := p.wait(ctx); err != nil {
		return leagues.League{}, err
	}
	return p.next.FetchLeague(ctx, leagueID)
}

func (p *rateLimitedProvider) FetchRosters(ctx context.Context, leagueID string) ([]leagues.Roster, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchRosters(ctx, leagueID)
}

// Close releases resources held by the wrapped provider.
func (p *rateLimitedProvider) Close() {
	if p == nil {
		return
	}
	if c, ok := p.next.(interface{ Close() }); ok {
		c.Close()
	}
}

// wait reserves the next call slot and sleeps until it arrives.
func (p *rateLimitedProvider) wait(ctx context.Context) error {
	if p == nil || p.next == nil {
		if p != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		}
		return ErrProviderUnavailable
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	now := p.now()
	slot := p.last.Add(p.interval)
	if slot.Before(now) {
		slot = now
	}
	p.last = slot
	p.mu.Unlock()

	delay := slot.Sub(now)
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled")
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
