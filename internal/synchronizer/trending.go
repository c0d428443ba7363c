package synchronizer

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"fantasy-hud-service/internal/domain/trending"
	"fantasy-hud-service/internal/logging"
	"fantasy-hud-service/internal/providers"
	"fantasy-hud-service/internal/store"
	"fantasy-hud-service/internal/validation"
)

// TrendingTaskName identifies the trending synchronizer in logs and metrics.
const TrendingTaskName = "trending"

// Trending keeps the most-added and most-dropped leaderboards current.
type Trending struct {
	provider providers.TrendingProvider
	query    trending.Query
	store    *store.MemoryStore[trending.Board]
	logger   *slog.Logger
}

// NewTrending builds a trending synchronizer. Zero query fields take the standard defaults.
func NewTrending(provider providers.TrendingProvider, query trending.Query, logger *slog.Logger) *Trending {
	return &Trending{
		provider: provider,
		query:    query.WithDefaults(),
		store:    store.NewMemoryStore[trending.Board](),
		logger:   logger,
	}
}

// Name implements poller.Task.
func (t *Trending) Name() string { return TrendingTaskName }

// Query returns the base query used for both directions.
func (t *Trending) Query() trending.Query { return t.query }

// State returns the published board.
func (t *Trending) State() store.Snapshot[trending.Board] {
	return t.store.Snapshot()
}

// Sync runs one fetch cycle. Both directions are fetched concurrently and
// committed together only when both succeed.
func (t *Trending) Sync(ctx context.Context) error {
	gen := t.store.Begin()
	logger := logging.FromContext(ctx, t.logger)

	var adds, drops []trending.Entry
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		entries, err := t.provider.FetchTrending(gctx, t.query.In(trending.DirectionAdd))
		if err != nil {
			return fmt.Errorf("fetch adds: %w", err)
		}
		adds = filterEntries(entries, trending.DirectionAdd)
		return nil
	})
	g.Go(func() error {
		entries, err := t.provider.FetchTrending(gctx, t.query.In(trending.DirectionDrop))
		if err != nil {
			return fmt.Errorf("fetch drops: %w", err)
		}
		drops = filterEntries(entries, trending.DirectionDrop)
		return nil
	})

	if err := g.Wait(); err != nil {
		t.store.Fail(gen, providers.DisplayMessage(providers.ResourceTrending))
		logging.Warn(logger, "trending sync failed",
			slog.String(logging.FieldSport, t.query.Sport),
			slog.Uint64(logging.FieldGeneration, gen),
		)
		return fmt.Errorf("trending sync: %w", err)
	}

	board := trending.Board{Adds: adds, Drops: drops}
	if !t.store.Commit(gen, board) {
		logging.Info(logger, "trending result superseded", slog.Uint64(logging.FieldGeneration, gen))
		return nil
	}
	logging.Info(logger, "trending refreshed",
		slog.Int("adds", len(adds)),
		slog.Int("drops", len(drops)),
	)
	return nil
}

// filterEntries keeps valid entries in source order and stamps the direction.
func filterEntries(entries []trending.Entry, direction trending.Direction) []trending.Entry {
	kept := validation.Filter(entries)
	for i := range kept {
		kept[i].Direction = direction
	}
	return kept
}
