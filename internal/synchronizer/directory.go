package synchronizer

import (
	"context"
	"fmt"
	"log/slog"

	"fantasy-hud-service/internal/domain/players"
	"fantasy-hud-service/internal/logging"
	"fantasy-hud-service/internal/providers"
	"fantasy-hud-service/internal/store"
	"fantasy-hud-service/internal/validation"
)

// DirectoryTaskName identifies the directory synchronizer in logs and metrics.
const DirectoryTaskName = "directory"

// Directory keeps the full player lookup table current.
type Directory struct {
	provider providers.PlayerProvider
	sport    string
	store    *store.MemoryStore[players.Directory]
	logger   *slog.Logger
}

// NewDirectory builds a directory synchronizer for the sport.
func NewDirectory(provider providers.PlayerProvider, sport string, logger *slog.Logger) *Directory {
	return &Directory{
		provider: provider,
		sport:    sport,
		store:    store.NewMemoryStore[players.Directory](),
		logger:   logger,
	}
}

// Name implements poller.Task.
func (d *Directory) Name() string { return DirectoryTaskName }

// State returns the published directory.
func (d *Directory) State() store.Snapshot[players.Directory] {
	return d.store.Snapshot()
}

// Sync fetches the whole catalog and replaces the directory. Incomplete
// records are dropped without failing the cycle.
func (d *Directory) Sync(ctx context.Context) error {
	gen := d.store.Begin()
	logger := logging.FromContext(ctx, d.logger)

	items, err := d.provider.FetchPlayers(ctx, d.sport)
	if err != nil {
		d.store.Fail(gen, providers.DisplayMessage(providers.ResourcePlayers))
		logging.Warn(logger, "directory sync failed",
			slog.String(logging.FieldSport, d.sport),
			slog.Uint64(logging.FieldGeneration, gen),
		)
		return fmt.Errorf("directory sync: %w", err)
	}

	kept := validation.Filter(items)
	dir := players.NewDirectory(kept)
	if !d.store.Commit(gen, dir) {
		logging.Info(logger, "directory result superseded", slog.Uint64(logging.FieldGeneration, gen))
		return nil
	}
	logging.Info(logger, "directory refreshed",
		slog.Int(logging.FieldCount, len(dir)),
		slog.Int(logging.FieldDropped, len(items)-len(kept)),
	)
	return nil
}
