package synchronizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"fantasy-hud-service/internal/domain/leagues"
	"fantasy-hud-service/internal/logging"
	"fantasy-hud-service/internal/metrics"
	"fantasy-hud-service/internal/providers"
	"fantasy-hud-service/internal/store"
	"fantasy-hud-service/internal/validation"
)

// RosterTaskName identifies the roster synchronizer in logs and metrics.
const RosterTaskName = "roster"

// Roster fetches a league's metadata and rosters once per league ID change.
// It never polls.
type Roster struct {
	provider providers.LeagueProvider
	store    *store.MemoryStore[leagues.Snapshot]
	logger   *slog.Logger
	metrics  *metrics.Recorder

	mu          sync.Mutex
	leagueID    string
	runCtx      context.Context
	stopRun     context.CancelFunc
	cancelCycle context.CancelFunc
	started     bool
	stopped     bool
	wg          sync.WaitGroup
}

// NewRoster builds a roster synchronizer with no league selected.
func NewRoster(provider providers.LeagueProvider, logger *slog.Logger, recorder *metrics.Recorder) *Roster {
	return &Roster{
		provider: provider,
		store:    store.NewMemoryStore[leagues.Snapshot](),
		logger:   logger,
		metrics:  recorder,
	}
}

// Name implements poller.Task.
func (r *Roster) Name() string { return RosterTaskName }

// State returns the published league snapshot.
func (r *Roster) State() store.Snapshot[leagues.Snapshot] {
	return r.store.Snapshot()
}

// LeagueID returns the currently selected league.
func (r *Roster) LeagueID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.leagueID
}

// SetLeagueID selects a league. Empty or unchanged IDs are ignored and return false.
// A new ID clears the published rosters and, once started, launches exactly one fetch.
func (r *Roster) SetLeagueID(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if id == r.leagueID {
		return false
	}
	r.leagueID = id
	if r.started && !r.stopped {
		r.launchLocked(id)
	}
	return true
}

// Start attaches the synchronizer. A league selected beforehand is fetched now.
func (r *Roster) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started || r.stopped {
		return
	}
	r.started = true
	r.runCtx, r.stopRun = context.WithCancel(ctx)
	if r.leagueID != "" {
		r.launchLocked(r.leagueID)
	}
}

// Stop detaches the synchronizer, cancels any in-flight fetch and waits for it to settle.
func (r *Roster) Stop(ctx context.Context) error {
	r.mu.Lock()
	r.stopped = true
	if r.stopRun != nil {
		r.stopRun()
	}
	r.mu.Unlock()

	settled := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(settled)
	}()
	select {
	case <-settled:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Sync runs one cycle for the selected league in the caller's goroutine, keeping the
// current value while it loads. Without a league it does nothing.
func (r *Roster) Sync(ctx context.Context) error {
	r.mu.Lock()
	id := r.leagueID
	r.mu.Unlock()
	if id == "" {
		return nil
	}
	return r.cycle(ctx, r.store.Begin(), id)
}

// launchLocked resets the published state and starts one background cycle.
// The caller holds r.mu.
func (r *Roster) launchLocked(id string) {
	if r.cancelCycle != nil {
		r.cancelCycle()
	}
	gen := r.store.Reset()
	cycleCtx, cancel := context.WithCancel(r.runCtx)
	r.cancelCycle = cancel

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer cancel()
		_ = r.cycle(cycleCtx, gen, id)
	}()
}

func (r *Roster) cycle(ctx context.Context, gen uint64, id string) error {
	start := time.Now()
	logger := logging.FromContext(ctx, r.logger)

	var league leagues.League
	var rosters []leagues.Roster
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		league, err = r.provider.FetchLeague(gctx, id)
		if err != nil {
			return fmt.Errorf("fetch league: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		items, err := r.provider.FetchRosters(gctx, id)
		if err != nil {
			return fmt.Errorf("fetch rosters: %w", err)
		}
		rosters = validation.Filter(items)
		return nil
	})

	err := g.Wait()
	r.metrics.RecordSyncCycle(RosterTaskName, time.Since(start), err)
	if err != nil {
		if r.store.Fail(gen, providers.DisplayMessage(providers.ResourceRosters)) {
			logging.Error(logger, "roster sync failed", err,
				slog.String(logging.FieldLeagueID, id),
				slog.Uint64(logging.FieldGeneration, gen),
			)
		}
		return fmt.Errorf("roster sync %s: %w", id, err)
	}

	if !r.store.Commit(gen, leagues.Snapshot{League: league, Rosters: rosters}) {
		logging.Info(logger, "roster result superseded", slog.String(logging.FieldLeagueID, id))
		return nil
	}
	logging.Info(logger, "rosters refreshed",
		slog.String(logging.FieldLeagueID, id),
		slog.Int(logging.FieldCount, len(rosters)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return nil
}
