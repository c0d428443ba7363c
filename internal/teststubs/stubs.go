package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"fantasy-hud-service/internal/domain/leagues"
	"fantasy-hud-service/internal/domain/players"
	"fantasy-hud-service/internal/domain/trending"
)

// StubProvider is a test double for providers.DataProvider.
// Mutate fields through Update once the stub is shared with running goroutines.
type StubProvider struct {
	mu sync.Mutex

	Players     []players.Player
	PlayersErr  error
	Trending    map[trending.Direction][]trending.Entry
	TrendingErr map[trending.Direction]error
	League      leagues.League
	LeagueErr   error
	Rosters     []leagues.Roster
	RostersErr  error

	// Gate blocks every fetch until it is closed or the context ends.
	Gate chan struct{}
	// Notify receives a value after each fetch when it has room.
	Notify chan struct{}

	PlayerCalls   atomic.Int32
	TrendingCalls atomic.Int32
	LeagueCalls   atomic.Int32
	RosterCalls   atomic.Int32

	leagueIDs []string
}

// Update applies fn while holding the stub's lock.
func (s *StubProvider) Update(fn func(s *StubProvider)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s)
}

// LeagueIDs returns the league IDs passed to FetchLeague, in call order.
func (s *StubProvider) LeagueIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.leagueIDs...)
}

// FetchPlayers returns configured players and error while tracking calls.
func (s *StubProvider) FetchPlayers(ctx context.Context, sport string) ([]players.Player, error) {
	_ = sport
	s.PlayerCalls.Add(1)
	defer s.notify()
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]players.Player(nil), s.Players...), s.PlayersErr
}

// FetchTrending returns the configured entries for the query direction.
func (s *StubProvider) FetchTrending(ctx context.Context, query trending.Query) ([]trending.Entry, error) {
	s.TrendingCalls.Add(1)
	defer s.notify()
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.TrendingErr[query.Direction]; err != nil {
		return nil, err
	}
	return append([]trending.Entry(nil), s.Trending[query.Direction]...), nil
}

// FetchLeague returns the configured league and records the requested ID.
func (s *StubProvider) FetchLeague(ctx context.Context, leagueID string) (leagues.League, error) {
	s.LeagueCalls.Add(1)
	s.mu.Lock()
	s.leagueIDs = append(s.leagueIDs, leagueID)
	s.mu.Unlock()
	defer s.notify()
	if err := s.wait(ctx); err != nil {
		return leagues.League{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	league := s.League
	if league.ID == "" {
		league.ID = leagueID
	}
	return league, s.LeagueErr
}

// FetchRosters returns the configured rosters.
func (s *StubProvider) FetchRosters(ctx context.Context, leagueID string) ([]leagues.Roster, error) {
	_ = leagueID
	s.RosterCalls.Add(1)
	defer s.notify()
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]leagues.Roster(nil), s.Rosters...), s.RostersErr
}

func (s *StubProvider) wait(ctx context.Context) error {
	s.mu.Lock()
	gate := s.Gate
	s.mu.Unlock()
	if gate == nil {
		return nil
	}
	select {
	case <-gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *StubProvider) notify() {
	if s.Notify == nil {
		return
	}
	select {
	case s.Notify <- struct{}{}:
	default:
	}
}
