package teststubs

import (
	"context"
	"errors"
	"testing"
	"time"

	"fantasy-hud-service/internal/domain/players"
	"fantasy-hud-service/internal/domain/trending"
)

func TestStubProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubProvider{Players: []players.Player{{ID: "p1"}}, PlayersErr: err}
	if _, got := p.FetchPlayers(context.Background(), "nfl"); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if p.PlayerCalls.Load() != 1 {
		t.Fatalf("expected call count 1, got %d", p.PlayerCalls.Load())
	}
}

func TestStubProviderTrendingByDirection(t *testing.T) {
	dropErr := errors.New("drop down")
	p := &StubProvider{
		Trending:    map[trending.Direction][]trending.Entry{trending.DirectionAdd: {{PlayerID: "A", Count: 3}}},
		TrendingErr: map[trending.Direction]error{trending.DirectionDrop: dropErr},
	}
	adds, err := p.FetchTrending(context.Background(), trending.Query{Direction: trending.DirectionAdd})
	if err != nil || len(adds) != 1 {
		t.Fatalf("expected add entries, got %v %v", adds, err)
	}
	if _, err := p.FetchTrending(context.Background(), trending.Query{Direction: trending.DirectionDrop}); !errors.Is(err, dropErr) {
		t.Fatalf("expected drop error, got %v", err)
	}
}

func TestStubProviderRecordsLeagueIDs(t *testing.T) {
	p := &StubProvider{}
	league, _ := p.FetchLeague(context.Background(), "L1")
	_, _ = p.FetchLeague(context.Background(), "L2")
	if league.ID != "L1" {
		t.Fatalf("expected league id echoed, got %q", league.ID)
	}
	if ids := p.LeagueIDs(); len(ids) != 2 || ids[0] != "L1" || ids[1] != "L2" {
		t.Fatalf("unexpected ids %v", ids)
	}
}

func TestStubProviderGateHonorsContext(t *testing.T) {
	p := &StubProvider{Gate: make(chan struct{})}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := p.FetchRosters(ctx, "L1"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}
