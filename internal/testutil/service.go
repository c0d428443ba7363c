package testutil

import (
	"context"
	"testing"

	appleagues "fantasy-hud-service/internal/app/leagues"
	appplayers "fantasy-hud-service/internal/app/players"
	apptrending "fantasy-hud-service/internal/app/trending"
	"fantasy-hud-service/internal/domain/trending"
	"fantasy-hud-service/internal/providers"
	"fantasy-hud-service/internal/synchronizer"
)

// Stack is the set of synchronizers and services built over one provider.
type Stack struct {
	Directory *synchronizer.Directory
	Trending  *synchronizer.Trending
	Roster    *synchronizer.Roster

	Players      *appplayers.Service
	TrendingView *apptrending.Service
	Leagues      *appleagues.Service
}

// NewStack wires synchronizers and services without running any fetch.
func NewStack(provider providers.DataProvider) *Stack {
	dir := synchronizer.NewDirectory(provider, trending.DefaultSport, nil)
	board := synchronizer.NewTrending(provider, trending.Query{}, nil)
	roster := synchronizer.NewRoster(provider, nil, nil)
	return &Stack{
		Directory:    dir,
		Trending:     board,
		Roster:       roster,
		Players:      appplayers.NewService(dir),
		TrendingView: apptrending.NewService(board, dir),
		Leagues:      appleagues.NewService(roster, dir),
	}
}

// NewSyncedStack wires a Stack and runs one directory and trending cycle, failing the test on error.
func NewSyncedStack(t *testing.T, provider providers.DataProvider) *Stack {
	t.Helper()
	s := NewStack(provider)
	if err := s.Directory.Sync(context.Background()); err != nil {
		t.Fatalf("directory sync: %v", err)
	}
	if err := s.Trending.Sync(context.Background()); err != nil {
		t.Fatalf("trending sync: %v", err)
	}
	return s
}
