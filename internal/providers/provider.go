package providers

import (
	"context"

	"fantasy-hud-service/internal/domain/leagues"
	"fantasy-hud-service/internal/domain/players"
	"fantasy-hud-service/internal/domain/trending"
)

// PlayerProvider fetches the full player catalog for a sport.
type PlayerProvider interface {
	FetchPlayers(ctx context.Context, sport string) ([]players.Player, error)
}

// TrendingProvider fetches one direction of the trending leaderboard.
// Entries are returned in source order and are not validated.
type TrendingProvider interface {
	FetchTrending(ctx context.Context, query trending.Query) ([]trending.Entry, error)
}

// LeagueProvider fetches league metadata and rosters by league ID.
type LeagueProvider interface {
	FetchLeague(ctx context.Context, leagueID string) (leagues.League, error)
	FetchRosters(ctx context.Context, leagueID string) ([]leagues.Roster, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	PlayerProvider
	TrendingProvider
	LeagueProvider
}
