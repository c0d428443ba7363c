package fixture

import (
	"context"
	"fmt"

	"fantasy-hud-service/internal/domain/leagues"
	"fantasy-hud-service/internal/domain/players"
	"fantasy-hud-service/internal/domain/trending"
)

// LeagueID is the only league the fixture provider knows about.
const LeagueID = "fixture-league"

// Provider returns a static data set useful for local testing and bootstrapping.
// Some records are deliberately incomplete so downstream filters have work to do.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchPlayers returns a deterministic player catalog.
func (p *Provider) FetchPlayers(ctx context.Context, sport string) ([]players.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_ = sport
	return []players.Player{
		{ID: "4046", FullName: "Patrick Mahomes", FirstName: "Patrick", LastName: "Mahomes", Team: "KC", Position: "QB"},
		{ID: "4984", FullName: "Josh Allen", FirstName: "Josh", LastName: "Allen", Team: "BUF", Position: "QB"},
		{ID: "6794", FullName: "Justin Jefferson", FirstName: "Justin", LastName: "Jefferson", Team: "MIN", Position: "WR"},
		{ID: "4034", FullName: "Christian McCaffrey", FirstName: "Christian", LastName: "McCaffrey", Team: "SF", Position: "RB"},
		{ID: "4881", FullName: "Lamar Jackson", FirstName: "Lamar", LastName: "Jackson", Team: "BAL", Position: "QB"},
		{ID: "8146", FullName: "Garrett Wilson", FirstName: "Garrett", LastName: "Wilson", Team: "NYJ", Position: "WR"},
		{ID: "1234", FullName: "Retired Veteran", FirstName: "Retired", LastName: "Veteran", Team: "", Position: "TE"},
		{ID: "KC", FullName: "", FirstName: "Kansas City", LastName: "Chiefs", Team: "KC", Position: "DEF"},
	}, nil
}

// FetchTrending returns a fixed leaderboard for the query direction, capped at the query limit.
func (p *Provider) FetchTrending(ctx context.Context, query trending.Query) ([]trending.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	query = query.WithDefaults()

	var entries []trending.Entry
	switch query.Direction {
	case trending.DirectionAdd:
		entries = []trending.Entry{
			{PlayerID: "8146", Count: 4210},
			{PlayerID: "4881", Count: 1877},
			{PlayerID: "", Count: 900},
			{PlayerID: "77777", Count: 512},
			{PlayerID: "6794", Count: 0},
		}
	case trending.DirectionDrop:
		entries = []trending.Entry{
			{PlayerID: "4034", Count: 3105},
			{PlayerID: "1234", Count: 640},
			{PlayerID: "4984", Count: -1},
		}
	default:
		return nil, fmt.Errorf("fixture: unknown direction %q", query.Direction)
	}

	for i := range entries {
		entries[i].Direction = query.Direction
	}
	if len(entries) > query.Limit {
		entries = entries[:query.Limit]
	}
	return entries, nil
}

// FetchLeague returns metadata for LeagueID and an error for anything else.
func (p *Provider) FetchLeague(ctx context.Context, leagueID string) (leagues.League, error) {
	if err := ctx.Err(); err != nil {
		return leagues.League{}, err
	}
	if leagueID != LeagueID {
		return leagues.League{}, fmt.Errorf("fixture: league %q not found", leagueID)
	}
	return leagues.League{
		ID:           LeagueID,
		Name:         "Fixture Dynasty League",
		Season:       "2024",
		Sport:        "nfl",
		Status:       "in_season",
		TotalRosters: 2,
	}, nil
}

// FetchRosters returns two rosters for LeagueID and an error for anything else.
func (p *Provider) FetchRosters(ctx context.Context, leagueID string) ([]leagues.Roster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if leagueID != LeagueID {
		return nil, fmt.Errorf("fixture: rosters for %q not found", leagueID)
	}
	return []leagues.Roster{
		{
			RosterID:  1,
			OwnerID:   "owner-1",
			LeagueID:  LeagueID,
			Players:   []string{"4046", "6794", "4034"},
			Starters:  []string{"4046", "6794"},
			Wins:      6,
			Losses:    2,
			PointsFor: 1012.4,
		},
		{
			RosterID:  2,
			OwnerID:   "owner-2",
			LeagueID:  LeagueID,
			Players:   []string{"4984", "8146", "99999"},
			Starters:  []string{"4984", "8146"},
			Wins:      3,
			Losses:    5,
			PointsFor: 911.7,
		},
	}, nil
}
