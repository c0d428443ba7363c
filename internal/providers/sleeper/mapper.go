package sleeper

import (
	"sort"
	"strings"

	"fantasy-hud-service/internal/domain/leagues"
	"fantasy-hud-service/internal/domain/players"
	"fantasy-hud-service/internal/domain/trending"
)

// mapPlayers flattens the keyed payload in key order. The map key is the fallback ID.
func mapPlayers(payload map[string]playerResponse) []players.Player {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]players.Player, 0, len(payload))
	for _, k := range keys {
		out = append(out, mapPlayer(k, payload[k]))
	}
	return out
}

func mapPlayer(key string, p playerResponse) players.Player {
	id := strings.TrimSpace(p.PlayerID)
	if id == "" {
		id = strings.TrimSpace(key)
	}
	return players.Player{
		ID:        id,
		FullName:  strings.TrimSpace(p.FullName),
		FirstName: strings.TrimSpace(p.FirstName),
		LastName:  strings.TrimSpace(p.LastName),
		Team:      deref(p.Team),
		Position:  deref(p.Position),
	}
}

func mapTrending(items []trendingResponse, direction trending.Direction) []trending.Entry {
	out := make([]trending.Entry, 0, len(items))
	for _, item := range items {
		out = append(out, trending.Entry{
			PlayerID:  strings.TrimSpace(item.PlayerID),
			Count:     item.Count,
			Direction: direction,
		})
	}
	return out
}

func mapLeague(l leagueResponse) leagues.League {
	return leagues.League{
		ID:           l.LeagueID,
		Name:         l.Name,
		Season:       l.Season,
		Sport:        l.Sport,
		Status:       l.Status,
		TotalRosters: l.TotalRosters,
	}
}

func mapRosters(items []rosterResponse) []leagues.Roster {
	out := make([]leagues.Roster, 0, len(items))
	for _, r := range items {
		out = append(out, leagues.Roster{
			RosterID:  r.RosterID,
			OwnerID:   deref(r.OwnerID),
			LeagueID:  r.LeagueID,
			Players:   nonNil(r.Players),
			Starters:  nonNil(r.Starters),
			Wins:      r.Settings.Wins,
			Losses:    r.Settings.Losses,
			Ties:      r.Settings.Ties,
			PointsFor: float64(r.Settings.Fpts) + float64(r.Settings.FptsDecimal)/100,
		})
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
