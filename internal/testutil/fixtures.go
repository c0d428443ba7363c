package testutil

import (
	"fantasy-hud-service/internal/domain/leagues"
	"fantasy-hud-service/internal/domain/players"
	"fantasy-hud-service/internal/domain/trending"
)

// SamplePlayer returns a complete player record with the provided id.
func SamplePlayer(id, name, team, position string) players.Player {
	return players.Player{ID: id, FullName: name, Team: team, Position: position}
}

// SampleEntries builds trending entries with counts in descending order.
func SampleEntries(direction trending.Direction, ids ...string) []trending.Entry {
	out := make([]trending.Entry, 0, len(ids))
	for i, id := range ids {
		out = append(out, trending.Entry{PlayerID: id, Count: (len(ids) - i) * 10, Direction: direction})
	}
	return out
}

// SampleRoster returns a roster owning the given players.
func SampleRoster(id int, playerIDs ...string) leagues.Roster {
	return leagues.Roster{RosterID: id, OwnerID: "owner", Players: playerIDs}
}
