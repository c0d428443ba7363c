package trending

import (
	"time"

	"fantasy-hud-service/internal/domain/players"
	"fantasy-hud-service/internal/domain/trending"
	"fantasy-hud-service/internal/store"
)

// BoardSource exposes the published trending board.
type BoardSource interface {
	State() store.Snapshot[trending.Board]
}

// DirectorySource exposes the published player directory.
type DirectorySource interface {
	State() store.Snapshot[players.Directory]
}

// Item is a trending entry joined with its directory record. Player is nil
// when the directory has no match.
type Item struct {
	PlayerID  string             `json:"playerId" yaml:"playerId"`
	Count     int                `json:"count" yaml:"count"`
	Direction trending.Direction `json:"direction" yaml:"direction"`
	Player    *players.Player    `json:"player" yaml:"player"`
}

// View is the joined leaderboard plus the board's lifecycle state.
type View struct {
	Status    store.Status `json:"status" yaml:"status"`
	Error     string       `json:"error,omitempty" yaml:"error,omitempty"`
	UpdatedAt time.Time    `json:"updatedAt" yaml:"updatedAt"`
	Adds      []Item       `json:"adds" yaml:"adds"`
	Drops     []Item       `json:"drops" yaml:"drops"`
}

// Service joins trending entries with player details.
type Service struct {
	board     BoardSource
	directory DirectorySource
}

// NewService constructs a Service.
func NewService(board BoardSource, directory DirectorySource) *Service {
	return &Service{board: board, directory: directory}
}

// Board returns the current joined view.
func (s *Service) Board() View {
	snap := s.board.State()
	dir := s.directory.State().Value

	return View{
		Status:    snap.Status,
		Error:     snap.Error,
		UpdatedAt: snap.UpdatedAt,
		Adds:      join(snap.Value.Adds, dir),
		Drops:     join(snap.Value.Drops, dir),
	}
}

func join(entries []trending.Entry, dir players.Directory) []Item {
	out := make([]Item, 0, len(entries))
	for _, e := range entries {
		item := Item{PlayerID: e.PlayerID, Count: e.Count, Direction: e.Direction}
		if p, ok := dir.Get(e.PlayerID); ok {
			item.Player = &p
		}
		out = append(out, item)
	}
	return out
}
