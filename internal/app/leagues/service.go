package leagues

import (
	"errors"
	"strings"
	"time"

	"fantasy-hud-service/internal/domain/leagues"
	"fantasy-hud-service/internal/domain/players"
	"fantasy-hud-service/internal/store"
)

// ErrLeagueIDRequired is returned when a blank league ID is selected.
var ErrLeagueIDRequired = errors.New("league id is required")

// Synchronizer is the roster synchronizer surface the service drives.
type Synchronizer interface {
	SetLeagueID(id string) bool
	LeagueID() string
	State() store.Snapshot[leagues.Snapshot]
}

// DirectorySource exposes the published player directory.
type DirectorySource interface {
	State() store.Snapshot[players.Directory]
}

// RosterView is a roster with its player IDs resolved where the directory knows them.
type RosterView struct {
	leagues.Roster `yaml:",inline"`

	Resolved map[string]players.Player `json:"resolved" yaml:"resolved"`
}

// View is the selected league's state.
type View struct {
	LeagueID  string          `json:"leagueId" yaml:"leagueId"`
	Status    store.Status    `json:"status" yaml:"status"`
	Error     string          `json:"error,omitempty" yaml:"error,omitempty"`
	UpdatedAt time.Time       `json:"updatedAt" yaml:"updatedAt"`
	League    *leagues.League `json:"league" yaml:"league"`
	Rosters   []RosterView    `json:"rosters" yaml:"rosters"`
}

// Service selects leagues and reports their rosters.
type Service struct {
	sync      Synchronizer
	directory DirectorySource
}

// NewService constructs a Service.
func NewService(sync Synchronizer, directory DirectorySource) *Service {
	return &Service{sync: sync, directory: directory}
}

// SelectLeague points the synchronizer at id. It reports whether the
// selection changed; reselecting the current league does not refetch.
func (s *Service) SelectLeague(id string) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, ErrLeagueIDRequired
	}
	return s.sync.SetLeagueID(id), nil
}

// Rosters returns the selected league and its rosters.
func (s *Service) Rosters() View {
	snap := s.sync.State()
	view := View{
		LeagueID:  s.sync.LeagueID(),
		Status:    snap.Status,
		Error:     snap.Error,
		UpdatedAt: snap.UpdatedAt,
		Rosters:   make([]RosterView, 0, len(snap.Value.Rosters)),
	}
	if snap.Value.League.ID != "" {
		league := snap.Value.League
		view.League = &league
	}

	dir := s.directory.State().Value
	for _, r := range snap.Value.Rosters {
		view.Rosters = append(view.Rosters, RosterView{Roster: r, Resolved: resolve(r.Players, dir)})
	}
	return view
}

func resolve(ids []string, dir players.Directory) map[string]players.Player {
	out := make(map[string]players.Player, len(ids))
	for _, id := range ids {
		if p, ok := dir.Get(id); ok {
			out[id] = p
		}
	}
	return out
}
