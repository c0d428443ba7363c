package players

import (
	"strings"

	"fantasy-hud-service/internal/domain/players"
	"fantasy-hud-service/internal/store"
)

// Source exposes the published player directory.
type Source interface {
	State() store.Snapshot[players.Directory]
}

// Service answers player queries against the latest published directory.
type Service struct {
	source Source
}

// NewService constructs a Service with the provided Source.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// Directory returns the directory state, including status and error.
func (s *Service) Directory() store.Snapshot[players.Directory] {
	return s.source.State()
}

// Players returns the players matching filter, sorted by name.
func (s *Service) Players(filter players.Filter) []players.Player {
	return s.source.State().Value.List(filter)
}

// PlayerByID returns a single player if present.
func (s *Service) PlayerByID(id string) (players.Player, bool) {
	return s.source.State().Value.Get(strings.TrimSpace(id))
}
