package server

import (
	"context"

	"fantasy-hud-service/internal/poller"
)

// Poller defines the minimal poller behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}

// leagueSync is the event-driven roster synchronizer lifecycle.
type leagueSync interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	SetLeagueID(id string) bool
}
