package players

import (
	"testing"

	"github.com/stretchr/testify/require"

	"fantasy-hud-service/internal/domain/players"
	"fantasy-hud-service/internal/store"
)

type stubDirectory struct {
	snap store.Snapshot[players.Directory]
}

func (s stubDirectory) State() store.Snapshot[players.Directory] { return s.snap }

func TestPlayersService(t *testing.T) {
	dir := players.NewDirectory([]players.Player{
		{ID: "p2", FullName: "Zed", Team: "KC", Position: "WR"},
		{ID: "p1", FullName: "Abe", Team: "KC", Position: "QB"},
		{ID: "p3", FullName: "Bo", Team: "BUF", Position: "WR"},
	})
	svc := NewService(stubDirectory{snap: store.Snapshot[players.Directory]{Status: store.StatusReady, Value: dir}})

	all := svc.Players(players.Filter{})
	require.Len(t, all, 3)
	require.Equal(t, "Abe", all[0].FullName)

	wr := svc.Players(players.Filter{Position: "wr", Team: "kc"})
	require.Len(t, wr, 1)
	require.Equal(t, "p2", wr[0].ID)

	p, ok := svc.PlayerByID(" p3 ")
	require.True(t, ok)
	require.Equal(t, "Bo", p.FullName)

	_, ok = svc.PlayerByID("missing")
	require.False(t, ok)
	require.Equal(t, store.StatusReady, svc.Directory().Status)
}

func TestPlayersServiceBeforeFirstLoad(t *testing.T) {
	svc := NewService(stubDirectory{snap: store.Snapshot[players.Directory]{Status: store.StatusIdle}})

	require.Empty(t, svc.Players(players.Filter{}))
	_, ok := svc.PlayerByID("p1")
	require.False(t, ok)
}
