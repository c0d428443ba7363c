package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	appleagues "fantasy-hud-service/internal/app/leagues"
	apptrending "fantasy-hud-service/internal/app/trending"
	"fantasy-hud-service/internal/domain/players"
	"fantasy-hud-service/internal/domain/trending"
	"fantasy-hud-service/internal/poller"
	"fantasy-hud-service/internal/providers/fixture"
	"fantasy-hud-service/internal/store"
	"fantasy-hud-service/internal/teststubs"
	"fantasy-hud-service/internal/testutil"
)

func newHandler(t *testing.T, stack *testutil.Stack, statusFn ...func() poller.Status) *Handler {
	t.Helper()
	return NewHandler(Services{
		Players:  stack.Players,
		Trending: stack.TrendingView,
		Leagues:  stack.Leagues,
	}, nil, statusFn...)
}

func readyStatus() poller.Status {
	return poller.Status{LastSuccess: time.Now()}
}

func TestHealth(t *testing.T) {
	h := newHandler(t, testutil.NewStack(fixture.New()))

	rr := testutil.Serve(h, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := newHandler(t, testutil.NewStack(fixture.New()))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req.WithContext(ctx))

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestHealthRejectsPost(t *testing.T) {
	h := newHandler(t, testutil.NewStack(fixture.New()))
	rr := testutil.Serve(h, http.MethodPost, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestReadyRequiresEveryPoller(t *testing.T) {
	stack := testutil.NewStack(fixture.New())

	h := newHandler(t, stack, readyStatus, readyStatus)
	testutil.AssertStatus(t, testutil.Serve(h, http.MethodGet, "/ready", nil), http.StatusOK)

	failing := func() poller.Status {
		return poller.Status{LastSuccess: time.Now(), ConsecutiveFailures: 3, LastError: "directory sync: boom"}
	}
	h = newHandler(t, stack, readyStatus, failing)
	rr := testutil.Serve(h, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "directory sync: boom" {
		t.Fatalf("expected last error surfaced, got %q", resp["error"])
	}

	h = newHandler(t, stack, func() poller.Status { return poller.Status{} })
	rr = testutil.Serve(h, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestPlayersListsFilteredDirectory(t *testing.T) {
	h := newHandler(t, testutil.NewSyncedStack(t, fixture.New()))

	rr := testutil.Serve(h, http.MethodGet, "/players?position=qb", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp PlayersResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Status != store.StatusReady || resp.UpdatedAt.IsZero() {
		t.Fatalf("expected ready state, got %+v", resp)
	}
	if resp.Count != 3 || len(resp.Players) != 3 {
		t.Fatalf("expected 3 quarterbacks, got %d", resp.Count)
	}
	if resp.Players[0].FullName != "Josh Allen" {
		t.Fatalf("expected name ordering, got %s", resp.Players[0].FullName)
	}

	rr = testutil.Serve(h, http.MethodGet, "/players?position=QB&team=KC", nil)
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Count != 1 || resp.Players[0].ID != "4046" {
		t.Fatalf("expected one KC quarterback, got %+v", resp.Players)
	}
}

func TestPlayersBeforeFirstLoadIsEmptyNotError(t *testing.T) {
	h := newHandler(t, testutil.NewStack(fixture.New()))

	rr := testutil.Serve(h, http.MethodGet, "/players", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if !strings.Contains(rr.Body.String(), `"players":[]`) {
		t.Fatalf("expected empty player array, got %s", rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"status":"idle"`) {
		t.Fatalf("expected idle status, got %s", rr.Body.String())
	}
}

func TestPlayerByID(t *testing.T) {
	h := newHandler(t, testutil.NewSyncedStack(t, fixture.New()))

	rr := testutil.Serve(h, http.MethodGet, "/players/6794", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var p players.Player
	testutil.DecodeJSON(t, rr, &p)
	if p.FullName != "Justin Jefferson" {
		t.Fatalf("unexpected player %+v", p)
	}

	testutil.AssertStatus(t, testutil.Serve(h, http.MethodGet, "/players/1234", nil), http.StatusNotFound)
	testutil.AssertStatus(t, testutil.Serve(h, http.MethodGet, "/players/", nil), http.StatusBadRequest)
	testutil.AssertStatus(t, testutil.Serve(h, http.MethodGet, "/players/a%20b", nil), http.StatusBadRequest)
}

func TestTrendingJoinsPlayers(t *testing.T) {
	h := newHandler(t, testutil.NewSyncedStack(t, fixture.New()))

	rr := testutil.Serve(h, http.MethodGet, "/trending", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var view apptrending.View
	testutil.DecodeJSON(t, rr, &view)
	if view.Status != store.StatusReady {
		t.Fatalf("expected ready, got %s", view.Status)
	}
	if len(view.Adds) != 3 {
		t.Fatalf("expected 3 valid adds, got %d", len(view.Adds))
	}
	if view.Adds[0].Player == nil || view.Adds[0].Player.FullName != "Garrett Wilson" {
		t.Fatalf("expected joined player, got %+v", view.Adds[0])
	}
	if view.Adds[2].PlayerID != "77777" || view.Adds[2].Player != nil {
		t.Fatalf("expected unmatched entry kept without player, got %+v", view.Adds[2])
	}
	if len(view.Drops) != 2 {
		t.Fatalf("expected 2 valid drops, got %d", len(view.Drops))
	}
}

func TestTrendingFailureIsReportedInBody(t *testing.T) {
	stub := &teststubs.StubProvider{
		TrendingErr: map[trending.Direction]error{trending.DirectionDrop: errors.New("upstream 503")},
	}
	stack := testutil.NewStack(stub)
	_ = stack.Trending.Sync(context.Background())
	h := newHandler(t, stack)

	rr := testutil.Serve(h, http.MethodGet, "/trending", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var view apptrending.View
	testutil.DecodeJSON(t, rr, &view)
	if view.Status != store.StatusErrored || view.Error == "" {
		t.Fatalf("expected errored state with message, got %+v", view)
	}
	if strings.Contains(view.Error, "503") {
		t.Fatalf("expected display message, got %q", view.Error)
	}
}

func TestLeagueSelectAndRead(t *testing.T) {
	stack := testutil.NewSyncedStack(t, fixture.New())
	stack.Roster.Start(context.Background())
	t.Cleanup(func() { _ = stack.Roster.Stop(context.Background()) })
	h := newHandler(t, stack)

	rr := testutil.Serve(h, http.MethodPut, "/league", strings.NewReader(`{"leagueId":" `+fixture.LeagueID+` "}`))
	testutil.AssertStatus(t, rr, http.StatusAccepted)
	var ack SelectLeagueResponse
	testutil.DecodeJSON(t, rr, &ack)
	if ack.LeagueID != fixture.LeagueID || !ack.Changed {
		t.Fatalf("unexpected ack %+v", ack)
	}

	rr = testutil.Serve(h, http.MethodPut, "/league", strings.NewReader(`{"leagueId":"`+fixture.LeagueID+`"}`))
	testutil.DecodeJSON(t, rr, &ack)
	if ack.Changed {
		t.Fatalf("expected reselecting the same league to be a no-op")
	}

	deadline := time.Now().Add(time.Second)
	var view appleagues.View
	for time.Now().Before(deadline) {
		rr = testutil.Serve(h, http.MethodGet, "/league", nil)
		testutil.DecodeJSON(t, rr, &view)
		if view.Status == store.StatusReady {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if view.Status != store.StatusReady || len(view.Rosters) != 2 {
		t.Fatalf("expected two rosters, got %+v", view)
	}
	if view.League == nil || view.League.Name == "" {
		t.Fatalf("expected league metadata, got %+v", view.League)
	}
	if _, ok := view.Rosters[0].Resolved["4046"]; !ok {
		t.Fatalf("expected roster players resolved, got %+v", view.Rosters[0].Resolved)
	}
}

func TestLeagueRejectsBadInput(t *testing.T) {
	h := newHandler(t, testutil.NewStack(fixture.New()))

	testutil.AssertStatus(t, testutil.Serve(h, http.MethodPut, "/league", strings.NewReader(`{"leagueId":"  "}`)), http.StatusBadRequest)
	testutil.AssertStatus(t, testutil.Serve(h, http.MethodPut, "/league", strings.NewReader(`not-json`)), http.StatusBadRequest)
	testutil.AssertStatus(t, testutil.Serve(h, http.MethodDelete, "/league", nil), http.StatusMethodNotAllowed)
}

func TestUnknownPathReturns404(t *testing.T) {
	h := newHandler(t, testutil.NewStack(fixture.New()))
	testutil.AssertStatus(t, testutil.Serve(h, http.MethodGet, "/games/today", nil), http.StatusNotFound)
}
