package handlers

import (
	"errors"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	appleagues "fantasy-hud-service/internal/app/leagues"
	appplayers "fantasy-hud-service/internal/app/players"
	apptrending "fantasy-hud-service/internal/app/trending"
	"fantasy-hud-service/internal/domain/players"
	"fantasy-hud-service/internal/poller"
	"fantasy-hud-service/internal/store"
)

// maxBodyBytes bounds request bodies on write endpoints.
const maxBodyBytes = 4 << 10

// Services groups the application services the handlers read from.
type Services struct {
	Players  *appplayers.Service
	Trending *apptrending.Service
	Leagues  *appleagues.Service
}

// Handler wires HTTP routes to the application services.
type Handler struct {
	svc      Services
	logger   *slog.Logger
	statusFn []func() poller.Status
}

// NewHandler constructs a Handler. Readiness requires every statusFn to report ready.
func NewHandler(svc Services, logger *slog.Logger, statusFn ...func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

// ServeHTTP routes without a mux; the router registers the same handlers.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/ready":
		h.Ready(w, r)
	case r.URL.Path == "/players":
		h.Players(w, r)
	case strings.HasPrefix(r.URL.Path, "/players/"):
		h.PlayerByID(w, r)
	case r.URL.Path == "/trending":
		h.Trending(w, r)
	case r.URL.Path == "/league":
		h.League(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, h.logger, nethttp.MethodGet) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, h.logger, nethttp.MethodGet) {
		return
	}
	for _, fn := range h.statusFn {
		if fn == nil {
			continue
		}
		status := fn()
		if status.IsReady() {
			continue
		}
		msg := status.LastError
		if msg == "" {
			msg = "not ready"
		}
		writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// PlayersResponse is the directory listing payload.
type PlayersResponse struct {
	Status    store.Status     `json:"status"`
	Error     string           `json:"error,omitempty"`
	UpdatedAt time.Time        `json:"updatedAt"`
	Count     int              `json:"count"`
	Players   []players.Player `json:"players"`
}

// Players lists directory players, optionally filtered by position and team.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, h.logger, nethttp.MethodGet) {
		return
	}
	q := r.URL.Query()
	filter := players.Filter{
		Position: strings.TrimSpace(q.Get("position")),
		Team:     strings.TrimSpace(q.Get("team")),
	}

	snap := h.svc.Players.Directory()
	items := snap.Value.List(filter)
	writeJSON(w, nethttp.StatusOK, PlayersResponse{
		Status:    snap.Status,
		Error:     snap.Error,
		UpdatedAt: snap.UpdatedAt,
		Count:     len(items),
		Players:   items,
	}, h.logger)
}

// PlayerByID returns a specific player if present.
func (h *Handler) PlayerByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, h.logger, nethttp.MethodGet) {
		return
	}
	// Expect path: /players/{id}
	idRaw := strings.TrimPrefix(r.URL.Path, "/players/")
	id, err := url.PathUnescape(idRaw)
	if err != nil || strings.TrimSpace(id) == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return
	}

	player, ok := h.svc.Players.PlayerByID(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, player, h.logger)
}

// Trending returns the joined add and drop leaderboards.
func (h *Handler) Trending(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, h.logger, nethttp.MethodGet) {
		return
	}
	writeJSON(w, nethttp.StatusOK, h.svc.Trending.Board(), h.logger)
}

// SelectLeagueRequest is the PUT /league body.
type SelectLeagueRequest struct {
	LeagueID string `json:"leagueId"`
}

// SelectLeagueResponse acknowledges a league selection.
type SelectLeagueResponse struct {
	LeagueID string `json:"leagueId"`
	Changed  bool   `json:"changed"`
}

// League reports the selected league on GET and selects one on PUT.
func (h *Handler) League(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, h.logger, nethttp.MethodGet, nethttp.MethodPut) {
		return
	}
	if r.Method == nethttp.MethodGet {
		writeJSON(w, nethttp.StatusOK, h.svc.Leagues.Rosters(), h.logger)
		return
	}

	var req SelectLeagueRequest
	body := io.LimitReader(r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	changed, err := h.svc.Leagues.SelectLeague(req.LeagueID)
	if errors.Is(err, appleagues.ErrLeagueIDRequired) {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if err != nil {
		writeError(w, r, nethttp.StatusInternalServerError, "unable to select league", h.logger)
		return
	}

	leagueID := strings.TrimSpace(req.LeagueID)
	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("league selected", "league_id", leagueID, "changed", changed)
	}
	writeJSON(w, nethttp.StatusAccepted, SelectLeagueResponse{LeagueID: leagueID, Changed: changed}, h.logger)
}
