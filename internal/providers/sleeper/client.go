package sleeper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"fantasy-hud-service/internal/domain/leagues"
	"fantasy-hud-service/internal/domain/players"
	"fantasy-hud-service/internal/domain/trending"
	"fantasy-hud-service/internal/providers"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config controls how the Sleeper client reaches the upstream API.
type Config struct {
	BaseURL    string
	Sport      string
	HTTPClient *http.Client
}

// Client reads players, trending lists and leagues from the public Sleeper API.
type Client struct {
	baseURL    string
	sport      string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a Sleeper client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		sport:      normalizeSport(cfg.Sport),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// FetchPlayers downloads the full player catalog. The payload is several megabytes.
func (c *Client) FetchPlayers(ctx context.Context, sport string) ([]players.Player, error) {
	var payload map[string]playerResponse
	path := "/players/" + url.PathEscape(c.resolveSport(sport))
	if err := c.getJSON(ctx, providers.ResourcePlayers, path, nil, &payload); err != nil {
		return nil, err
	}
	return mapPlayers(payload), nil
}

// FetchTrending returns one direction of the trending leaderboard in source order.
func (c *Client) FetchTrending(ctx context.Context, query trending.Query) ([]trending.Entry, error) {
	query = query.WithDefaults()
	if !query.Direction.Valid() {
		return nil, &providers.FetchError{
			Provider: providerName,
			Resource: providers.ResourceTrending,
			Err:      fmt.Errorf("unknown direction %q", query.Direction),
		}
	}

	q := url.Values{}
	q.Set("lookback_hours", strconv.Itoa(query.LookbackHours))
	q.Set("limit", strconv.Itoa(query.Limit))
	path := fmt.Sprintf("/players/%s/trending/%s", url.PathEscape(c.resolveSport(query.Sport)), query.Direction)

	var payload []trendingResponse
	if err := c.getJSON(ctx, providers.ResourceTrending, path, q, &payload); err != nil {
		return nil, err
	}
	return mapTrending(payload, query.Direction), nil
}

// FetchLeague returns league metadata.
func (c *Client) FetchLeague(ctx context.Context, leagueID string) (leagues.League, error) {
	var payload *leagueResponse
	if err := c.getJSON(ctx, providers.ResourceLeague, "/league/"+url.PathEscape(leagueID), nil, &payload); err != nil {
		return leagues.League{}, err
	}
	// Unknown leagues come back as a literal null.
	if payload == nil {
		return leagues.League{}, &providers.FetchError{
			Provider:   providerName,
			Resource:   providers.ResourceLeague,
			StatusCode: http.StatusOK,
			Err:        fmt.Errorf("league %q not found", leagueID),
		}
	}
	return mapLeague(*payload), nil
}

// FetchRosters returns every roster in the league.
func (c *Client) FetchRosters(ctx context.Context, leagueID string) ([]leagues.Roster, error) {
	var payload []rosterResponse
	if err := c.getJSON(ctx, providers.ResourceRosters, "/league/"+url.PathEscape(leagueID)+"/rosters", nil, &payload); err != nil {
		return nil, err
	}
	return mapRosters(payload), nil
}

func (c *Client) resolveSport(sport string) string {
	if strings.TrimSpace(sport) == "" {
		return c.sport
	}
	return normalizeSport(sport)
}

func (c *Client) getJSON(ctx context.Context, resource providers.Resource, path string, query url.Values, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return c.fetchError(resource, 0, err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fetchError(resource, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return c.fetchError(resource, resp.StatusCode, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Message:    "sleeper rate limited",
		})
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return c.fetchError(resource, resp.StatusCode, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return c.fetchError(resource, resp.StatusCode, fmt.Errorf("decode: %w", err))
	}
	return nil
}

func (c *Client) fetchError(resource providers.Resource, status int, err error) error {
	return &providers.FetchError{
		Provider:   providerName,
		Resource:   resource,
		StatusCode: status,
		Err:        err,
	}
}
