package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrProviderUnavailable is returned when no upstream provider is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// Resource names the upstream collection a fetch targets.
type Resource string

const (
	ResourcePlayers  Resource = "players"
	ResourceTrending Resource = "trending"
	ResourceLeague   Resource = "league"
	ResourceRosters  Resource = "rosters"
)

// FetchError reports a failed upstream fetch: transport failure, non-success status or bad payload.
type FetchError struct {
	Provider   string
	Resource   Resource
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	prefix := string(e.Resource)
	if e.Provider != "" {
		prefix = e.Provider + " " + prefix
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s fetch failed (status=%d): %v", prefix, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s fetch failed: %v", prefix, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// DisplayMessage returns the user-facing text stored when a fetch of resource fails.
// Upstream details are never included.
func DisplayMessage(resource Resource) string {
	switch resource {
	case ResourcePlayers:
		return "Unable to load the player directory right now."
	case ResourceTrending:
		return "Unable to load trending players right now."
	case ResourceLeague, ResourceRosters:
		return "Unable to load league rosters right now."
	default:
		return "Unable to load data right now."
	}
}
