package config

const (
	envSleeperBaseURL = "SLEEPER_BASE_URL"
	envSleeperSport   = "SLEEPER_SPORT"

	defaultSleeperBaseURL = "https://api.sleeper.app/v1"
	defaultSleeperSport   = "nfl"
)

// SleeperConfig controls how we talk to the Sleeper API.
type SleeperConfig struct {
	BaseURL string
	Sport   string
}

func loadSleeper() SleeperConfig {
	return SleeperConfig{
		BaseURL: envOrDefault(envSleeperBaseURL, defaultSleeperBaseURL),
		Sport:   envOrDefault(envSleeperSport, defaultSleeperSport),
	}
}
