package config

import "strings"

// SyncConfig controls the background synchronizers.
type SyncConfig struct {
	TrendingInterval Duration
	LookbackHours    int
	TrendingLimit    int
	DirectoryEvery   Duration
	LeagueID         string
}

// UpstreamConfig controls the retry and rate-limit wrappers around the provider.
type UpstreamConfig struct {
	MaxAttempts int
	Backoff     Duration
	MinSpacing  Duration
}

func loadSync() SyncConfig {
	return SyncConfig{
		TrendingInterval: durationEnvOrDefault(envTrendingInterval, defaultTrendingInterval),
		LookbackHours:    intEnvOrDefault(envTrendingLookback, defaultTrendingLookback),
		TrendingLimit:    intEnvOrDefault(envTrendingLimit, defaultTrendingLimit),
		DirectoryEvery:   durationEnvOrDefault(envDirectoryEvery, defaultDirectoryEvery),
		LeagueID:         strings.TrimSpace(envOrDefault(envLeagueID, "")),
	}
}

func loadUpstream() UpstreamConfig {
	return UpstreamConfig{
		MaxAttempts: intEnvOrDefault(envMaxAttempts, defaultMaxAttempts),
		Backoff:     durationEnvOrDefault(envBackoff, defaultBackoff),
		MinSpacing:  durationEnvOrDefault(envMinSpacing, defaultMinSpacing),
	}
}
