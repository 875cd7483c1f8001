package config

import "errors"

// ErrMissingAPIKey is returned when API_SPORTS_KEY is absent.
var ErrMissingAPIKey = errors.New("API_SPORTS_KEY is not set in environment variables")

// APISportsConfig controls how we talk to the API-Sports American football API.
type APISportsConfig struct {
	BaseURL  string
	APIKey   string
	LeagueID int
	Season   int

	loadErr error
}

// Validate checks the settings required to call the injuries endpoint.
func (c APISportsConfig) Validate() error {
	if c.loadErr != nil {
		return c.loadErr
	}
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func loadAPISports() APISportsConfig {
	leagueID, leagueErr := intEnv(envNFLLeagueID, defaultNFLLeagueID)
	season, seasonErr := intEnv(envNFLSeason, defaultSeason)
	return APISportsConfig{
		BaseURL:  envOrDefault(envAPISportsBaseURL, ""),
		APIKey:   envOrDefault(envAPISportsKey, ""),
		LeagueID: leagueID,
		Season:   season,
		loadErr:  errors.Join(leagueErr, seasonErr),
	}
}
