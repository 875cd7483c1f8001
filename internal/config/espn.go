package config

import "errors"

// ErrMissingLeagueID is returned when LEAGUE_ID is absent.
var ErrMissingLeagueID = errors.New("LEAGUE_ID is not set in environment variables")

// ESPNConfig controls how we talk to the ESPN fantasy league API.
type ESPNConfig struct {
	BaseURL  string
	LeagueID int
	Year     int
	SWID     string
	S2       string

	// loadErr holds malformed numeric settings found while reading the environment.
	loadErr error
}

// Private reports whether both cookies needed for a private league are present.
func (c ESPNConfig) Private() bool {
	return c.SWID != "" && c.S2 != ""
}

// Validate checks the settings required to build an ESPN client.
func (c ESPNConfig) Validate() error {
	if c.loadErr != nil {
		return c.loadErr
	}
	if c.LeagueID <= 0 {
		return ErrMissingLeagueID
	}
	return nil
}

func loadESPN() ESPNConfig {
	leagueID, leagueErr := intEnv(envLeagueID, 0)
	year, yearErr := intEnv(envYear, defaultSeason)
	return ESPNConfig{
		BaseURL:  envOrDefault(envESPNBaseURL, ""),
		LeagueID: leagueID,
		Year:     year,
		SWID:     envOrDefault(envESPNSWID, ""),
		S2:       envOrDefault(envESPNS2, ""),
		loadErr:  errors.Join(leagueErr, yearErr),
	}
}
