package espn

import "time"

const (
	providerName       = "espn"
	defaultBaseURL     = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/ffl"
	defaultHTTPTimeout = 10 * time.Second
	defaultYear        = 2024
	// Seasons before this are only served through the league history endpoint.
	firstCurrentSeason = 2018

	cookieSWID = "SWID"
	cookieS2   = "espn_s2"
)
