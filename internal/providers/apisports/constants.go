package apisports

import "time"

const (
	providerName       = "apisports"
	defaultBaseURL     = "https://v1.american-football.api-sports.io"
	defaultHTTPTimeout = 10 * time.Second
	defaultLeagueID    = 1
	defaultSeason      = 2024

	headerAPIKey = "x-apisports-key"
)
