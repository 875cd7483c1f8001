package config

const (
	envPort         = "PORT"
	envProvider     = "INJURY_PROVIDER"
	envRosterPath   = "ROSTER_PATH"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envESPNBaseURL = "ESPN_BASE_URL"
	envLeagueID    = "LEAGUE_ID"
	envYear        = "YEAR"
	envESPNSWID    = "ESPN_SWID"
	envESPNS2      = "ESPN_S2"

	envAPISportsBaseURL = "API_SPORTS_BASE_URL"
	envAPISportsKey     = "API_SPORTS_KEY"
	envNFLLeagueID      = "NFL_LEAGUE_ID"
	envNFLSeason        = "NFL_SEASON"

	defaultPort        = "5000"
	defaultProvider    = ProviderESPN
	defaultMetricsPort = "9090"
	defaultServiceName = "injury-report-service"

	defaultSeason      = 2024
	defaultNFLLeagueID = 1
)

// Provider names accepted by INJURY_PROVIDER.
const (
	ProviderESPN      = "espn"
	ProviderAPISports = "apisports"
	ProviderFixture   = "fixture"
)
