package config

import (
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port       string
	Provider   string
	RosterPath string
	ESPN       ESPNConfig
	APISports  APISportsConfig
	Metrics    MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present; real
// environment variables take precedence over it.
func Load() Config {
	_ = loadDotEnv()

	return Config{
		Port:       envOrDefault(envPort, defaultPort),
		Provider:   strings.ToLower(strings.TrimSpace(envOrDefault(envProvider, defaultProvider))),
		RosterPath: envOrDefault(envRosterPath, ""),
		ESPN:       loadESPN(),
		APISports:  loadAPISports(),
		Metrics:    loadMetrics(),
	}
}

func loadDotEnv(paths ...string) error {
	return godotenv.Load(paths...)
}
