package server

import (
	"log/slog"

	"github.com/preston-bernstein/injury-report-service/internal/config"
	"github.com/preston-bernstein/injury-report-service/internal/logging"
	"github.com/preston-bernstein/injury-report-service/internal/metrics"
	"github.com/preston-bernstein/injury-report-service/internal/providers"
	"github.com/preston-bernstein/injury-report-service/internal/providers/apisports"
	"github.com/preston-bernstein/injury-report-service/internal/providers/espn"
	"github.com/preston-bernstein/injury-report-service/internal/providers/fixture"
)

// providerFactory selects the upstream provider and wraps it with a fetch deadline and instrumentation.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// build returns the instrumented provider and the name it reports under.
func (f providerFactory) build(cfg config.Config) (providers.InjuryProvider, string) {
	base, name := selectProvider(cfg, f.logger)
	bounded := providers.NewTimeoutProvider(base, providerTimeout)
	return providers.NewInstrumentedProvider(bounded, f.logger, f.metrics, name), name
}

func selectProvider(cfg config.Config, logger *slog.Logger) (providers.InjuryProvider, string) {
	switch cfg.Provider {
	case config.ProviderESPN, "":
		if err := cfg.ESPN.Validate(); err != nil {
			logging.Warn(logger, "espn provider misconfigured; injury requests will fail until fixed",
				slog.String(logging.FieldProvider, config.ProviderESPN),
				slog.Any("err", err),
			)
			return providers.NewUnconfigured(config.ProviderESPN, err), config.ProviderESPN
		}
		logging.Info(logger, "espn provider selected",
			slog.Int("league_id", cfg.ESPN.LeagueID),
			slog.Int("year", cfg.ESPN.Year),
			slog.Bool("private_league", cfg.ESPN.Private()),
		)
		return espn.NewClient(espn.Config{
			BaseURL:  cfg.ESPN.BaseURL,
			LeagueID: cfg.ESPN.LeagueID,
			Year:     cfg.ESPN.Year,
			SWID:     cfg.ESPN.SWID,
			S2:       cfg.ESPN.S2,
		}), config.ProviderESPN
	case config.ProviderAPISports:
		if err := cfg.APISports.Validate(); err != nil {
			logging.Warn(logger, "apisports provider misconfigured; injury requests will fail until fixed",
				slog.String(logging.FieldProvider, config.ProviderAPISports),
				slog.Any("err", err),
			)
			return providers.NewUnconfigured(config.ProviderAPISports, err), config.ProviderAPISports
		}
		return apisports.NewClient(apisports.Config{
			BaseURL:  cfg.APISports.BaseURL,
			APIKey:   cfg.APISports.APIKey,
			LeagueID: cfg.APISports.LeagueID,
			Season:   cfg.APISports.Season,
		}), config.ProviderAPISports
	case config.ProviderFixture:
		return fixture.New(), config.ProviderFixture
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New(), config.ProviderFixture
	}
}
