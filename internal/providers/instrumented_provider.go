package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/injury-report-service/internal/domain/injuries"
	"github.com/preston-bernstein/injury-report-service/internal/logging"
	"github.com/preston-bernstein/injury-report-service/internal/metrics"
)

// instrumentedProvider records latency, outcome, and logs failures for each fetch.
// It makes exactly one upstream call per fetch.
type instrumentedProvider struct {
	inner   InjuryProvider
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewInstrumentedProvider wraps inner with metrics and logging under the given provider name.
func NewInstrumentedProvider(inner InjuryProvider, logger *slog.Logger, recorder *metrics.Recorder, name string) InjuryProvider {
	return &instrumentedProvider{
		inner:   inner,
		name:    name,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

func (p *instrumentedProvider) FetchInjuries(ctx context.Context) ([]injuries.Record, error) {
	if p.inner == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider unavailable")
		return nil, ErrProviderUnavailable
	}

	start := p.now()
	records, err := p.inner.FetchInjuries(ctx)
	duration := p.now().Sub(start)
	p.metrics.RecordProviderAttempt(p.name, duration, err)

	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelError, p.name, "provider fetch failed",
			slog.String(logging.FieldErrorKind, string(KindOf(err))),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
			slog.Any("error", err),
		)
		return nil, err
	}

	logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "provider fetch complete",
		slog.Int(logging.FieldCount, len(records)),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	return records, nil
}
