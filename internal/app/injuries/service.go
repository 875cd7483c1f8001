package injuries

import (
	"context"
	"log/slog"

	domain "github.com/preston-bernstein/injury-report-service/internal/domain/injuries"
	"github.com/preston-bernstein/injury-report-service/internal/logging"
	"github.com/preston-bernstein/injury-report-service/internal/metrics"
	"github.com/preston-bernstein/injury-report-service/internal/providers"
	"github.com/preston-bernstein/injury-report-service/internal/roster"
)

// Service builds the front-end injury report from a provider snapshot and the roster table.
// It holds no per-request state; every Report call fetches a fresh snapshot.
type Service struct {
	provider     providers.InjuryProvider
	roster       *roster.Table
	providerName string
	logger       *slog.Logger
	metrics      *metrics.Recorder
}

// NewService constructs a Service. logger and recorder may be nil.
func NewService(provider providers.InjuryProvider, table *roster.Table, providerName string, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		provider:     provider,
		roster:       table,
		providerName: providerName,
		logger:       logger,
		metrics:      recorder,
	}
}

// Report returns one update per roster player in ascending ID order. Players
// missing from the snapshot are healthy; when a player appears more than once
// the most severe status is kept. Provider failures are returned unchanged and
// no partial report is produced.
func (s *Service) Report(ctx context.Context) ([]domain.Update, error) {
	if s.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}

	records, err := s.provider.FetchInjuries(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make(map[int]domain.Status, s.roster.Len())
	unmatched := 0
	for _, rec := range records {
		id, ok := s.roster.Match(rec.PlayerName)
		if !ok {
			unmatched++
			continue
		}
		status := domain.Classify(rec.RawStatus)
		if current, seen := statuses[id]; !seen || status.Worse(current) {
			statuses[id] = status
		}
	}
	s.metrics.RecordUnmatched(s.providerName, unmatched)

	entries := s.roster.Entries()
	updates := make([]domain.Update, 0, len(entries))
	missing := make([]string, 0)
	for _, entry := range entries {
		status, ok := statuses[entry.ID]
		if !ok {
			status = domain.StatusHealthy
			missing = append(missing, entry.Name)
		}
		updates = append(updates, domain.Update{ID: entry.ID, Status: status})
	}

	logger := logging.FromContext(ctx, s.logger)
	if len(missing) > 0 {
		// A roster name that never matches is usually a spelling mismatch with the provider.
		logging.Debug(logger, "roster players absent from provider snapshot",
			slog.String(logging.FieldProvider, s.providerName),
			slog.Any("players", missing),
		)
	}
	logging.Debug(logger, "injury report built",
		slog.String(logging.FieldProvider, s.providerName),
		slog.Int(logging.FieldCount, len(updates)),
		slog.Int("unmatched_records", unmatched),
	)

	return updates, nil
}
