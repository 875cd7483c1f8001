package providers

import (
	"context"

	"github.com/preston-bernstein/injury-report-service/internal/domain/injuries"
)

// InjuryProvider fetches the current injury snapshot from an upstream source.
// Implementations return every record they know about; roster filtering and
// status classification happen downstream.
type InjuryProvider interface {
	FetchInjuries(ctx context.Context) ([]injuries.Record, error)
}
