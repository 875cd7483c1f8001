package providers

import (
	"context"

	"github.com/preston-bernstein/injury-report-service/internal/domain/injuries"
)

// unconfiguredProvider stands in for a provider whose configuration failed
// validation. The service stays up and every request reports the problem.
type unconfiguredProvider struct {
	err error
}

// NewUnconfigured returns a provider that fails every fetch with a config error.
func NewUnconfigured(name string, cause error) InjuryProvider {
	return unconfiguredProvider{err: ConfigError(name, cause)}
}

func (p unconfiguredProvider) FetchInjuries(ctx context.Context) ([]injuries.Record, error) {
	_ = ctx
	return nil, p.err
}
