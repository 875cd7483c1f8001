package providers

import (
	"context"
	"time"

	"github.com/preston-bernstein/injury-report-service/internal/domain/injuries"
)

// timeoutProvider bounds every fetch with a deadline derived from the caller's context.
type timeoutProvider struct {
	inner   InjuryProvider
	timeout time.Duration
}

// NewTimeoutProvider wraps inner so a fetch fails once timeout elapses. A
// non-positive timeout leaves the caller's context untouched.
func NewTimeoutProvider(inner InjuryProvider, timeout time.Duration) InjuryProvider {
	return &timeoutProvider{inner: inner, timeout: timeout}
}

func (p *timeoutProvider) FetchInjuries(ctx context.Context) ([]injuries.Record, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	if p.timeout <= 0 {
		return p.inner.FetchInjuries(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.inner.FetchInjuries(ctx)
}
