package testutil

import (
	"context"
	"sync"

	"github.com/preston-bernstein/injury-report-service/internal/domain/injuries"
	"github.com/preston-bernstein/injury-report-service/internal/providers"
)

// GoodProvider returns the provided records with no error.
type GoodProvider struct {
	Records []injuries.Record
}

func (p GoodProvider) FetchInjuries(ctx context.Context) ([]injuries.Record, error) {
	_ = ctx
	return p.Records, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchInjuries(ctx context.Context) ([]injuries.Record, error) {
	_ = ctx
	return nil, p.Err
}

// EmptyProvider returns no records, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchInjuries(ctx context.Context) ([]injuries.Record, error) {
	_ = ctx
	return []injuries.Record{}, nil
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchInjuries(ctx context.Context) ([]injuries.Record, error) {
	_ = ctx
	return nil, providers.ErrProviderUnavailable
}

// CountingProvider returns records and counts calls; safe for concurrent use.
type CountingProvider struct {
	Records []injuries.Record

	mu    sync.Mutex
	calls int
}

func (p *CountingProvider) FetchInjuries(ctx context.Context) ([]injuries.Record, error) {
	_ = ctx
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	return p.Records, nil
}

// Calls returns how many fetches have been made.
func (p *CountingProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
