package fixture

import (
	"context"

	"github.com/preston-bernstein/injury-report-service/internal/domain/injuries"
)

// Provider returns a static injury report useful for local testing and front-end work.
type Provider struct {
	records []injuries.Record
}

// New creates a fixture provider with the default report.
func New() *Provider {
	return &Provider{records: defaultRecords()}
}

// NewWithRecords creates a fixture provider serving the given records.
func NewWithRecords(records []injuries.Record) *Provider {
	cp := make([]injuries.Record, len(records))
	copy(cp, records)
	return &Provider{records: cp}
}

// FetchInjuries returns a copy of the fixture records.
func (p *Provider) FetchInjuries(ctx context.Context) ([]injuries.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]injuries.Record, len(p.records))
	copy(out, p.records)
	return out, nil
}

func defaultRecords() []injuries.Record {
	return []injuries.Record{
		{PlayerName: "Jalen Hurts", RawStatus: "QUESTIONABLE"},
		{PlayerName: "Puka Nacua", RawStatus: "INJURY_RESERVE"},
		{PlayerName: "Bijan Robinson", RawStatus: "ACTIVE"},
		{PlayerName: "Mark Andrews", RawStatus: "DOUBTFUL"},
		{PlayerName: "J.K. Dobbins", RawStatus: "OUT"},
		{PlayerName: "Jared Goff", RawStatus: ""},
		{PlayerName: "Patrick Mahomes", RawStatus: "ACTIVE"},
	}
}
