package testutil

import (
	"github.com/preston-bernstein/injury-report-service/internal/domain/injuries"
	"github.com/preston-bernstein/injury-report-service/internal/roster"
)

// SampleRoster returns a small roster table; it panics on invalid entries.
func SampleRoster(entries ...roster.Entry) *roster.Table {
	if len(entries) == 0 {
		entries = []roster.Entry{
			{ID: 1, Name: "Jalen Hurts"},
			{ID: 2, Name: "Puka Nacua"},
		}
	}
	table, err := roster.New(entries)
	if err != nil {
		panic(err)
	}
	return table
}

// SampleRecord builds a single provider record.
func SampleRecord(name, status string) injuries.Record {
	return injuries.Record{PlayerName: name, RawStatus: status}
}
