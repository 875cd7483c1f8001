// Package roster holds the static table mapping front-end player IDs to the
// canonical names used by upstream providers.
package roster

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrEmptyTable    = errors.New("roster: table has no entries")
	ErrInvalidID     = errors.New("roster: ids must be positive")
	ErrEmptyName     = errors.New("roster: names must not be empty")
	ErrDuplicateID   = errors.New("roster: duplicate id")
	ErrDuplicateName = errors.New("roster: duplicate name")
)

// Entry pairs a front-end ID with the provider's spelling of the player name.
type Entry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Table is immutable after construction and safe for concurrent reads.
type Table struct {
	entries []Entry
	byName  map[string]int
}

// New validates entries and builds a Table ordered by ID.
func New(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	byName := make(map[string]int, len(sorted))
	seenIDs := make(map[int]struct{}, len(sorted))
	for _, e := range sorted {
		if e.ID <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidID, e.ID)
		}
		if e.Name == "" {
			return nil, fmt.Errorf("%w: id %d", ErrEmptyName, e.ID)
		}
		if _, ok := seenIDs[e.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, e.ID)
		}
		if _, ok := byName[e.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}
		seenIDs[e.ID] = struct{}{}
		byName[e.Name] = e.ID
	}

	return &Table{entries: sorted, byName: byName}, nil
}

// Match returns the front-end ID for an exact provider name.
func (t *Table) Match(name string) (int, bool) {
	if t == nil {
		return 0, false
	}
	id, ok := t.byName[name]
	return id, ok
}

// Entries returns a copy of the table in ascending ID order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of configured players.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Match looks up name in table. Comparison is exact: case and whitespace
// differences between the provider's spelling and the table produce no match.
func Match(name string, table *Table) (int, bool) {
	return table.Match(name)
}
