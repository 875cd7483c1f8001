package roster

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewSortsAndMatches(t *testing.T) {
	table, err := New([]Entry{{ID: 2, Name: "Puka Nacua"}, {ID: 1, Name: "Jalen Hurts"}})
	if err != nil {
		t.Fatalf("expected valid table, got %v", err)
	}

	entries := table.Entries()
	if len(entries) != 2 || entries[0].ID != 1 || entries[1].ID != 2 {
		t.Fatalf("expected entries ordered by id, got %+v", entries)
	}
	if id, ok := table.Match("Jalen Hurts"); !ok || id != 1 {
		t.Fatalf("expected Jalen Hurts -> 1, got %d %v", id, ok)
	}
}

func TestMatchIsExact(t *testing.T) {
	table, err := New([]Entry{{ID: 1, Name: "Jalen Hurts"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range []string{"jalen hurts", "Jalen Hurts ", " Jalen Hurts", "Jalen  Hurts", "Some Other Player", ""} {
		if _, ok := Match(name, table); ok {
			t.Fatalf("expected no match for %q", name)
		}
	}
	if id, ok := Match("Jalen Hurts", table); !ok || id != 1 {
		t.Fatalf("expected exact match, got %d %v", id, ok)
	}
}

func TestNewRejectsInvalidTables(t *testing.T) {
	cases := []struct {
		name    string
		entries []Entry
		want    error
	}{
		{"empty", nil, ErrEmptyTable},
		{"zero id", []Entry{{ID: 0, Name: "A"}}, ErrInvalidID},
		{"empty name", []Entry{{ID: 1, Name: ""}}, ErrEmptyName},
		{"duplicate id", []Entry{{ID: 1, Name: "A"}, {ID: 1, Name: "B"}}, ErrDuplicateID},
		{"duplicate name", []Entry{{ID: 1, Name: "A"}, {ID: 2, Name: "A"}}, ErrDuplicateName},
	}

	for _, tc := range cases {
		if _, err := New(tc.entries); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	table := Default()
	entries := table.Entries()
	entries[0].Name = "mutated"

	if table.Entries()[0].Name == "mutated" {
		t.Fatalf("expected table to be immutable through Entries")
	}
}

func TestDefaultTable(t *testing.T) {
	table := Default()
	if table.Len() != 17 {
		t.Fatalf("expected 17 default entries, got %d", table.Len())
	}
	if id, ok := table.Match("Jacksonville Jaguars D/ST"); !ok || id != 1 {
		t.Fatalf("expected defense to map to 1, got %d %v", id, ok)
	}
	if id, ok := table.Match("T. Hunter"); !ok || id != 17 {
		t.Fatalf("expected T. Hunter to map to 17, got %d %v", id, ok)
	}
}

func TestNilTableIsSafe(t *testing.T) {
	var table *Table
	if _, ok := table.Match("anyone"); ok {
		t.Fatalf("expected no match on nil table")
	}
	if table.Len() != 0 || table.Entries() != nil {
		t.Fatalf("expected empty nil table")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	if err := os.WriteFile(path, []byte(`[{"id":3,"name":"Jared Goff"},{"id":1,"name":"Jalen Hurts"}]`), 0o600); err != nil {
		t.Fatalf("write roster: %v", err)
	}

	table, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("expected roster to load, got %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", table.Len())
	}
	if id, ok := table.Match("Jared Goff"); !ok || id != 3 {
		t.Fatalf("expected Jared Goff -> 3, got %d %v", id, ok)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{not json`), 0o600); err != nil {
		t.Fatalf("write roster: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Fatalf("expected decode error")
	}

	dup := filepath.Join(dir, "dup.json")
	if err := os.WriteFile(dup, []byte(`[{"id":1,"name":"A"},{"id":1,"name":"B"}]`), 0o600); err != nil {
		t.Fatalf("write roster: %v", err)
	}
	if _, err := Load(dup); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestLoadOrDefaultWithoutPath(t *testing.T) {
	table, err := LoadOrDefault("")
	if err != nil || table.Len() != 17 {
		t.Fatalf("expected default table, got %v (%d entries)", err, table.Len())
	}
}
