package roster

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a JSON roster file of the form [{"id":1,"name":"..."}].
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roster: read %s: %w", path, err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("roster: decode %s: %w", path, err)
	}
	return New(entries)
}

// LoadOrDefault returns the built-in table when path is empty.
func LoadOrDefault(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
