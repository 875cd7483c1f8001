package apisports

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/preston-bernstein/injury-report-service/internal/domain/injuries"
)

func mapInjuries(items []injuryResponse) []injuries.Record {
	records := make([]injuries.Record, 0, len(items))
	for _, item := range items {
		if item.Player.Name == "" {
			continue
		}
		records = append(records, injuries.Record{
			PlayerName: item.Player.Name,
			RawStatus:  item.Status,
		})
	}
	return records
}

// reportedErrors flattens the "errors" field, which API-Sports sends as an
// empty array on success and as an object keyed by parameter on failure.
func reportedErrors(raw json.RawMessage) map[string]string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var asMap map[string]any
	if err := json.Unmarshal(trimmed, &asMap); err == nil {
		if len(asMap) == 0 {
			return nil
		}
		out := make(map[string]string, len(asMap))
		for k, v := range asMap {
			out[k] = fmt.Sprint(v)
		}
		return out
	}

	var asList []any
	if err := json.Unmarshal(trimmed, &asList); err == nil {
		if len(asList) == 0 {
			return nil
		}
		out := make(map[string]string, len(asList))
		for i, v := range asList {
			out[fmt.Sprintf("%d", i)] = fmt.Sprint(v)
		}
		return out
	}

	return map[string]string{"errors": string(trimmed)}
}

func describeErrors(errs map[string]string) string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+errs[k])
	}
	return strings.Join(parts, "; ")
}
