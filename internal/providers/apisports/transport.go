package apisports

import (
	"net/http"
	"strings"
)

// maxResponseBytes caps how much of a success body is decoded; a var for tests.
var maxResponseBytes int64 = 8 << 20

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func orDefault(val, def int) int {
	if val <= 0 {
		return def
	}
	return val
}
