package apisports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/preston-bernstein/injury-report-service/internal/domain/injuries"
	"github.com/preston-bernstein/injury-report-service/internal/providers"
)

// errMissingKey mirrors the request-time check for API_SPORTS_KEY.
var errMissingKey = errors.New("API_SPORTS_KEY is not set in environment variables")

// Config controls how the API-Sports client reaches the injuries endpoint.
type Config struct {
	BaseURL    string
	APIKey     string
	LeagueID   int
	Season     int
	HTTPClient *http.Client
}

// Client fetches league-wide injury reports from API-Sports.
type Client struct {
	baseURL    string
	apiKey     string
	leagueID   int
	season     int
	httpClient httpDoer
}

// NewClient constructs an API-Sports client. A missing key is reported on
// each fetch rather than here.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		leagueID:   orDefault(cfg.LeagueID, defaultLeagueID),
		season:     orDefault(cfg.Season, defaultSeason),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchInjuries retrieves the current injury report for the configured league and season.
func (c *Client) FetchInjuries(ctx context.Context) ([]injuries.Record, error) {
	if c.apiKey == "" {
		return nil, providers.ConfigError(providerName, errMissingKey)
	}

	req, err := c.buildRequest(ctx)
	if err != nil {
		return nil, providers.ConfigError(providerName, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, providers.UpstreamError(providerName, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, statusError(resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload injuriesResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return nil, providers.DecodeError(providerName, err)
	}

	if errs := reportedErrors(payload.Errors); len(errs) > 0 {
		kind := providers.KindUpstream
		if _, ok := errs["token"]; ok {
			kind = providers.KindConfig
		}
		return nil, &providers.Error{
			Kind:     kind,
			Provider: providerName,
			Err:      fmt.Errorf("provider reported errors: %s", describeErrors(errs)),
		}
	}

	return mapInjuries(payload.Response), nil
}

func (c *Client) buildRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/injuries", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("league", strconv.Itoa(c.leagueID))
	q.Set("season", strconv.Itoa(c.season))
	req.URL.RawQuery = q.Encode()

	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func statusError(status int, body string) error {
	err := fmt.Errorf("unexpected response: %q", body)
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return &providers.Error{Kind: providers.KindConfig, Provider: providerName, StatusCode: status, Err: err}
	}
	return providers.UpstreamError(providerName, status, err)
}
