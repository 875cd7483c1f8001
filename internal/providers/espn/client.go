package espn

import (
	"bytes"
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

// Config controls how the ESPN client reaches the fantasy league API.
type Config struct {
	BaseURL    string
	LeagueID   int
	Year       int
	SWID       string
	S2         string
	HTTPClient *http.Client
}

// Client fetches league rosters from ESPN and maps them to injury records.
type Client struct {
	baseURL    string
	leagueID   int
	year       int
	swid       string
	s2         string
	httpClient httpDoer
}

// NewClient constructs an ESPN client. Both SWID and espn_s2 must be set for
// private league access; otherwise the league is read anonymously.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		leagueID:   cfg.LeagueID,
		year:       resolveYear(cfg.Year),
		swid:       cfg.SWID,
		s2:         cfg.S2,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// Private reports whether requests carry league cookies.
func (c *Client) Private() bool {
	return c.swid != "" && c.s2 != ""
}

// FetchInjuries returns every rostered player in the league with its injury status.
func (c *Client) FetchInjuries(ctx context.Context) ([]injuries.Record, error) {
	if c.leagueID <= 0 {
		return nil, providers.ConfigError(providerName, errors.New("league id must be positive"))
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

	league, err := decodeLeague(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, providers.DecodeError(providerName, err)
	}
	return mapRosters(league), nil
}

func (c *Client) buildRequest(ctx context.Context) (*http.Request, error) {
	var endpoint string
	if c.year < firstCurrentSeason {
		endpoint = fmt.Sprintf("%s/leagueHistory/%d", c.baseURL, c.leagueID)
	} else {
		endpoint = fmt.Sprintf("%s/seasons/%d/segments/0/leagues/%d", c.baseURL, c.year, c.leagueID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Add("view", "mRoster")
	q.Add("view", "mTeam")
	if c.year < firstCurrentSeason {
		q.Set("seasonId", strconv.Itoa(c.year))
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	if c.Private() {
		req.AddCookie(&http.Cookie{Name: cookieSWID, Value: c.swid})
		req.AddCookie(&http.Cookie{Name: cookieS2, Value: c.s2})
	}
	return req, nil
}

// statusError maps ESPN responses that point at bad league settings to config
// errors; everything else is an upstream failure.
func statusError(status int, body string) error {
	err := fmt.Errorf("unexpected response: %q", body)
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &providers.Error{Kind: providers.KindConfig, Provider: providerName, StatusCode: status,
			Err: errors.New("league is private; ESPN_SWID and ESPN_S2 are required")}
	case http.StatusNotFound:
		return &providers.Error{Kind: providers.KindConfig, Provider: providerName, StatusCode: status,
			Err: errors.New("league not found for LEAGUE_ID and YEAR")}
	default:
		return providers.UpstreamError(providerName, status, err)
	}
}

// decodeLeague accepts both the single-season object and the league history
// array, which wraps one league per requested season.
func decodeLeague(r io.Reader) (leagueResponse, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return leagueResponse{}, err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var history []leagueResponse
		if err := json.Unmarshal(trimmed, &history); err != nil {
			return leagueResponse{}, err
		}
		if len(history) == 0 {
			return leagueResponse{}, errors.New("league history is empty")
		}
		return history[0], nil
	}

	var league leagueResponse
	if err := json.Unmarshal(trimmed, &league); err != nil {
		return leagueResponse{}, err
	}
	return league, nil
}
