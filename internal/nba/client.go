package nba

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the production stats endpoint.
	DefaultBaseURL = "https://data.nba.net"

	// DefaultTimeout bounds each feed request. There are no retries; a
	// slow or failing feed aborts the whole run.
	DefaultTimeout = 15 * time.Second

	// maxResponseSize caps feed responses (the full player directory is
	// the largest feed, well under this).
	maxResponseSize = 16 * 1024 * 1024
)

// Client fetches the league statistics feeds.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	log       *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL points the client at a different endpoint (tests).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		c.http = h
	}
}

// NewClient creates a stats client.
func NewClient(log *slog.Logger, userAgent string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: userAgent,
		http:      &http.Client{Timeout: DefaultTimeout},
		log:       log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CurrentSeasonYear returns the season year the provider is currently in.
func (c *Client) CurrentSeasonYear(ctx context.Context) (int, error) {
	var today struct {
		SeasonScheduleYear int `json:"seasonScheduleYear"`
	}
	if err := c.get(ctx, "/prod/v1/today.json", &today); err != nil {
		return 0, err
	}
	return today.SeasonScheduleYear, nil
}

// ScheduleFor fetches a team's season schedule.
func (c *Client) ScheduleFor(ctx context.Context, urlName string, year int) (*Schedule, error) {
	var sched Schedule
	path := fmt.Sprintf("/prod/v1/%d/teams/%s/schedule.json", year, urlName)
	if err := c.get(ctx, path, &sched); err != nil {
		return nil, err
	}
	return &sched, nil
}

// BoxscoreFor fetches the statistics snapshot for one game.
func (c *Client) BoxscoreFor(ctx context.Context, startDateEastern, gameID string) (*Boxscore, error) {
	var box Boxscore
	path := fmt.Sprintf("/prod/v1/%s/%s_boxscore.json", startDateEastern, gameID)
	if err := c.get(ctx, path, &box); err != nil {
		return nil, err
	}
	return &box, nil
}

// Teams fetches the league team directory keyed by team id. Non-franchise
// entries (all-star squads and the like) are dropped.
func (c *Client) Teams(ctx context.Context, year int) (map[string]Team, error) {
	var feed struct {
		League struct {
			Standard []Team `json:"standard"`
		} `json:"league"`
	}
	path := fmt.Sprintf("/prod/v2/%d/teams.json", year)
	if err := c.get(ctx, path, &feed); err != nil {
		return nil, err
	}
	teams := make(map[string]Team, len(feed.League.Standard))
	for _, t := range feed.League.Standard {
		if t.IsNBAFranchise {
			teams[t.TeamID] = t
		}
	}
	return teams, nil
}

// Roster fetches the set of player ids on a team's roster.
func (c *Client) Roster(ctx context.Context, urlName string, year int) (map[string]struct{}, error) {
	var feed struct {
		League struct {
			Standard struct {
				Players []struct {
					PersonID string `json:"personId"`
				} `json:"players"`
			} `json:"standard"`
		} `json:"league"`
	}
	path := fmt.Sprintf("/prod/v1/%d/teams/%s/roster.json", year, urlName)
	if err := c.get(ctx, path, &feed); err != nil {
		return nil, err
	}
	roster := make(map[string]struct{}, len(feed.League.Standard.Players))
	for _, p := range feed.League.Standard.Players {
		roster[p.PersonID] = struct{}{}
	}
	return roster, nil
}

// Players fetches the league-wide player directory.
func (c *Client) Players(ctx context.Context, year int) ([]Player, error) {
	var feed struct {
		League struct {
			Standard []Player `json:"standard"`
		} `json:"league"`
	}
	path := fmt.Sprintf("/prod/v1/%d/players.json", year)
	if err := c.get(ctx, path, &feed); err != nil {
		return nil, err
	}
	return feed.League.Standard, nil
}

// ConferenceStandings fetches the current standings for both conferences.
func (c *Client) ConferenceStandings(ctx context.Context) (*Standings, error) {
	var feed struct {
		League struct {
			Standard Standings `json:"standard"`
		} `json:"league"`
	}
	if err := c.get(ctx, "/prod/v1/current/standings_conference.json", &feed); err != nil {
		return nil, err
	}
	return &feed.League.Standard, nil
}

// get performs one GET request and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return newFetchError(url, 0, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	c.log.Debug("fetching stats feed", "url", url)
	resp, err := c.http.Do(req)
	if err != nil {
		return newFetchError(url, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return newFetchError(url, resp.StatusCode, fmt.Errorf("unexpected status"))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return newFetchError(url, resp.StatusCode, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return newMalformedError(url, err)
	}
	return nil
}
