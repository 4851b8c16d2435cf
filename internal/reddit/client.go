package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	authBaseURL  = "https://www.reddit.com"
	oauthBaseURL = "https://oauth.reddit.com"

	// DefaultTimeout bounds each forum request; there are no retries.
	DefaultTimeout = 15 * time.Second
)

// Credentials are reddit script-app credentials plus the bot account.
type Credentials struct {
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	UserAgent    string
}

// HTTPClient talks to the reddit API with a script-app password grant. The
// access token is fetched lazily on the first call and kept for the run;
// runs are far shorter than the token lifetime.
type HTTPClient struct {
	creds     Credentials
	authBase  string
	oauthBase string
	http      *http.Client
	log       *slog.Logger
	token     string
}

// HTTPClientOption configures an HTTPClient.
type HTTPClientOption func(*HTTPClient)

// WithBaseURLs points the client at different endpoints (tests).
func WithBaseURLs(authBase, oauthBase string) HTTPClientOption {
	return func(c *HTTPClient) {
		c.authBase = authBase
		c.oauthBase = oauthBase
	}
}

// NewHTTPClient creates a reddit client.
func NewHTTPClient(log *slog.Logger, creds Credentials, opts ...HTTPClientOption) *HTTPClient {
	c := &HTTPClient{
		creds:     creds,
		authBase:  authBaseURL,
		oauthBase: oauthBaseURL,
		http:      &http.Client{Timeout: DefaultTimeout},
		log:       log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ Client = (*HTTPClient)(nil)

// Identity implements Client.
func (c *HTTPClient) Identity(ctx context.Context) (string, error) {
	var me struct {
		Name string `json:"name"`
	}
	if err := c.get(ctx, "identity", "/api/v1/me", nil, &me); err != nil {
		return "", err
	}
	return me.Name, nil
}

// listing is the platform's envelope for post feeds.
type listing struct {
	Data struct {
		Children []struct {
			Data struct {
				Name       string  `json:"name"`
				Title      string  `json:"title"`
				SelfText   string  `json:"selftext"`
				Author     string  `json:"author"`
				CreatedUTC float64 `json:"created_utc"`
				Stickied   bool    `json:"stickied"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// RecentPosts implements Client.
func (c *HTTPClient) RecentPosts(ctx context.Context, subreddit string, limit int) ([]Post, error) {
	var l listing
	params := url.Values{
		"limit":    {strconv.Itoa(limit)},
		"raw_json": {"1"},
	}
	path := fmt.Sprintf("/r/%s/new", subreddit)
	if err := c.get(ctx, "recent-posts", path, params, &l); err != nil {
		return nil, err
	}
	posts := make([]Post, 0, len(l.Data.Children))
	for _, child := range l.Data.Children {
		d := child.Data
		posts = append(posts, Post{
			Fullname: d.Name,
			Title:    d.Title,
			SelfText: d.SelfText,
			Author:   d.Author,
			Created:  time.Unix(int64(d.CreatedUTC), 0).UTC(),
			Stickied: d.Stickied,
		})
	}
	return posts, nil
}

// SubmitSelfPost implements Client.
func (c *HTTPClient) SubmitSelfPost(ctx context.Context, subreddit, title, body string) (Post, error) {
	form := url.Values{
		"api_type":    {"json"},
		"kind":        {"self"},
		"sr":          {subreddit},
		"title":       {title},
		"text":        {body},
		"sendreplies": {"false"},
	}
	var resp struct {
		JSON struct {
			Data struct {
				Name string `json:"name"`
			} `json:"data"`
			Errors [][]any `json:"errors"`
		} `json:"json"`
	}
	if err := c.post(ctx, "submit", "/api/submit", form, &resp); err != nil {
		return Post{}, err
	}
	if len(resp.JSON.Errors) > 0 {
		return Post{}, &RequestError{Op: "submit", Err: fmt.Errorf("api errors: %v", resp.JSON.Errors)}
	}
	return Post{
		Fullname: resp.JSON.Data.Name,
		Title:    title,
		SelfText: body,
		Author:   c.creds.Username,
	}, nil
}

// StickyPost implements Client.
func (c *HTTPClient) StickyPost(ctx context.Context, fullname string) error {
	form := url.Values{
		"api_type": {"json"},
		"id":       {fullname},
		"state":    {"true"},
	}
	return c.post(ctx, "sticky", "/api/set_subreddit_sticky", form, nil)
}

// EditSelfPost implements Client.
func (c *HTTPClient) EditSelfPost(ctx context.Context, fullname, body string) error {
	form := url.Values{
		"api_type": {"json"},
		"thing_id": {fullname},
		"text":     {body},
	}
	return c.post(ctx, "edit", "/api/editusertext", form, nil)
}

// SidebarDescription implements Client.
func (c *HTTPClient) SidebarDescription(ctx context.Context, subreddit string) (string, error) {
	var about struct {
		Data struct {
			Description string `json:"description"`
		} `json:"data"`
	}
	path := fmt.Sprintf("/r/%s/about/edit", subreddit)
	if err := c.get(ctx, "sidebar-read", path, url.Values{"raw_json": {"1"}}, &about); err != nil {
		return "", err
	}
	return about.Data.Description, nil
}

// UpdateSidebarDescription implements Client.
func (c *HTTPClient) UpdateSidebarDescription(ctx context.Context, subreddit, description string) error {
	form := url.Values{
		"api_type":    {"json"},
		"sr":          {subreddit},
		"description": {description},
	}
	return c.post(ctx, "sidebar-write", "/api/site_admin", form, nil)
}

// ensureToken performs the password-grant handshake once per run.
func (c *HTTPClient) ensureToken(ctx context.Context) error {
	if c.token != "" {
		return nil
	}
	form := url.Values{
		"grant_type": {"password"},
		"username":   {c.creds.Username},
		"password":   {c.creds.Password},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.authBase+"/api/v1/access_token", strings.NewReader(form.Encode()))
	if err != nil {
		return &RequestError{Op: "auth", Err: err}
	}
	req.SetBasicAuth(c.creds.ClientID, c.creds.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.creds.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Op: "auth", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &RequestError{Op: "auth", Status: resp.StatusCode, Err: fmt.Errorf("unexpected status")}
	}

	var tok struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return &RequestError{Op: "auth", Err: err}
	}
	if tok.AccessToken == "" {
		return &RequestError{Op: "auth", Err: fmt.Errorf("empty access token")}
	}
	c.token = tok.AccessToken
	return nil
}

func (c *HTTPClient) get(ctx context.Context, op, path string, params url.Values, out any) error {
	full := c.oauthBase + path
	if len(params) > 0 {
		full += "?" + params.Encode()
	}
	return c.do(ctx, op, http.MethodGet, full, "", out)
}

func (c *HTTPClient) post(ctx context.Context, op, path string, form url.Values, out any) error {
	return c.do(ctx, op, http.MethodPost, c.oauthBase+path, form.Encode(), out)
}

func (c *HTTPClient) do(ctx context.Context, op, method, fullURL, body string, out any) error {
	if err := c.ensureToken(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return &RequestError{Op: op, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", c.creds.UserAgent)
	if body != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	c.log.Debug("reddit api call", "op", op, "method", method)
	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Op: op, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &RequestError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("unexpected status")}
	}
	if out == nil {
		_, err = io.Copy(io.Discard, resp.Body)
		if err != nil {
			return &RequestError{Op: op, Err: err}
		}
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{Op: op, Err: err}
	}
	return nil
}
