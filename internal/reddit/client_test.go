package reddit

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = Credentials{
	ClientID:     "id",
	ClientSecret: "secret",
	Username:     "nyknicks-automod",
	Password:     "hunter2",
	UserAgent:    "courtbot-test",
}

// newTestClient serves the token endpoint plus the given API handler.
func newTestClient(t *testing.T, api http.HandlerFunc) (*HTTPClient, *int) {
	t.Helper()

	tokenCalls := 0
	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		assert.Equal(t, "/api/v1/access_token", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "id", user)
		assert.Equal(t, "secret", pass)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "password", r.PostForm.Get("grant_type"))
		assert.Equal(t, "nyknicks-automod", r.PostForm.Get("username"))
		w.Write([]byte(`{"access_token": "tok-1", "token_type": "bearer"}`))
	}))
	t.Cleanup(auth.Close)

	oauth := httptest.NewServer(api)
	t.Cleanup(oauth.Close)

	c := NewHTTPClient(slog.Default(), testCreds, WithBaseURLs(auth.URL, oauth.URL))
	return c, &tokenCalls
}

func TestIdentity(t *testing.T) {
	c, tokenCalls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/me", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "courtbot-test", r.Header.Get("User-Agent"))
		w.Write([]byte(`{"name": "nyknicks-automod"}`))
	})

	name, err := c.Identity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "nyknicks-automod", name)
	assert.Equal(t, 1, *tokenCalls)
}

func TestTokenFetchedOnce(t *testing.T) {
	c, tokenCalls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "nyknicks-automod"}`))
	})

	_, err := c.Identity(context.Background())
	require.NoError(t, err)
	_, err = c.Identity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, *tokenCalls)
}

func TestRecentPosts(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/nyknicks/new", r.URL.Path)
		assert.Equal(t, "300", r.URL.Query().Get("limit"))
		assert.Equal(t, "1", r.URL.Query().Get("raw_json"))
		w.Write([]byte(`{
			"data": {"children": [
				{"data": {
					"name": "t3_abc",
					"title": "[Game Thread] tonight",
					"selftext": "body",
					"author": "nyknicks-automod",
					"created_utc": 1610751600,
					"stickied": true
				}}
			]}
		}`))
	})

	posts, err := c.RecentPosts(context.Background(), "nyknicks", 300)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "t3_abc", posts[0].Fullname)
	assert.Equal(t, "[Game Thread] tonight", posts[0].Title)
	assert.Equal(t, "nyknicks-automod", posts[0].Author)
	assert.True(t, posts[0].Stickied)
	assert.Equal(t, int64(1610751600), posts[0].Created.Unix())
}

func TestSubmitSelfPost(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/submit", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "self", r.PostForm.Get("kind"))
		assert.Equal(t, "nyknicks", r.PostForm.Get("sr"))
		assert.Equal(t, "false", r.PostForm.Get("sendreplies"))
		w.Write([]byte(`{"json": {"data": {"name": "t3_new1"}, "errors": []}}`))
	})

	post, err := c.SubmitSelfPost(context.Background(), "nyknicks", "title", "body")
	require.NoError(t, err)
	assert.Equal(t, "t3_new1", post.Fullname)
	assert.Equal(t, "title", post.Title)
	assert.Equal(t, "nyknicks-automod", post.Author)
}

func TestSubmitSelfPost_APIErrors(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"json": {"errors": [["SUBREDDIT_NOTALLOWED", "not allowed", "sr"]]}}`))
	})

	_, err := c.SubmitSelfPost(context.Background(), "nyknicks", "title", "body")
	require.Error(t, err)
	assert.True(t, IsRequestError(err))
	assert.Contains(t, err.Error(), "SUBREDDIT_NOTALLOWED")
}

func TestStickyPost(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/set_subreddit_sticky", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "t3_new1", r.PostForm.Get("id"))
		assert.Equal(t, "true", r.PostForm.Get("state"))
		w.Write([]byte(`{"json": {"errors": []}}`))
	})

	require.NoError(t, c.StickyPost(context.Background(), "t3_new1"))
}

func TestEditSelfPost(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/editusertext", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "t3_abc", r.PostForm.Get("thing_id"))
		assert.Equal(t, "new body", r.PostForm.Get("text"))
		w.Write([]byte(`{"json": {"errors": []}}`))
	})

	require.NoError(t, c.EditSelfPost(context.Background(), "t3_abc", "new body"))
}

func TestSidebarRoundTrip(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/r/nyknicks/about/edit":
			w.Write([]byte(`{"data": {"description": "sidebar text"}}`))
		case "/api/site_admin":
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "nyknicks", r.PostForm.Get("sr"))
			assert.Equal(t, "updated text", r.PostForm.Get("description"))
			w.Write([]byte(`{"json": {"errors": []}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	desc, err := c.SidebarDescription(context.Background(), "nyknicks")
	require.NoError(t, err)
	assert.Equal(t, "sidebar text", desc)

	require.NoError(t, c.UpdateSidebarDescription(context.Background(), "nyknicks", "updated text"))
}

func TestRequestError_NotOKStatus(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := c.Identity(context.Background())
	require.Error(t, err)
	assert.True(t, IsRequestError(err))
	assert.Contains(t, err.Error(), "DATA_FETCH")

	var re *RequestError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusForbidden, re.Status)
}

func TestAuthFailure(t *testing.T) {
	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(auth.Close)

	c := NewHTTPClient(slog.Default(), testCreds, WithBaseURLs(auth.URL, auth.URL))
	_, err := c.Identity(context.Background())
	require.Error(t, err)
	assert.True(t, IsRequestError(err))
}
