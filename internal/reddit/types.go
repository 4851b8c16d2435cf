package reddit

import (
	"context"
	"time"
)

// Post is one forum submission as the platform reports it. The bot reads
// these fresh every run and never caches them.
type Post struct {
	// Fullname is the platform's globally unique id, e.g. "t3_abc123".
	Fullname string

	Title    string
	SelfText string
	Author   string
	Created  time.Time
	Stickied bool
}

// Client is the forum surface the bot needs. The production implementation
// talks to reddit; tests substitute a fake.
type Client interface {
	// Identity returns the account name the client is authenticated as.
	Identity(ctx context.Context) (string, error)

	// RecentPosts returns up to limit newest submissions in a subreddit,
	// newest first.
	RecentPosts(ctx context.Context, subreddit string, limit int) ([]Post, error)

	// SubmitSelfPost creates a self post and returns it.
	SubmitSelfPost(ctx context.Context, subreddit, title, body string) (Post, error)

	// StickyPost pins a submission to the top of its subreddit.
	StickyPost(ctx context.Context, fullname string) error

	// EditSelfPost replaces a submission's body. The title is immutable
	// on the platform, which is why reconciliation never changes it.
	EditSelfPost(ctx context.Context, fullname, body string) error

	// SidebarDescription returns the subreddit's sidebar markdown.
	SidebarDescription(ctx context.Context, subreddit string) (string, error)

	// UpdateSidebarDescription replaces the sidebar markdown.
	UpdateSidebarDescription(ctx context.Context, subreddit, description string) error
}
