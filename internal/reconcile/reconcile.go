// Package reconcile keeps at most one live thread per game phase in sync
// with freshly rendered content.
//
// Each run scans the subreddit's bounded recent-posts feed for a post that
// matches the phase prefix, was written by the bot's own identity, and is
// young enough to still be the current thread. A miss creates and pins a new
// post; a hit either leaves it alone or overwrites its body in place.
//
// The scan-then-act sequence is not atomic against the forum: two
// overlapping runs can both miss and both create. There is no lock or
// fencing token; the freshness and author filters narrow the window, and the
// scheduler's interval is expected to exceed the platform's read-after-write
// lag.
package reconcile

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/courtbot/courtbot/internal/engine"
	"github.com/courtbot/courtbot/internal/reddit"
)

// RecentPostsLimit is the page size requested from the recent-posts feed.
// A thread older than the feed's horizon would be missed, which is accepted:
// only the newest thread per phase is ever relevant.
const RecentPostsLimit = 300

// MaxPostAge is how old a matching post may be and still count as the live
// thread for its phase. Shares the classifier's freshness window so a thread
// expires at the same moment its game stops being current.
const MaxPostAge = engine.FreshnessWindow

// Outcome says what a reconciliation run did.
type Outcome string

const (
	// OutcomeCreated means no live thread existed and one was created.
	OutcomeCreated Outcome = "created"

	// OutcomeUpdated means the live thread's body was overwritten.
	OutcomeUpdated Outcome = "updated"

	// OutcomeUnchanged means the live thread already had this body.
	OutcomeUnchanged Outcome = "unchanged"
)

// Result reports the outcome and the post it applies to.
type Result struct {
	Outcome Outcome
	Post    reddit.Post
}

// Reconciler finds-or-creates the single canonical post per phase.
type Reconciler struct {
	forum reddit.Client
	log   *slog.Logger
}

// New creates a Reconciler.
func New(forum reddit.Client, log *slog.Logger) *Reconciler {
	return &Reconciler{forum: forum, log: log}
}

// Reconcile ensures a post with the given prefix, title and body exists and
// is current. The title is only used on create; an existing post keeps its
// title no matter how the rendered one has drifted.
func (r *Reconciler) Reconcile(
	ctx context.Context,
	subreddit, prefix, title, body, identity string,
	now time.Time,
) (Result, error) {
	posts, err := r.forum.RecentPosts(ctx, subreddit, RecentPostsLimit)
	if err != nil {
		return Result{}, err
	}

	var existing *reddit.Post
	for i := range posts {
		p := &posts[i]
		if !strings.HasPrefix(p.Title, prefix) || p.Author != identity {
			continue
		}
		// An old same-prefix post belongs to an earlier game; touching
		// it would resurrect a dead thread.
		if p.Created.Add(MaxPostAge).Before(now) {
			continue
		}
		existing = p
		break
	}

	if existing == nil {
		post, err := r.forum.SubmitSelfPost(ctx, subreddit, title, body)
		if err != nil {
			return Result{}, err
		}
		if err := r.forum.StickyPost(ctx, post.Fullname); err != nil {
			return Result{}, err
		}
		r.log.Info("created a new thread", "title", post.Title)
		return Result{Outcome: OutcomeCreated, Post: post}, nil
	}

	if strings.TrimSpace(existing.SelfText) == strings.TrimSpace(body) {
		r.log.Info("thread text did not change, not updating", "title", existing.Title)
		return Result{Outcome: OutcomeUnchanged, Post: *existing}, nil
	}

	if err := r.forum.EditSelfPost(ctx, existing.Fullname, body); err != nil {
		return Result{}, err
	}
	r.log.Info("updated thread", "title", existing.Title)
	updated := *existing
	updated.SelfText = body
	return Result{Outcome: OutcomeUpdated, Post: updated}, nil
}
