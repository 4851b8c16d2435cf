// Package reddit is a minimal client for the forum platform: the bounded
// recent-posts feed, self-post create/edit/sticky, the bot's own identity,
// and the subreddit sidebar description.
//
// The recent-posts feed is used instead of full-text search on purpose: the
// search index lags writes by minutes, which is long enough to make a
// just-created thread invisible to the next run.
package reddit
