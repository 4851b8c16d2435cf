package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/courtbot/courtbot/internal/reddit"
)

// FakeForum is an in-memory reddit.Client. Posts are held newest-first, the
// way the real recent-posts feed returns them, and every mutating call is
// recorded for assertions.
type FakeForum struct {
	Username    string
	Posts       []reddit.Post
	Description string

	// Recorded calls.
	Submitted  []reddit.Post
	Stickied   []string
	Edited     map[string]string
	DescWrites []string

	// Err, when set, is returned by every call.
	Err error

	nextID int
}

var _ reddit.Client = (*FakeForum)(nil)

// NewFakeForum creates a fake forum authenticated as username.
func NewFakeForum(username string) *FakeForum {
	return &FakeForum{Username: username, Edited: make(map[string]string)}
}

// AddPost seeds an existing post and returns its fullname.
func (f *FakeForum) AddPost(title, body, author string, created time.Time) string {
	f.nextID++
	post := reddit.Post{
		Fullname: fmt.Sprintf("t3_seed%d", f.nextID),
		Title:    title,
		SelfText: body,
		Author:   author,
		Created:  created,
	}
	// Newest first.
	f.Posts = append([]reddit.Post{post}, f.Posts...)
	return post.Fullname
}

// Identity implements reddit.Client.
func (f *FakeForum) Identity(_ context.Context) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	return f.Username, nil
}

// RecentPosts implements reddit.Client.
func (f *FakeForum) RecentPosts(_ context.Context, _ string, limit int) ([]reddit.Post, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	if len(f.Posts) > limit {
		return f.Posts[:limit], nil
	}
	return f.Posts, nil
}

// SubmitSelfPost implements reddit.Client.
func (f *FakeForum) SubmitSelfPost(_ context.Context, _, title, body string) (reddit.Post, error) {
	if f.Err != nil {
		return reddit.Post{}, f.Err
	}
	f.nextID++
	post := reddit.Post{
		Fullname: fmt.Sprintf("t3_new%d", f.nextID),
		Title:    title,
		SelfText: body,
		Author:   f.Username,
	}
	f.Posts = append([]reddit.Post{post}, f.Posts...)
	f.Submitted = append(f.Submitted, post)
	return post, nil
}

// StickyPost implements reddit.Client.
func (f *FakeForum) StickyPost(_ context.Context, fullname string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Stickied = append(f.Stickied, fullname)
	for i := range f.Posts {
		if f.Posts[i].Fullname == fullname {
			f.Posts[i].Stickied = true
		}
	}
	return nil
}

// EditSelfPost implements reddit.Client.
func (f *FakeForum) EditSelfPost(_ context.Context, fullname, body string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Edited[fullname] = body
	for i := range f.Posts {
		if f.Posts[i].Fullname == fullname {
			f.Posts[i].SelfText = body
		}
	}
	return nil
}

// SidebarDescription implements reddit.Client.
func (f *FakeForum) SidebarDescription(_ context.Context, _ string) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	return f.Description, nil
}

// UpdateSidebarDescription implements reddit.Client.
func (f *FakeForum) UpdateSidebarDescription(_ context.Context, _, description string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Description = description
	f.DescWrites = append(f.DescWrites, description)
	return nil
}
