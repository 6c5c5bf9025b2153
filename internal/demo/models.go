// Package demo is a small blog model used by the apihelp command and the
// help console when no application catalog is linked in.
package demo

import (
	"fmt"
	"strings"
	"time"
)

// Record holds the columns every model shares
type Record struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Touch bumps UpdatedAt
func (r *Record) Touch() {
	r.UpdatedAt = time.Now()
}

// Persisted reports whether the record has been saved
func (r Record) Persisted() bool {
	return r.ID != 0
}

// User is a blog author
type User struct {
	Record
	FirstName string
	LastName  string
	Email     string
}

// FullName joins the first and last name
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Rename replaces both names
func (u *User) Rename(first, last string) {
	u.FirstName, u.LastName = first, last
}

// HelpClassFuncs lists the class-level functions of User
func (User) HelpClassFuncs() map[string]any {
	return map[string]any{
		"Find":        FindUser,
		"FindByEmail": FindUserByEmail,
	}
}

// FindUser looks a user up by id
func FindUser(id int64) (*User, error) {
	return nil, fmt.Errorf("user %d not found", id)
}

// FindUserByEmail looks a user up by email address
func FindUserByEmail(email string) (*User, error) {
	return nil, fmt.Errorf("user %q not found", email)
}

// Post is an article written by a user
type Post struct {
	Record
	UserID int64
	Title  string
	Body   string
	Tags   []string
}

// Slug derives the URL fragment from the title
func (p Post) Slug() string {
	return strings.ToLower(strings.Join(strings.Fields(p.Title), "-"))
}

// Publish marks the post visible at the given time
func (p *Post) Publish(at time.Time) error {
	if p.Title == "" {
		return fmt.Errorf("post has no title")
	}
	p.UpdatedAt = at
	return nil
}

// Tag appends tags to the post
func (p *Post) Tag(tags ...string) {
	p.Tags = append(p.Tags, tags...)
}

// HelpClassFuncs lists the class-level functions of Post
func (Post) HelpClassFuncs() map[string]any {
	return map[string]any{
		"Recent": RecentPosts,
	}
}

// RecentPosts returns the newest posts
func RecentPosts(limit int) []Post {
	return make([]Post, 0, limit)
}

// FeaturedPost is a post pinned to the front page
type FeaturedPost struct {
	Post
	Rank int
}

// Promote moves the post up the front page
func (f *FeaturedPost) Promote(by int) {
	f.Rank -= by
}

// Comment is a reply to a post
type Comment struct {
	Record
	PostID int64
	UserID int64
	Body   string
}

// Excerpt returns the first n characters of the body
func (c Comment) Excerpt(n int) string {
	if len(c.Body) <= n {
		return c.Body
	}
	return c.Body[:n]
}
