package domain

import "time"

// PostStatus enumerates the publication states a post moves through.
type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
	StatusArchived  PostStatus = "archived"
)

// Post is a read-only view of an article as the platform stores it.
type Post struct {
	ID        string
	AuthorID  string
	Title     string
	BodyHTML  string
	Category  string
	Tags      []string
	Status    PostStatus
	Views     int
	Likes     int
	CreatedAt time.Time
}

// EngagementMetrics carries prior view/like counts into insight prompts.
type EngagementMetrics struct {
	Views int
	Likes int
}

// Bookmark links a user to a post they saved.
type Bookmark struct {
	UserID    string
	PostID    string
	CreatedAt time.Time
}

// BookmarkEntry pairs a bookmark with the published post it points at.
type BookmarkEntry struct {
	Bookmark Bookmark
	Post     Post
}

// BookmarkPage is one newest-first page of a user's saved posts.
type BookmarkPage struct {
	Entries []BookmarkEntry
	HasMore bool
}
