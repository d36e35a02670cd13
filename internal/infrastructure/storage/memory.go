package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"InkSight/internal/domain"
	"InkSight/internal/ports"
)

// MemoryStore is a map-backed implementation of the persistence ports with
// the same patch semantics as the Postgres gateway. It backs unit tests and
// database-free local runs.
type MemoryStore struct {
	mu        sync.Mutex
	posts     map[string]domain.Post
	seo       map[string]*domain.SeoRecord
	bookmarks []domain.Bookmark
	clock     func() time.Time
}

var (
	_ ports.SeoRepository      = (*MemoryStore)(nil)
	_ ports.BookmarkRepository = (*MemoryStore)(nil)
	_ ports.PostSource         = (*MemoryStore)(nil)
)

// NewMemoryStore builds an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		posts: map[string]domain.Post{},
		seo:   map[string]*domain.SeoRecord{},
		clock: time.Now,
	}
}

// AddPost seeds a post.
func (s *MemoryStore) AddPost(post domain.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[post.ID] = post
}

// GetPost implements ports.PostSource.
func (s *MemoryStore) GetPost(_ context.Context, postID string) (domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[postID]
	if !ok {
		return domain.Post{}, fmt.Errorf("post %s not found", postID)
	}
	return post, nil
}

// Upsert implements ports.SeoRepository with field-patch semantics: nil
// patch fields leave the stored value alone.
func (s *MemoryStore) Upsert(_ context.Context, postID string, patch domain.SeoPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	record, ok := s.seo[postID]
	if !ok {
		record = &domain.SeoRecord{PostID: postID, CreatedAt: now}
		s.seo[postID] = record
	}

	if patch.MetaDescription != nil {
		record.MetaDescription = cloned(patch.MetaDescription)
	}
	if patch.Keywords != nil {
		record.Keywords = append([]string(nil), patch.Keywords...)
	}
	if patch.SocialPreviewText != nil {
		record.SocialPreviewText = cloned(patch.SocialPreviewText)
	}
	if patch.SuggestedSlug != nil {
		record.SuggestedSlug = cloned(patch.SuggestedSlug)
	}
	if patch.WordCount != nil {
		record.WordCount = clonedInt(patch.WordCount)
	}
	if patch.SentenceCount != nil {
		record.SentenceCount = clonedInt(patch.SentenceCount)
	}
	if patch.ReadingTime != nil {
		record.ReadingTime = clonedInt(patch.ReadingTime)
	}
	if patch.ReadabilityScore != nil {
		record.ReadabilityScore = clonedInt(patch.ReadabilityScore)
	}
	if patch.ReadabilityLevel != nil {
		record.ReadabilityLevel = cloned(patch.ReadabilityLevel)
	}
	if patch.AvgSentenceLength != nil {
		v := *patch.AvgSentenceLength
		record.AvgSentenceLength = &v
	}
	if patch.GeneratedTitles != nil {
		record.GeneratedTitles = append([]string(nil), patch.GeneratedTitles...)
	}
	if patch.Outline != nil {
		record.Outline = append([]domain.OutlineEntry(nil), patch.Outline...)
	}

	record.UpdatedAt = now
	return nil
}

// Get implements ports.SeoRepository.
func (s *MemoryStore) Get(_ context.Context, postID string) (*domain.SeoRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.seo[postID]
	if !ok {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

// Toggle implements ports.BookmarkRepository.
func (s *MemoryStore) Toggle(_ context.Context, userID, postID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.bookmarks {
		if b.UserID == userID && b.PostID == postID {
			s.bookmarks = append(s.bookmarks[:i], s.bookmarks[i+1:]...)
			return false, nil
		}
	}

	s.bookmarks = append(s.bookmarks, domain.Bookmark{
		UserID:    userID,
		PostID:    postID,
		CreatedAt: s.clock(),
	})
	return true, nil
}

// Exists implements ports.BookmarkRepository.
func (s *MemoryStore) Exists(_ context.Context, userID, postID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookmarks {
		if b.UserID == userID && b.PostID == postID {
			return true, nil
		}
	}
	return false, nil
}

// ListForUser implements ports.BookmarkRepository: newest first, published
// posts only, limit+1 probe for the hasMore flag.
func (s *MemoryStore) ListForUser(_ context.Context, userID string, limit int) (domain.BookmarkPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = 20
	}

	var entries []domain.BookmarkEntry
	for i := len(s.bookmarks) - 1; i >= 0 && len(entries) <= limit; i-- {
		b := s.bookmarks[i]
		if b.UserID != userID {
			continue
		}
		post, ok := s.posts[b.PostID]
		if !ok || post.Status != domain.StatusPublished {
			continue
		}
		entries = append(entries, domain.BookmarkEntry{Bookmark: b, Post: post})
	}

	page := domain.BookmarkPage{Entries: entries}
	if len(entries) > limit {
		page.Entries = entries[:limit]
		page.HasMore = true
	}
	return page, nil
}

// CountForPost implements ports.BookmarkRepository.
func (s *MemoryStore) CountForPost(_ context.Context, postID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, b := range s.bookmarks {
		if b.PostID == postID {
			count++
		}
	}
	return count, nil
}

// BookmarkCount reports the total number of stored bookmark rows.
func (s *MemoryStore) BookmarkCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookmarks)
}

func cloned(v *string) *string {
	c := *v
	return &c
}

func clonedInt(v *int) *int {
	c := *v
	return &c
}
