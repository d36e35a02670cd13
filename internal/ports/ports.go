package ports

import (
	"context"

	"InkSight/internal/domain"
)

// TextGenerator is the external generation capability: prompt in, raw text
// out. Implementations are fallible black boxes; callers classify failures
// and own timeouts via ctx.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// PostSource exposes read-only access to stored posts.
type PostSource interface {
	GetPost(ctx context.Context, postID string) (domain.Post, error)
}

// SeoRepository persists the per-post intelligence record.
// Upsert patches only the fields present on the patch; one call is one
// atomic insert-or-patch against the record keyed by postID.
type SeoRepository interface {
	Upsert(ctx context.Context, postID string, patch domain.SeoPatch) error
	Get(ctx context.Context, postID string) (*domain.SeoRecord, error)
}

// BookmarkRepository maintains the user-to-post saved relation.
type BookmarkRepository interface {
	Toggle(ctx context.Context, userID, postID string) (bookmarked bool, err error)
	Exists(ctx context.Context, userID, postID string) (bool, error)
	ListForUser(ctx context.Context, userID string, limit int) (domain.BookmarkPage, error)
	CountForPost(ctx context.Context, postID string) (int, error)
}
