// Package storage implements the persistence ports against Postgres, with
// an in-memory variant for tests and local runs.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"InkSight/internal/domain"
	"InkSight/internal/ports"
)

// Expected tables:
//
//	posts     (id, author_id, title, body_html, category, tags, status,
//	           views, likes, created_at)
//	post_seo  (post_id PK, meta_description, keywords, social_preview_text,
//	           suggested_slug, word_count, sentence_count, reading_time,
//	           readability_score, readability_level, avg_sentence_length,
//	           generated_titles, outline, created_at, updated_at)
//	bookmarks (id PK, user_id, post_id, created_at, UNIQUE(user_id, post_id))

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresSeoRepository persists the per-post intelligence record.
type PostgresSeoRepository struct {
	db *sql.DB
}

var _ ports.SeoRepository = (*PostgresSeoRepository)(nil)

// NewPostgresSeoRepository wires a sql.DB implementation.
func NewPostgresSeoRepository(db *sql.DB) *PostgresSeoRepository {
	return &PostgresSeoRepository{db: db}
}

// Upsert merges the patched fields into the record for postID in a single
// insert-or-update statement; fields absent from the patch stay untouched
// and updated_at always advances.
func (r *PostgresSeoRepository) Upsert(ctx context.Context, postID string, patch domain.SeoPatch) error {
	if r.db == nil {
		return nil
	}

	cols, vals, err := patchColumns(patch)
	if err != nil {
		return err
	}

	query, args, err := upsertSeoSQL(postID, cols, vals)
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert seo record: %w", err)
	}

	return nil
}

// upsertSeoSQL builds the insert-or-patch statement. Split out so the
// generated SQL stays unit-testable without a database.
func upsertSeoSQL(postID string, cols []string, vals []any) (string, []any, error) {
	assignments := make([]string, 0, len(cols)+1)
	for _, col := range cols {
		assignments = append(assignments, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}
	assignments = append(assignments, "updated_at = NOW()")

	builder := psql.Insert("post_seo").
		Columns(append([]string{"post_id"}, cols...)...).
		Values(append([]any{postID}, vals...)...).
		Suffix("ON CONFLICT (post_id) DO UPDATE SET " + strings.Join(assignments, ", "))

	return builder.ToSql()
}

func patchColumns(patch domain.SeoPatch) ([]string, []any, error) {
	var (
		cols []string
		vals []any
	)
	add := func(col string, v any) {
		cols = append(cols, col)
		vals = append(vals, v)
	}

	if patch.MetaDescription != nil {
		add("meta_description", *patch.MetaDescription)
	}
	if patch.Keywords != nil {
		add("keywords", pq.Array(patch.Keywords))
	}
	if patch.SocialPreviewText != nil {
		add("social_preview_text", *patch.SocialPreviewText)
	}
	if patch.SuggestedSlug != nil {
		add("suggested_slug", *patch.SuggestedSlug)
	}
	if patch.WordCount != nil {
		add("word_count", *patch.WordCount)
	}
	if patch.SentenceCount != nil {
		add("sentence_count", *patch.SentenceCount)
	}
	if patch.ReadingTime != nil {
		add("reading_time", *patch.ReadingTime)
	}
	if patch.ReadabilityScore != nil {
		add("readability_score", *patch.ReadabilityScore)
	}
	if patch.ReadabilityLevel != nil {
		add("readability_level", *patch.ReadabilityLevel)
	}
	if patch.AvgSentenceLength != nil {
		add("avg_sentence_length", *patch.AvgSentenceLength)
	}
	if patch.GeneratedTitles != nil {
		add("generated_titles", pq.Array(patch.GeneratedTitles))
	}
	if patch.Outline != nil {
		raw, err := json.Marshal(patch.Outline)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal outline: %w", err)
		}
		add("outline", raw)
	}

	return cols, vals, nil
}

// Get loads the record for postID, or nil when none exists.
func (r *PostgresSeoRepository) Get(ctx context.Context, postID string) (*domain.SeoRecord, error) {
	if r.db == nil {
		return nil, nil
	}

	query, args, err := psql.Select(
		"post_id", "meta_description", "keywords", "social_preview_text",
		"suggested_slug", "word_count", "sentence_count", "reading_time",
		"readability_score", "readability_level", "avg_sentence_length",
		"generated_titles", "outline", "created_at", "updated_at",
	).From("post_seo").Where(sq.Eq{"post_id": postID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var (
		record     domain.SeoRecord
		outlineRaw []byte
	)
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(
		&record.PostID,
		&record.MetaDescription,
		pq.Array(&record.Keywords),
		&record.SocialPreviewText,
		&record.SuggestedSlug,
		&record.WordCount,
		&record.SentenceCount,
		&record.ReadingTime,
		&record.ReadabilityScore,
		&record.ReadabilityLevel,
		&record.AvgSentenceLength,
		pq.Array(&record.GeneratedTitles),
		&outlineRaw,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan seo record: %w", err)
	}

	if len(outlineRaw) > 0 {
		if err := json.Unmarshal(outlineRaw, &record.Outline); err != nil {
			return nil, fmt.Errorf("unmarshal outline: %w", err)
		}
	}

	return &record, nil
}

// PostgresPostSource reads posts for the pipeline.
type PostgresPostSource struct {
	db *sql.DB
}

var _ ports.PostSource = (*PostgresPostSource)(nil)

// NewPostgresPostSource wires a sql.DB implementation.
func NewPostgresPostSource(db *sql.DB) *PostgresPostSource {
	return &PostgresPostSource{db: db}
}

// GetPost loads a single post by id.
func (s *PostgresPostSource) GetPost(ctx context.Context, postID string) (domain.Post, error) {
	query, args, err := psql.Select(
		"id", "author_id", "title", "body_html", "category", "tags",
		"status", "views", "likes", "created_at",
	).From("posts").Where(sq.Eq{"id": postID}).ToSql()
	if err != nil {
		return domain.Post{}, fmt.Errorf("build select: %w", err)
	}

	var post domain.Post
	row := s.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.BodyHTML,
		&post.Category,
		pq.Array(&post.Tags),
		&post.Status,
		&post.Views,
		&post.Likes,
		&post.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Post{}, fmt.Errorf("post %s not found", postID)
	}
	if err != nil {
		return domain.Post{}, fmt.Errorf("scan post: %w", err)
	}

	return post, nil
}

// PostgresBookmarkRepository maintains the saved-post relation.
type PostgresBookmarkRepository struct {
	db *sql.DB
}

var _ ports.BookmarkRepository = (*PostgresBookmarkRepository)(nil)

// NewPostgresBookmarkRepository wires a sql.DB implementation.
func NewPostgresBookmarkRepository(db *sql.DB) *PostgresBookmarkRepository {
	return &PostgresBookmarkRepository{db: db}
}

// Toggle flips the bookmark for (userID, postID) and reports the new state.
func (r *PostgresBookmarkRepository) Toggle(ctx context.Context, userID, postID string) (bool, error) {
	exists, err := r.Exists(ctx, userID, postID)
	if err != nil {
		return false, err
	}

	if exists {
		query, args, err := psql.Delete("bookmarks").
			Where(sq.Eq{"user_id": userID, "post_id": postID}).ToSql()
		if err != nil {
			return false, fmt.Errorf("build delete: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return false, fmt.Errorf("remove bookmark: %w", err)
		}
		return false, nil
	}

	query, args, err := psql.Insert("bookmarks").
		Columns("id", "user_id", "post_id", "created_at").
		Values(uuid.NewString(), userID, postID, sq.Expr("NOW()")).
		Suffix("ON CONFLICT (user_id, post_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return false, fmt.Errorf("add bookmark: %w", err)
	}

	return true, nil
}

// Exists reports whether the user saved the post.
func (r *PostgresBookmarkRepository) Exists(ctx context.Context, userID, postID string) (bool, error) {
	query, args, err := psql.Select("1").From("bookmarks").
		Where(sq.Eq{"user_id": userID, "post_id": postID}).ToSql()
	if err != nil {
		return false, fmt.Errorf("build select: %w", err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check bookmark: %w", err)
	}
	return true, nil
}

// ListForUser returns the newest page of a user's saved published posts.
// One extra row is fetched to detect whether more pages remain; posts that
// are not published are filtered out silently.
func (r *PostgresBookmarkRepository) ListForUser(ctx context.Context, userID string, limit int) (domain.BookmarkPage, error) {
	if limit <= 0 {
		limit = 20
	}

	query, args, err := psql.Select(
		"b.user_id", "b.post_id", "b.created_at",
		"p.id", "p.author_id", "p.title", "p.body_html", "p.category",
		"p.tags", "p.status", "p.views", "p.likes", "p.created_at",
	).From("bookmarks b").
		Join("posts p ON p.id = b.post_id").
		Where(sq.Eq{"b.user_id": userID, "p.status": string(domain.StatusPublished)}).
		OrderBy("b.created_at DESC").
		Limit(uint64(limit + 1)).
		ToSql()
	if err != nil {
		return domain.BookmarkPage{}, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.BookmarkPage{}, fmt.Errorf("query bookmarks: %w", err)
	}
	defer rows.Close()

	var entries []domain.BookmarkEntry
	for rows.Next() {
		var entry domain.BookmarkEntry
		if err := rows.Scan(
			&entry.Bookmark.UserID,
			&entry.Bookmark.PostID,
			&entry.Bookmark.CreatedAt,
			&entry.Post.ID,
			&entry.Post.AuthorID,
			&entry.Post.Title,
			&entry.Post.BodyHTML,
			&entry.Post.Category,
			pq.Array(&entry.Post.Tags),
			&entry.Post.Status,
			&entry.Post.Views,
			&entry.Post.Likes,
			&entry.Post.CreatedAt,
		); err != nil {
			return domain.BookmarkPage{}, fmt.Errorf("scan bookmark: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return domain.BookmarkPage{}, fmt.Errorf("rows iteration: %w", err)
	}

	page := domain.BookmarkPage{Entries: entries}
	if len(entries) > limit {
		page.Entries = entries[:limit]
		page.HasMore = true
	}
	return page, nil
}

// CountForPost returns how many users saved the post.
func (r *PostgresBookmarkRepository) CountForPost(ctx context.Context, postID string) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From("bookmarks").
		Where(sq.Eq{"post_id": postID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build select: %w", err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count bookmarks: %w", err)
	}
	return count, nil
}
