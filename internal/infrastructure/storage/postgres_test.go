package storage

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"InkSight/internal/domain"
)

func TestUpsertSeoSQLPatchesOnlyGivenColumns(t *testing.T) {
	t.Parallel()

	desc := "meta"
	cols, vals, err := patchColumns(domain.SeoPatch{
		MetaDescription: &desc,
		Keywords:        []string{"go"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"meta_description", "keywords"}, cols)
	require.Len(t, vals, 2)

	query, args, err := upsertSeoSQL("p1", cols, vals)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO post_seo (post_id,meta_description,keywords)")
	assert.Contains(t, query, "ON CONFLICT (post_id) DO UPDATE SET")
	assert.Contains(t, query, "meta_description = EXCLUDED.meta_description")
	assert.Contains(t, query, "updated_at = NOW()")
	assert.NotContains(t, query, "generated_titles")
	assert.Contains(t, query, "$1")
	assert.Len(t, args, 3)
	assert.Equal(t, "p1", args[0])
}

func TestUpsertSeoSQLEmptyPatchStillTouchesUpdatedAt(t *testing.T) {
	t.Parallel()

	cols, vals, err := patchColumns(domain.SeoPatch{})
	require.NoError(t, err)
	require.Empty(t, cols)

	query, _, err := upsertSeoSQL("p1", cols, vals)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO post_seo (post_id)")
	assert.Contains(t, query, "DO UPDATE SET updated_at = NOW()")
}

func TestPatchColumnsEncodesOutlineAsJSON(t *testing.T) {
	t.Parallel()

	cols, vals, err := patchColumns(domain.SeoPatch{
		Outline: []domain.OutlineEntry{{ID: "heading-0", Text: "Intro", Level: 2}},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"outline"}, cols)

	raw, ok := vals[0].([]byte)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"heading-0","text":"Intro","level":2}]`, string(raw))
}

func TestPatchColumnsDistinguishesNilAndEmptySlices(t *testing.T) {
	t.Parallel()

	cols, _, err := patchColumns(domain.SeoPatch{Keywords: nil})
	require.NoError(t, err)
	assert.Empty(t, cols)

	cols, _, err = patchColumns(domain.SeoPatch{Keywords: []string{}})
	require.NoError(t, err)
	assert.Equal(t, []string{"keywords"}, cols)
}

func TestListForUserSQLFiltersPublished(t *testing.T) {
	t.Parallel()

	// Pins the query shape ListForUser builds.
	query, args, err := psql.Select("b.post_id").
		From("bookmarks b").
		Join("posts p ON p.id = b.post_id").
		Where(sq.Eq{"b.user_id": "u1", "p.status": string(domain.StatusPublished)}).
		OrderBy("b.created_at DESC").
		Limit(21).
		ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "JOIN posts p ON p.id = b.post_id")
	assert.Contains(t, query, "ORDER BY b.created_at DESC")
	assert.Contains(t, query, "LIMIT 21")
	assert.True(t, strings.Contains(query, "p.status") && strings.Contains(query, "b.user_id"))
	assert.Len(t, args, 2)
}
