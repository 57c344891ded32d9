package repositories

import (
	"fmt"
	"testing"
	"time"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()), 2)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testPost(slug string, createdAt time.Time) *models.Post {
	return &models.Post{
		Slug:      slug,
		TitleHTML: "<h1>" + slug + "</h1>",
		TitleMD:   "# " + slug,
		BlurbHTML: "<p>blurb for " + slug + "</p>",
		BlurbMD:   "blurb for " + slug,
		BodyHTML:  "<p>body for " + slug + "</p>",
		BodyMD:    "body for " + slug,
		CreatedAt: createdAt,
	}
}

func TestPostCreateAndLookup(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLitePostRepository(db)

	created := time.Date(2024, 3, 10, 14, 30, 0, 0, time.Local)
	post := testPost("first-post", created)
	require.NoError(t, repo.Create(post))
	assert.NotZero(t, post.ID)

	t.Run("full projection returns fields verbatim", func(t *testing.T) {
		got, err := repo.GetFullBySlug("first-post")
		require.NoError(t, err)
		assert.Equal(t, post.Slug, got.Slug)
		assert.Equal(t, post.TitleHTML, got.TitleHTML)
		assert.Equal(t, post.TitleMD, got.TitleMD)
		assert.Equal(t, post.BlurbHTML, got.BlurbHTML)
		assert.Equal(t, post.BlurbMD, got.BlurbMD)
		assert.Equal(t, post.BodyHTML, got.BodyHTML)
		assert.Equal(t, post.BodyMD, got.BodyMD)
		assert.True(t, got.CreatedAt.Equal(created))
		assert.Nil(t, got.EditedAt)
	})

	t.Run("display projection omits sources", func(t *testing.T) {
		got, err := repo.GetDisplayBySlug("first-post")
		require.NoError(t, err)
		assert.Equal(t, post.Slug, got.Slug)
		assert.Equal(t, post.TitleHTML, got.TitleHTML)
		assert.Equal(t, post.BodyHTML, got.BodyHTML)
		assert.True(t, got.CreatedAt.Equal(created))
	})

	t.Run("unknown slug is ErrNotFound", func(t *testing.T) {
		_, err := repo.GetDisplayBySlug("nope")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = repo.GetFullBySlug("nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPostCreateDuplicateSlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLitePostRepository(db)

	original := testPost("taken", time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local))
	require.NoError(t, repo.Create(original))

	dupe := testPost("taken", time.Now())
	dupe.BodyHTML = "<p>different body</p>"
	assert.ErrorIs(t, repo.Create(dupe), ErrDuplicateSlug)

	// The existing row must be untouched.
	got, err := repo.GetFullBySlug("taken")
	require.NoError(t, err)
	assert.Equal(t, original.BodyHTML, got.BodyHTML)
	assert.True(t, got.CreatedAt.Equal(original.CreatedAt))
}

func TestPostUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLitePostRepository(db)

	t.Run("missing slug is ErrNotFound", func(t *testing.T) {
		post := testPost("ghost", time.Now())
		now := time.Now()
		post.EditedAt = &now
		assert.ErrorIs(t, repo.Update(post), ErrNotFound)
	})

	t.Run("overwrites content and stamps edited_at", func(t *testing.T) {
		created := time.Date(2024, 2, 1, 8, 0, 0, 0, time.Local)
		post := testPost("editable", created)
		require.NoError(t, repo.Create(post))

		edited := time.Date(2024, 2, 5, 12, 0, 0, 0, time.Local)
		updated := testPost("editable", time.Now())
		updated.TitleHTML = "<h1>new title</h1>"
		updated.BodyMD = "new body"
		updated.EditedAt = &edited
		require.NoError(t, repo.Update(updated))

		got, err := repo.GetFullBySlug("editable")
		require.NoError(t, err)
		assert.Equal(t, "<h1>new title</h1>", got.TitleHTML)
		assert.Equal(t, "new body", got.BodyMD)
		require.NotNil(t, got.EditedAt)
		assert.True(t, got.EditedAt.Equal(edited))
		// Identity and creation time never move.
		assert.Equal(t, "editable", got.Slug)
		assert.True(t, got.CreatedAt.Equal(created))
	})
}

func TestPostRecent(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLitePostRepository(db)

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)
	for i := 0; i < 4; i++ {
		post := testPost(fmt.Sprintf("post-%d", i), base.AddDate(0, 0, i))
		require.NoError(t, repo.Create(post))
	}

	posts, err := repo.Recent(3)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "post-3", posts[0].Slug)
	assert.Equal(t, "post-2", posts[1].Slug)
	assert.Equal(t, "post-1", posts[2].Slug)
	// Summary projection carries the teaser, not the body.
	assert.NotEmpty(t, posts[0].BlurbHTML)
}

func TestPostCountByMonth(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLitePostRepository(db)

	// Local midnight on the 1st is the regression case: it must bucket
	// into November, not October.
	require.NoError(t, repo.Create(testPost("november-post", time.Date(2023, 11, 1, 0, 0, 0, 0, time.Local))))
	require.NoError(t, repo.Create(testPost("december-post", time.Date(2023, 12, 15, 16, 45, 0, 0, time.Local))))
	require.NoError(t, repo.Create(testPost("december-post-two", time.Date(2023, 12, 20, 8, 0, 0, 0, time.Local))))

	counts, err := repo.CountByMonth()
	require.NoError(t, err)
	assert.Equal(t, []models.MonthCount{
		{Year: 2023, Month: 12, Count: 2},
		{Year: 2023, Month: 11, Count: 1},
	}, counts)
}

func TestPostListByMonth(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLitePostRepository(db)

	require.NoError(t, repo.Create(testPost("early", time.Date(2020, 11, 3, 10, 0, 0, 0, time.Local))))
	require.NoError(t, repo.Create(testPost("late", time.Date(2020, 11, 20, 10, 0, 0, 0, time.Local))))
	require.NoError(t, repo.Create(testPost("other-month", time.Date(2020, 12, 1, 10, 0, 0, 0, time.Local))))

	t.Run("filters and orders ascending", func(t *testing.T) {
		posts, err := repo.ListByMonth(2020, 11)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "early", posts[0].Slug)
		assert.Equal(t, "late", posts[1].Slug)
	})

	t.Run("out-of-range month matches nothing", func(t *testing.T) {
		posts, err := repo.ListByMonth(2020, 13)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})
}
