package services

import (
	"testing"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceComment(postSlug string) *models.Comment {
	return &models.Comment{
		PostSlug:    postSlug,
		DisplayName: "alice",
		Email:       "alice@example.com",
		Picture:     "https://example.com/alice.png",
		Body:        "nice post",
	}
}

func TestCreateComment(t *testing.T) {
	repo := mock.NewCommentRepository()
	service := NewCommentService(repo)

	t.Run("rejects incomplete comments", func(t *testing.T) {
		comment := serviceComment("a-post")
		comment.Body = ""
		assert.ErrorIs(t, service.CreateComment(comment), models.ErrMandatoryFields)
		count, err := repo.CountBySlug("a-post")
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("stamps created_at on success", func(t *testing.T) {
		comment := serviceComment("a-post")
		require.NoError(t, service.CreateComment(comment))
		assert.False(t, comment.CreatedAt.IsZero())
		assert.NotZero(t, comment.ID)
	})

	t.Run("accepts comments on unknown posts", func(t *testing.T) {
		require.NoError(t, service.CreateComment(serviceComment("no-such-post")))
		count, err := service.CommentCount("no-such-post")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestCommentsForPost(t *testing.T) {
	repo := mock.NewCommentRepository()
	service := NewCommentService(repo)

	first := serviceComment("discussed")
	first.Body = "first!"
	first.CreatedAt = time.Date(2024, 2, 1, 10, 0, 0, 0, time.Local)
	require.NoError(t, service.CreateComment(first))

	second := serviceComment("discussed")
	second.DisplayName = "bob"
	second.Email = "bob@example.com"
	require.NoError(t, service.CreateComment(second))
	require.NoError(t, service.CreateComment(serviceComment("quiet-post")))

	comments, err := service.CommentsForPost("discussed")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first!", comments[0].Body)
	assert.Equal(t, "bob", comments[1].DisplayName)

	count, err := service.CommentCount("discussed")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
