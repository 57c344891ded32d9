package services

import (
	"inkwell/app/models"
	"inkwell/app/repositories"
)

// CommentService handles business logic for post comments.
type CommentService struct {
	commentRepo repositories.CommentRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repositories.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// CreateComment validates and stores a comment. The referenced post is
// not checked for existence; the slug reference stays weak. Storage
// failures are returned to the caller, never swallowed.
func (s *CommentService) CreateComment(comment *models.Comment) error {
	if err := comment.Validate(); err != nil {
		return err
	}
	comment.BeforeCreate()
	return s.commentRepo.Create(comment)
}

// CommentsForPost returns every comment on the post in insertion order.
func (s *CommentService) CommentsForPost(slug string) ([]*models.Comment, error) {
	return s.commentRepo.ListBySlug(slug)
}

// CommentCount returns the number of comments on the post.
func (s *CommentService) CommentCount(slug string) (int, error) {
	return s.commentRepo.CountBySlug(slug)
}
