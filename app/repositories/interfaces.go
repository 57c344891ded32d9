package repositories

import "inkwell/app/models"

// PostRepository defines the interface for post data access.
type PostRepository interface {
	Create(post *models.Post) error
	Update(post *models.Post) error
	GetDisplayBySlug(slug string) (*models.PostDisplay, error)
	GetFullBySlug(slug string) (*models.Post, error)
	Recent(n int) ([]*models.PostSummary, error)
	CountByMonth() ([]models.MonthCount, error)
	ListByMonth(year, month int) ([]*models.MonthPost, error)
}

// CommentRepository defines the interface for comment data access.
type CommentRepository interface {
	Create(comment *models.Comment) error
	ListBySlug(postSlug string) ([]*models.Comment, error)
	CountBySlug(postSlug string) (int, error)
}
