package services

import (
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// DefaultRecentPosts is how many summaries the recent listing returns
// when the caller does not ask for a specific count.
const DefaultRecentPosts = 5

// PostService handles business logic for blog posts.
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost validates and stores a new post. The slug becomes the
// post's permanent identity; duplicates surface as
// repositories.ErrDuplicateSlug straight from the unique index, so two
// racing creations can never both land.
func (s *PostService) CreatePost(post *models.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}
	post.BeforeCreate()
	post.EditedAt = nil
	return s.postRepo.Create(post)
}

// UpdatePost overwrites the content fields of the post identified by
// slug and stamps EditedAt. Slug and CreatedAt are immutable; a missing
// slug surfaces as repositories.ErrNotFound.
func (s *PostService) UpdatePost(slug string, post *models.Post) error {
	post.Slug = slug
	if err := post.Validate(); err != nil {
		return err
	}
	now := time.Now()
	post.EditedAt = &now
	return s.postRepo.Update(post)
}

// GetDisplay returns the reading projection for a slug.
func (s *PostService) GetDisplay(slug string) (*models.PostDisplay, error) {
	return s.postRepo.GetDisplayBySlug(slug)
}

// GetFull returns the complete record for a slug, markdown included.
func (s *PostService) GetFull(slug string) (*models.Post, error) {
	return s.postRepo.GetFullBySlug(slug)
}

// RecentPosts returns the n most recent post summaries, newest first.
func (s *PostService) RecentPosts(n int) ([]*models.PostSummary, error) {
	if n < 1 {
		n = DefaultRecentPosts
	}
	return s.postRepo.Recent(n)
}

// ArchiveCounts returns per-month post counts as a nested
// year -> month -> count mapping covering every month with at least one
// post.
func (s *PostService) ArchiveCounts() (map[int]map[int]int, error) {
	counts, err := s.postRepo.CountByMonth()
	if err != nil {
		return nil, err
	}
	archive := make(map[int]map[int]int)
	for _, mc := range counts {
		if _, ok := archive[mc.Year]; !ok {
			archive[mc.Year] = make(map[int]int)
		}
		archive[mc.Year][mc.Month] = mc.Count
	}
	return archive, nil
}

// PostsInMonth lists the posts created in the given year and month,
// oldest first. Out-of-range months yield an empty list.
func (s *PostService) PostsInMonth(year, month int) ([]*models.MonthPost, error) {
	return s.postRepo.ListByMonth(year, month)
}
