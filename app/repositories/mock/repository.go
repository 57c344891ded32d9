package mock

import (
	"sort"
	"sync"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// PostRepository is an in-memory PostRepository for tests.
type PostRepository struct {
	posts  map[string]*models.Post
	order  []string
	nextID int
	mutex  sync.RWMutex
}

// CommentRepository is an in-memory CommentRepository for tests.
type CommentRepository struct {
	comments []*models.Comment
	nextID   int
	mutex    sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:  make(map[string]*models.Post),
		nextID: 1,
	}
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		nextID: 1,
	}
}

func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = make(map[string]*models.Post)
	m.order = nil
	m.nextID = 1
}

// PostRepository implementation

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.Slug]; exists {
		return repositories.ErrDuplicateSlug
	}
	post.ID = m.nextID
	m.nextID++
	stored := *post
	m.posts[post.Slug] = &stored
	m.order = append(m.order, post.Slug)
	return nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	existing, exists := m.posts[post.Slug]
	if !exists {
		return repositories.ErrNotFound
	}
	existing.TitleHTML = post.TitleHTML
	existing.TitleMD = post.TitleMD
	existing.BlurbHTML = post.BlurbHTML
	existing.BlurbMD = post.BlurbMD
	existing.BodyHTML = post.BodyHTML
	existing.BodyMD = post.BodyMD
	existing.EditedAt = post.EditedAt
	return nil
}

func (m *PostRepository) GetDisplayBySlug(slug string) (*models.PostDisplay, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[slug]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return &models.PostDisplay{
		ID:        post.ID,
		Slug:      post.Slug,
		TitleHTML: post.TitleHTML,
		BodyHTML:  post.BodyHTML,
		CreatedAt: post.CreatedAt,
		EditedAt:  post.EditedAt,
	}, nil
}

func (m *PostRepository) GetFullBySlug(slug string) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[slug]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *post
	return &copied, nil
}

func (m *PostRepository) Recent(n int) ([]*models.PostSummary, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	sorted := make([]*models.Post, 0, len(m.posts))
	for _, slug := range m.order {
		sorted = append(sorted, m.posts[slug])
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	var summaries []*models.PostSummary
	for _, post := range sorted {
		if len(summaries) >= n {
			break
		}
		summaries = append(summaries, &models.PostSummary{
			ID:        post.ID,
			Slug:      post.Slug,
			TitleHTML: post.TitleHTML,
			BlurbHTML: post.BlurbHTML,
			CreatedAt: post.CreatedAt,
			EditedAt:  post.EditedAt,
		})
	}
	return summaries, nil
}

func (m *PostRepository) CountByMonth() ([]models.MonthCount, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	buckets := make(map[[2]int]int)
	for _, post := range m.posts {
		y, mo, _ := post.CreatedAt.Date()
		buckets[[2]int{y, int(mo)}]++
	}

	var counts []models.MonthCount
	for key, count := range buckets {
		counts = append(counts, models.MonthCount{Year: key[0], Month: key[1], Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Year != counts[j].Year {
			return counts[i].Year > counts[j].Year
		}
		return counts[i].Month > counts[j].Month
	})
	return counts, nil
}

func (m *PostRepository) ListByMonth(year, month int) ([]*models.MonthPost, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.MonthPost
	for _, post := range m.posts {
		y, mo, _ := post.CreatedAt.Date()
		if y == year && int(mo) == month {
			posts = append(posts, &models.MonthPost{
				CreatedAt: post.CreatedAt,
				Title:     post.TitleHTML,
				Slug:      post.Slug,
			})
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.Before(posts[j].CreatedAt)
	})
	return posts, nil
}

// CommentRepository implementation

func (m *CommentRepository) Create(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment.ID = m.nextID
	m.nextID++
	stored := *comment
	m.comments = append(m.comments, &stored)
	return nil
}

func (m *CommentRepository) ListBySlug(postSlug string) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var comments []*models.Comment
	for _, comment := range m.comments {
		if comment.PostSlug == postSlug {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

func (m *CommentRepository) CountBySlug(postSlug string) (int, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	count := 0
	for _, comment := range m.comments {
		if comment.PostSlug == postSlug {
			count++
		}
	}
	return count, nil
}

var _ repositories.PostRepository = (*PostRepository)(nil)
var _ repositories.CommentRepository = (*CommentRepository)(nil)
