package repositories

import (
	"time"

	"inkwell/app/models"
)

// SQLiteCommentRepository implements CommentRepository over the
// relational comment table.
type SQLiteCommentRepository struct {
	db *DB
}

// NewSQLiteCommentRepository creates a new SQLiteCommentRepository.
func NewSQLiteCommentRepository(db *DB) *SQLiteCommentRepository {
	return &SQLiteCommentRepository{db: db}
}

// Create inserts a comment. No existence check is made against the
// referenced post; the slug reference is weak.
func (r *SQLiteCommentRepository) Create(comment *models.Comment) error {
	res, err := r.db.conn.Exec(`
INSERT INTO comment (post_slug, display_name, email, picture, body, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`, comment.PostSlug, comment.DisplayName, comment.Email, comment.Picture, comment.Body, comment.CreatedAt.Unix())
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	comment.ID = int(id)
	return nil
}

// ListBySlug returns every comment for the post, in insertion order.
func (r *SQLiteCommentRepository) ListBySlug(postSlug string) ([]*models.Comment, error) {
	rows, err := r.db.conn.Query(`
SELECT id, post_slug, display_name, email, picture, body, created_at
FROM comment
WHERE post_slug = ?
ORDER BY id ASC
`, postSlug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var c models.Comment
		var created int64
		if err := rows.Scan(&c.ID, &c.PostSlug, &c.DisplayName, &c.Email, &c.Picture, &c.Body, &created); err != nil {
			return nil, err
		}
		c.CreatedAt = time.Unix(created, 0)
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}

// CountBySlug returns the number of comments for the post.
func (r *SQLiteCommentRepository) CountBySlug(postSlug string) (int, error) {
	var count int
	err := r.db.conn.QueryRow(`
SELECT COUNT(*) FROM comment WHERE post_slug = ?
`, postSlug).Scan(&count)
	return count, err
}
