package repositories

import (
	"database/sql"
	"errors"
	"time"

	"inkwell/app/models"
)

// SQLitePostRepository implements PostRepository over the relational
// post table.
type SQLitePostRepository struct {
	db *DB
}

// NewSQLitePostRepository creates a new SQLitePostRepository.
func NewSQLitePostRepository(db *DB) *SQLitePostRepository {
	return &SQLitePostRepository{db: db}
}

// Create inserts a new post. Slug uniqueness is enforced by the unique
// index; a violation surfaces as ErrDuplicateSlug.
func (r *SQLitePostRepository) Create(post *models.Post) error {
	res, err := r.db.conn.Exec(`
INSERT INTO post (slug, title_html, title_md, blurb_html, blurb_md, body_html, body_md, created_at, edited_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, NULL)
`, post.Slug, post.TitleHTML, post.TitleMD, post.BlurbHTML, post.BlurbMD, post.BodyHTML, post.BodyMD, post.CreatedAt.Unix())
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSlug
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	post.ID = int(id)
	return nil
}

// Update overwrites the content fields of the post identified by slug
// and stamps edited_at. Slug and created_at are never touched.
func (r *SQLitePostRepository) Update(post *models.Post) error {
	res, err := r.db.conn.Exec(`
UPDATE post
SET title_html = ?, title_md = ?, blurb_html = ?, blurb_md = ?, body_html = ?, body_md = ?, edited_at = ?
WHERE slug = ?
`, post.TitleHTML, post.TitleMD, post.BlurbHTML, post.BlurbMD, post.BodyHTML, post.BodyMD, nullableTime(post.EditedAt), post.Slug)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// GetDisplayBySlug returns the public reading projection of a post.
func (r *SQLitePostRepository) GetDisplayBySlug(slug string) (*models.PostDisplay, error) {
	row := r.db.conn.QueryRow(`
SELECT id, slug, title_html, body_html, created_at, edited_at
FROM post
WHERE slug = ?
LIMIT 1
`, slug)

	var p models.PostDisplay
	var created int64
	var edited sql.NullInt64
	if err := row.Scan(&p.ID, &p.Slug, &p.TitleHTML, &p.BodyHTML, &created, &edited); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p.CreatedAt = time.Unix(created, 0)
	p.EditedAt = timeFromNullable(edited)
	return &p, nil
}

// GetFullBySlug returns the complete post record, markdown sources
// included. The write path reads this projection before an update.
func (r *SQLitePostRepository) GetFullBySlug(slug string) (*models.Post, error) {
	row := r.db.conn.QueryRow(`
SELECT id, slug, title_html, title_md, blurb_html, blurb_md, body_html, body_md, created_at, edited_at
FROM post
WHERE slug = ?
LIMIT 1
`, slug)

	var p models.Post
	var created int64
	var edited sql.NullInt64
	if err := row.Scan(&p.ID, &p.Slug, &p.TitleHTML, &p.TitleMD, &p.BlurbHTML, &p.BlurbMD, &p.BodyHTML, &p.BodyMD, &created, &edited); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	p.CreatedAt = time.Unix(created, 0)
	p.EditedAt = timeFromNullable(edited)
	return &p, nil
}

// Recent returns the n most recently created post summaries.
func (r *SQLitePostRepository) Recent(n int) ([]*models.PostSummary, error) {
	rows, err := r.db.conn.Query(`
SELECT id, slug, title_html, blurb_html, created_at, edited_at
FROM post
ORDER BY created_at DESC
LIMIT ?
`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.PostSummary
	for rows.Next() {
		var p models.PostSummary
		var created int64
		var edited sql.NullInt64
		if err := rows.Scan(&p.ID, &p.Slug, &p.TitleHTML, &p.BlurbHTML, &created, &edited); err != nil {
			return nil, err
		}
		p.CreatedAt = time.Unix(created, 0)
		p.EditedAt = timeFromNullable(edited)
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}

// CountByMonth returns a row per calendar month with at least one post.
// Bucketing converts to local time before truncating, so local midnight
// on the first of a month counts toward that month.
func (r *SQLitePostRepository) CountByMonth() ([]models.MonthCount, error) {
	rows, err := r.db.conn.Query(`
SELECT CAST(strftime('%Y', created_at, 'unixepoch', 'localtime') AS INTEGER) AS year,
	CAST(strftime('%m', created_at, 'unixepoch', 'localtime') AS INTEGER) AS month,
	COUNT(id)
FROM post
GROUP BY year, month
ORDER BY year DESC, month DESC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.MonthCount
	for rows.Next() {
		var mc models.MonthCount
		if err := rows.Scan(&mc.Year, &mc.Month, &mc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, mc)
	}
	return counts, rows.Err()
}

// ListByMonth returns title rows for every post created in the given
// year and month, oldest first. Months outside 1..12 simply match
// nothing.
func (r *SQLitePostRepository) ListByMonth(year, month int) ([]*models.MonthPost, error) {
	rows, err := r.db.conn.Query(`
SELECT created_at, title_html, slug
FROM post
WHERE CAST(strftime('%Y', created_at, 'unixepoch', 'localtime') AS INTEGER) = ?
	AND CAST(strftime('%m', created_at, 'unixepoch', 'localtime') AS INTEGER) = ?
ORDER BY created_at ASC
`, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.MonthPost
	for rows.Next() {
		var p models.MonthPost
		var created int64
		if err := rows.Scan(&created, &p.Title, &p.Slug); err != nil {
			return nil, err
		}
		p.CreatedAt = time.Unix(created, 0)
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Unix()
}

func timeFromNullable(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.Unix(v.Int64, 0)
	return &t
}
