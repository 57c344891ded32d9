package models

import "time"

// Post represents a blog post. Every content field carries a rendered
// HTML variant and its markdown source.
type Post struct {
	ID        int        `json:"id" validate:"-"`
	Slug      string     `json:"slug" validate:"required,max=100,slug"`
	TitleHTML string     `json:"title_html" validate:"required"`
	TitleMD   string     `json:"title_md" validate:"required"`
	BlurbHTML string     `json:"blurb_html" validate:"required"`
	BlurbMD   string     `json:"blurb_md" validate:"required"`
	BodyHTML  string     `json:"body_html" validate:"required"`
	BodyMD    string     `json:"body_md" validate:"required"`
	CreatedAt time.Time  `json:"created_at"`
	EditedAt  *time.Time `json:"edited_at,omitempty"`
}

// PostSummary is the projection used by recent-post listings: identity
// plus teaser content, no body.
type PostSummary struct {
	ID        int        `json:"id"`
	Slug      string     `json:"slug"`
	TitleHTML string     `json:"title_html"`
	BlurbHTML string     `json:"blurb_html"`
	CreatedAt time.Time  `json:"created_at"`
	EditedAt  *time.Time `json:"edited_at,omitempty"`
}

// PostDisplay is the projection served to public reading views.
type PostDisplay struct {
	ID        int        `json:"id"`
	Slug      string     `json:"slug"`
	TitleHTML string     `json:"title_html"`
	BodyHTML  string     `json:"body_html"`
	CreatedAt time.Time  `json:"created_at"`
	EditedAt  *time.Time `json:"edited_at,omitempty"`
}

// MonthCount is the number of posts created in one calendar month.
type MonthCount struct {
	Year  int
	Month int
	Count int
}

// MonthPost is the listing row for a single archive month.
type MonthPost struct {
	CreatedAt time.Time `json:"created_at"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
}

// Comment represents a reader comment on a post. The post reference is
// by slug and is deliberately weak: a comment is never rejected because
// its post is unknown.
type Comment struct {
	ID          int       `json:"id" validate:"-"`
	PostSlug    string    `json:"post_slug" validate:"required"`
	DisplayName string    `json:"display_name" validate:"required"`
	Email       string    `json:"email" validate:"required"`
	Picture     string    `json:"picture" validate:"required"`
	Body        string    `json:"body" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
}
