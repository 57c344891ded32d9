package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"inkwell/app/auth"
	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts.
type PostController struct {
	postService *services.PostService
	authorizer  auth.Authorizer
}

// NewPostController creates a new PostController.
func NewPostController(postService *services.PostService, authorizer auth.Authorizer) *PostController {
	return &PostController{postService: postService, authorizer: authorizer}
}

// postBody is the JSON shape accepted by the create and update
// endpoints.
type postBody struct {
	Slug      string `json:"slug"`
	TitleHTML string `json:"title_html"`
	TitleMD   string `json:"title_md"`
	BlurbHTML string `json:"blurb_html"`
	BlurbMD   string `json:"blurb_md"`
	BodyHTML  string `json:"body_html"`
	BodyMD    string `json:"body_md"`
}

func (b postBody) toModel() *models.Post {
	return &models.Post{
		Slug:      b.Slug,
		TitleHTML: b.TitleHTML,
		TitleMD:   b.TitleMD,
		BlurbHTML: b.BlurbHTML,
		BlurbMD:   b.BlurbMD,
		BodyHTML:  b.BodyHTML,
		BodyMD:    b.BodyMD,
	}
}

// Welcome greets API consumers at the root of the prefix.
func (pc *PostController) Welcome(w http.ResponseWriter, r *http.Request) {
	sendMessage(w, "Welcome to the API")
}

// Index handles listing recent post summaries.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.RecentPosts(0)
	if err != nil {
		sendError(w, "failed to fetch posts: "+err.Error())
		return
	}
	if posts == nil {
		posts = []*models.PostSummary{}
	}
	sendJSON(w, posts)
}

// Archive handles the month-bucketed post counts, rendered as a nested
// {year: {month: count}} object.
func (pc *PostController) Archive(w http.ResponseWriter, r *http.Request) {
	archive, err := pc.postService.ArchiveCounts()
	if err != nil {
		sendError(w, "failed to fetch archive: "+err.Error())
		return
	}
	sendJSON(w, archive)
}

// ArchiveMonth handles listing the posts of one archive month.
func (pc *PostController) ArchiveMonth(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, month, ok := ParseYearMonth(vars["yearmonth"])
	if !ok {
		sendError(w, MsgInvalidYearMonth)
		return
	}

	posts, err := pc.postService.PostsInMonth(year, month)
	if err != nil {
		sendError(w, "failed to fetch archive: "+err.Error())
		return
	}
	if posts == nil {
		posts = []*models.MonthPost{}
	}
	sendJSON(w, posts)
}

// Show handles displaying a single post. An unknown slug is not an
// error: the response is an empty object.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]
	if !IsValidSlug(slug) {
		sendError(w, MsgInvalidSlug)
		return
	}

	post, err := pc.postService.GetDisplay(slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendJSON(w, struct{}{})
			return
		}
		sendError(w, "failed to fetch post: "+err.Error())
		return
	}
	sendJSON(w, post)
}

// Create handles creating a new post. Admin only.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	if !pc.requireAdmin(w, r) {
		return
	}

	var body postBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(w, "invalid JSON: "+err.Error())
		return
	}

	post := body.toModel()
	if err := pc.postService.CreatePost(post); err != nil {
		if errors.Is(err, repositories.ErrDuplicateSlug) {
			sendError(w, fmt.Sprintf("post with slug '%s' already exists", post.Slug))
			return
		}
		sendError(w, err.Error())
		return
	}

	sendMessage(w, "post created")
}

// Edit handles updating the content of an existing post. Admin only;
// the slug in the path is the identity and is never rewritten.
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]
	if !IsValidSlug(slug) {
		sendError(w, MsgInvalidSlug)
		return
	}

	if !pc.requireAdmin(w, r) {
		return
	}

	var body postBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(w, "invalid JSON: "+err.Error())
		return
	}

	post := body.toModel()
	if err := pc.postService.UpdatePost(slug, post); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, fmt.Sprintf("no post with slug '%s' found", slug))
			return
		}
		sendError(w, err.Error())
		return
	}

	sendMessage(w, "post updated")
}

// requireAdmin consults the authorization gate and renders the refusal
// itself. It reports whether the request may proceed.
func (pc *PostController) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	decision := pc.authorizer.Authorize(bearerCredential(r))
	if !decision.Valid {
		sendError(w, "invalid credential")
		return false
	}
	if !decision.Admin {
		sendError(w, "admin privileges required")
		return false
	}
	return true
}
