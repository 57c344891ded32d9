package controllers

import (
	"encoding/json"
	"net/http"

	"inkwell/app/models"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for post comments.
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController.
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

type commentBody struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Picture     string `json:"picture"`
	Body        string `json:"body"`
}

// Index handles listing all comments on a post, insertion order.
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]
	if !IsValidSlug(slug) {
		sendError(w, MsgInvalidSlug)
		return
	}

	comments, err := cc.commentService.CommentsForPost(slug)
	if err != nil {
		sendError(w, "failed to fetch comments: "+err.Error())
		return
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	sendJSON(w, comments)
}

// Count handles the comment tally for a post.
func (cc *CommentController) Count(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]
	if !IsValidSlug(slug) {
		sendError(w, MsgInvalidSlug)
		return
	}

	count, err := cc.commentService.CommentCount(slug)
	if err != nil {
		sendError(w, "failed to count comments: "+err.Error())
		return
	}
	sendJSON(w, map[string]int{"count": count})
}

// Create handles posting a comment. No credential is required; only
// field presence is checked.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]
	if !IsValidSlug(slug) {
		sendError(w, MsgInvalidSlug)
		return
	}

	var body commentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(w, "invalid JSON: "+err.Error())
		return
	}

	comment := &models.Comment{
		PostSlug:    slug,
		DisplayName: body.DisplayName,
		Email:       body.Email,
		Picture:     body.Picture,
		Body:        body.Body,
	}
	if err := cc.commentService.CreateComment(comment); err != nil {
		sendError(w, err.Error())
		return
	}

	sendMessage(w, "comment posted")
}
