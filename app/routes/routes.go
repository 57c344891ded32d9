package routes

import (
	"inkwell/app/auth"
	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(postService *services.PostService, commentService *services.CommentService, authorizer auth.Authorizer) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.CORS)
	router.Use(middleware.ContentTypeJSON)

	postController := controllers.NewPostController(postService, authorizer)
	commentController := controllers.NewCommentController(commentService)

	// Routes also match OPTIONS so the CORS middleware sees preflight
	// requests; mux skips middleware when no route matches.
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("", postController.Welcome).Methods("GET", "OPTIONS")

	// Posts endpoints. /posts/new is registered ahead of /posts/{slug}
	// so "new" is never taken for a slug.
	api.HandleFunc("/posts", postController.Index).Methods("GET", "OPTIONS")
	api.HandleFunc("/posts/new", postController.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/postsByMonth", postController.Archive).Methods("GET", "OPTIONS")
	api.HandleFunc("/postsByMonth/{yearmonth}", postController.ArchiveMonth).Methods("GET", "OPTIONS")
	api.HandleFunc("/posts/{slug}", postController.Show).Methods("GET", "OPTIONS")
	api.HandleFunc("/posts/{slug}", postController.Edit).Methods("PATCH")

	// Comments endpoints
	api.HandleFunc("/posts/{slug}/comments", commentController.Index).Methods("GET", "OPTIONS")
	api.HandleFunc("/posts/{slug}/comments", commentController.Create).Methods("POST")
	api.HandleFunc("/posts/{slug}/commentCount", commentController.Count).Methods("GET", "OPTIONS")

	return router
}
