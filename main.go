package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"inkwell/app/auth"
	"inkwell/app/config"
	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/routes"
	"inkwell/app/services"

	"golang.org/x/crypto/bcrypt"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("inkwell version %s\n", cliVersion)
	case "hash":
		hashCredential()
	case "seed":
		seed()
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: inkwell <command> [options]
Commands:
  help            Display this help message.
  version         Show version information.
  serve           Run the blog API server.
  seed            Populate the database with sample posts and comments.
  hash <secret>   Print the bcrypt hash of an admin credential, for INKWELL_ADMIN_HASH.
`
	fmt.Println(helpText)
}

// serve wires the repositories, services, and authorization gate from
// configuration and runs the HTTP server.
func serve() {
	cfg := config.Load()

	db, err := repositories.Open(cfg.DBPath, cfg.MaxConns)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	postService := services.NewPostService(repositories.NewSQLitePostRepository(db))
	commentService := services.NewCommentService(repositories.NewSQLiteCommentRepository(db))
	authorizer := auth.NewSecretAuthorizer(cfg.AdminHash, cfg.AdminName)

	router := routes.SetupRoutes(postService, commentService, authorizer)

	log.Printf("Starting blog API on %s (db %s)", cfg.Addr, cfg.DBPath)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// hashCredential prints the bcrypt hash of the given secret.
func hashCredential() {
	if len(os.Args) < 3 {
		fmt.Println("Error: a secret is required for the hash command")
		os.Exit(1)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[2]), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash credential: %v", err)
	}
	fmt.Println(string(hash))
}

// seed inserts a handful of sample posts and comments through the same
// service path the API uses.
func seed() {
	cfg := config.Load()

	db, err := repositories.Open(cfg.DBPath, cfg.MaxConns)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	postService := services.NewPostService(repositories.NewSQLitePostRepository(db))
	commentService := services.NewCommentService(repositories.NewSQLiteCommentRepository(db))

	now := time.Now()
	for i := 1; i <= 4; i++ {
		post := &models.Post{
			Slug:      fmt.Sprintf("post-%d", i),
			TitleHTML: fmt.Sprintf("Title for post %d", i),
			TitleMD:   fmt.Sprintf("Title for post %d", i),
			BlurbHTML: fmt.Sprintf("This is the blurb for post %d", i),
			BlurbMD:   fmt.Sprintf("This is the blurb for post %d", i),
			BodyHTML:  fmt.Sprintf("This is the body for post %d", i),
			BodyMD:    fmt.Sprintf("This is the body for post %d", i),
			CreatedAt: now.AddDate(0, 0, -i),
		}
		if err := postService.CreatePost(post); err != nil {
			log.Printf("Skipping %s: %v", post.Slug, err)
			continue
		}
		comment := &models.Comment{
			PostSlug:    post.Slug,
			DisplayName: "Sample Reader",
			Email:       "reader@example.com",
			Picture:     "https://example.com/avatar.png",
			Body:        fmt.Sprintf("First comment on post %d", i),
		}
		if err := commentService.CreateComment(comment); err != nil {
			log.Printf("Failed to comment on %s: %v", post.Slug, err)
		}
	}
	log.Println("Seed complete")
}
