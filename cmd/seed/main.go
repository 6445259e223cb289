// Command seed populates the database with fake posts and comments.
package main

import (
	"flag"
	"log"
	"time"

	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	posts := flag.Int("posts", 10, "number of posts to create")
	maxComments := flag.Int("max-comments", 5, "maximum comments per post")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{
		Posts:              *posts,
		MaxCommentsPerPost: *maxComments,
		Seed:               time.Now().UnixNano(),
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d posts", *posts)
}
