// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options controls how much data Run generates.
type Options struct {
	Posts              int
	MaxCommentsPerPost int
	Seed               int64
}

// Run populates the database with fake posts and comments.
func Run(db *gorm.DB, opts Options) error {
	if opts.Posts <= 0 {
		opts.Posts = 10
	}
	if opts.MaxCommentsPerPost <= 0 {
		opts.MaxCommentsPerPost = 5
	}

	gofakeit.Seed(opts.Seed)
	r := rand.New(rand.NewSource(opts.Seed))

	for i := 0; i < opts.Posts; i++ {
		post := &models.Post{
			Title:   gofakeit.Sentence(5),
			Content: gofakeit.Paragraph(1, 3, 5, "\n"),
		}
		if err := db.Create(post).Error; err != nil {
			return fmt.Errorf("seed post: %w", err)
		}

		for j := 0; j < r.Intn(opts.MaxCommentsPerPost+1); j++ {
			comment := &models.Comment{
				PostID:  post.ID,
				Content: gofakeit.Sentence(12),
			}
			if err := db.Create(comment).Error; err != nil {
				return fmt.Errorf("seed comment: %w", err)
			}
		}
	}

	return nil
}
