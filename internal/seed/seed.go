// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"time"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plaintext password every seeded user gets.
const TestPassword = "password123"

// Options configuration for the seeder.
type Options struct {
	NumUsers    int
	NumBlogs    int
	ShouldClean bool
}

// Seed populates the database with fake users and blog posts.
func Seed(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())

	log.Printf("Seeding %d users and %d blogs...", opts.NumUsers, opts.NumBlogs)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d users created", len(users))

	blogs, err := createBlogs(db, users, opts.NumBlogs)
	if err != nil {
		return fmt.Errorf("failed to create blogs: %w", err)
	}
	log.Printf("%d blogs created", len(blogs))

	return nil
}

func clearData(db *gorm.DB) error {
	// Blogs reference users, so they go first.
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Blog{}).Error; err != nil {
		return err
	}
	return db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.User{}).Error
}

func createUsers(db *gorm.DB, count int) ([]models.User, error) {
	// Hash once; bcrypt at default cost is too slow to repeat per user.
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		user := models.User{
			Name:     gofakeit.Name(),
			Email:    fmt.Sprintf("%d.%s", i, gofakeit.Email()),
			Password: string(hash),
			Bio:      gofakeit.Sentence(10),
			Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createBlogs(db *gorm.DB, users []models.User, count int) ([]models.Blog, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to attach blogs to")
	}

	blogs := make([]models.Blog, 0, count)
	for i := 0; i < count; i++ {
		owner := users[gofakeit.Number(0, len(users)-1)]
		blog := models.Blog{
			Title:   gofakeit.Sentence(5),
			Content: gofakeit.Paragraph(2, 4, 8, "\n\n"),
			Image:   fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
			UserID:  owner.ID,
		}
		if err := db.Create(&blog).Error; err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}
	return blogs, nil
}
