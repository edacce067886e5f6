// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered author on the platform.
// Password carries the bcrypt hash and is never serialized outward.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Avatar    string    `json:"avatar"`
	Bio       string    `gorm:"size:500" json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Blogs     []Blog    `gorm:"foreignKey:UserID" json:"blogs,omitempty"`
}

// Owner is the partial user projection attached to blog reads.
type Owner struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// AsOwner returns the projection of the user exposed on blog posts.
func (u *User) AsOwner() Owner {
	return Owner{ID: u.ID, Name: u.Name, Email: u.Email, Avatar: u.Avatar}
}
