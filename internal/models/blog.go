package models

import (
	"time"
)

// Blog represents a published blog post. Every post has exactly one owner
// and a mandatory image URL pointing at the external media host.
type Blog struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"size:100;not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
	Image   string `gorm:"not null" json:"image"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"foreignKey:UserID" json:"-"`
	// Owner is the partial user projection resolved on read; not persisted.
	Owner     *Owner    `gorm:"-" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResolveOwner fills the serialized owner projection from the loaded association.
func (b *Blog) ResolveOwner() {
	if b.User.ID != 0 {
		owner := b.User.AsOwner()
		b.Owner = &owner
	}
}

// BlogPage is one page of the public blog listing.
type BlogPage struct {
	Blogs []Blog `json:"blogs"`
	Total int64  `json:"total"`
	Pages int    `json:"pages"`
}
