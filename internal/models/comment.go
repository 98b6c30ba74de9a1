package models

import (
	"time"
)

type Comment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	PostID   uint   `gorm:"not null;index" json:"post_id"`
	Post     Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Content  string `gorm:"type:text;not null" json:"content"`
	// Threads render oldest first; created_at ascending is part of the
	// contract, not cosmetics.
	CreatedAt time.Time `json:"created_at"`
}

// CommentWithAuthor is the /comments list row, author fields flattened.
type CommentWithAuthor struct {
	ID                uint      `json:"id"`
	PostID            uint      `json:"post_id"`
	AuthorID          uint      `json:"author_id"`
	Content           string    `json:"content"`
	CreatedAt         time.Time `json:"created_at"`
	Email             string    `json:"email"`
	DisplayName       *string   `json:"display_name"`
	ProfilePictureURL *string   `json:"profile_picture_url"`
}
