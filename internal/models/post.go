package models

import (
	"time"
)

type Post struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Title    string  `gorm:"not null" json:"title"`
	Content  string  `gorm:"type:text;not null" json:"content"`
	Category string  `gorm:"default:'General'" json:"category"`
	Location string  `json:"location"`
	ImageURL *string `json:"image_url"`
	AuthorID uint    `gorm:"not null;index" json:"author_id"`
	Author   User    `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	// Posts are immutable after creation; no UpdatedAt.
	CreatedAt time.Time `json:"created_at"`
}

// PostWithAuthor is the /posts list row: post columns plus the author's
// public profile fields flattened in, matching the client contract.
type PostWithAuthor struct {
	ID                uint      `json:"id"`
	Title             string    `json:"title"`
	Content           string    `json:"content"`
	Category          string    `json:"category"`
	Location          string    `json:"location"`
	ImageURL          *string   `json:"image_url"`
	AuthorID          uint      `json:"author_id"`
	CreatedAt         time.Time `json:"created_at"`
	Email             string    `json:"email"`
	DisplayName       *string   `json:"display_name"`
	ProfilePictureURL *string   `json:"profile_picture_url"`
}
