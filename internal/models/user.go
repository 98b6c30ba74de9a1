package models

import (
	"time"
)

// User rows are created lazily: the first post from an unseen email inserts
// one. No credential is stored; the email is trusted as supplied (see
// internal/identity).
type User struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Email             string    `gorm:"uniqueIndex;not null" json:"email"`
	DisplayName       *string   `json:"display_name"`
	ProfilePictureURL *string   `json:"profile_picture_url"`
	Bio               *string   `gorm:"type:text" json:"bio"`
	CreatedAt         time.Time `json:"created_at"`
}
