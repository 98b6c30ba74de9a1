package models

import (
	"time"
)

// Note is the legacy anonymous bulletin entry that predates user accounts.
// It carries a free-text author name instead of an author_id.
type Note struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Category   string    `gorm:"default:'General'" json:"category"`
	Location   string    `json:"location"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}
