package services

import (
	"errors"

	"neighbornotes/internal/db"
	"neighbornotes/internal/models"
	"neighbornotes/internal/utils"

	"gorm.io/gorm"
)

// GetUserByEmail resolves a user for profile display, including the derived
// posts_count.
func GetUserByEmail(email string) (*models.User, int64, error) {
	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrUserNotFound
		}
		return nil, 0, err
	}

	var postsCount int64
	if err := db.DB.Model(&models.Post{}).Where("author_id = ?", user.ID).Count(&postsCount).Error; err != nil {
		return nil, 0, err
	}
	return &user, postsCount, nil
}

// GetOrCreateUser resolves an email to a user, inserting one on first
// reference with the email's local part as display name. Lookup and insert
// are two independent statements; concurrent first-time callers race, and
// the unique index on email decides the loser.
func GetOrCreateUser(email string) (*models.User, error) {
	var user models.User
	err := db.DB.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	name := utils.EmailLocalPart(email)
	user = models.User{Email: email, DisplayName: &name}
	if err := db.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	utils.Log().Infow("created user on first post", "user_id", user.ID, "email", email)
	return &user, nil
}

// UpdateUserProfile overwrites the three editable fields unconditionally.
// Absent or empty fields are written as NULL: callers must resend the full
// profile or lose what they omit. Replace-semantics, not patch.
func UpdateUserProfile(email string, displayName, bio, pictureURL *string) error {
	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return db.DB.Model(&user).Updates(map[string]interface{}{
		"display_name":        nullIfEmpty(displayName),
		"bio":                 nullIfEmpty(bio),
		"profile_picture_url": nullIfEmpty(pictureURL),
	}).Error
}

func nullIfEmpty(s *string) interface{} {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
