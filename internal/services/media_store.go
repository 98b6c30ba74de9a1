package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"neighbornotes/internal/db"
	"neighbornotes/internal/models"
	"neighbornotes/internal/utils"
)

// MaxUploadSize caps uploads at 5 MiB for local storage.
const MaxUploadSize = 5 * 1024 * 1024

// AllowedMediaTypes lists the accepted declared content types. The bytes
// themselves are not sniffed.
var AllowedMediaTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadDir returns the directory uploads are written to.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./public/uploads"
}

// SaveMedia persists one uploaded object for the given owner and records
// its metadata. The bytes are written to disk before the row is inserted:
// a failed write leaves no metadata, but a crash mid-write can leave a
// partial file behind (no cleanup is attempted).
//
// The stored name is {user_id}_{unix_ms}{ext} — unique in practice for one
// user, not a content hash.
func SaveMedia(email, originalName, contentType string, size int64, data []byte) (*models.MediaUpload, error) {
	user, _, err := GetUserByEmail(email)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		switch contentType {
		case "image/jpeg":
			ext = ".jpg"
		case "image/png":
			ext = ".png"
		case "image/gif":
			ext = ".gif"
		case "image/webp":
			ext = ".webp"
		default:
			ext = ".jpg"
		}
	}

	fileName := fmt.Sprintf("%d_%d%s", user.ID, time.Now().UnixMilli(), ext)
	dir := UploadDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), data, 0644); err != nil {
		return nil, fmt.Errorf("write file: %w", err)
	}

	upload := models.MediaUpload{
		UserID:   user.ID,
		FileName: originalName,
		FileURL:  "/uploads/" + fileName,
		FileType: contentType,
		FileSize: size,
	}
	if err := db.DB.Create(&upload).Error; err != nil {
		return nil, err
	}
	utils.Log().Infow("stored upload", "user_id", user.ID, "file", fileName, "size", size)
	return &upload, nil
}
