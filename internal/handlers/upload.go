package handlers

import (
	"io"
	"net/http"

	"neighbornotes/internal/services"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct{}

func NewUploadHandler() *UploadHandler {
	return &UploadHandler{}
}

// Upload - POST /upload (multipart: file, userEmail)
// Validates the declared size and content type, then hands the bytes to the
// media store. Retrieval is not served here; the /uploads static mount does
// that.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		JSONError(c, http.StatusBadRequest, "File and user email are required", err)
		return
	}
	defer file.Close()

	userEmail := c.PostForm("userEmail")
	if userEmail == "" {
		JSONError(c, http.StatusBadRequest, "File and user email are required", nil)
		return
	}

	if header.Size > services.MaxUploadSize {
		JSONError(c, http.StatusBadRequest, "File size must be less than 5MB", nil)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !services.AllowedMediaTypes[contentType] {
		JSONError(c, http.StatusBadRequest, "File type not allowed. Only JPEG, PNG, GIF, and WebP images are supported.", nil)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to upload file", err)
		return
	}

	upload, err := services.SaveMedia(userEmail, header.Filename, contentType, header.Size, data)
	if err != nil {
		if err == services.ErrUserNotFound {
			JSONError(c, http.StatusNotFound, "User not found", nil)
			return
		}
		JSONError(c, http.StatusInternalServerError, "Failed to upload file", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      upload.ID,
		"url":     upload.FileURL,
		"message": "File uploaded successfully",
	})
}
