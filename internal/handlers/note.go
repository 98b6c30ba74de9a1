package handlers

import (
	"net/http"

	"neighbornotes/internal/db"
	"neighbornotes/internal/models"

	"github.com/gin-gonic/gin"
)

// NoteHandler serves the legacy anonymous notes board. It predates user
// accounts: no identity accompanies these requests and the author is a
// free-text name.
type NoteHandler struct{}

func NewNoteHandler() *NoteHandler {
	return &NoteHandler{}
}

// List - GET /notes
func (h *NoteHandler) List(c *gin.Context) {
	var notes []models.Note
	if err := db.DB.Order("created_at DESC, id DESC").Find(&notes).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to fetch notes", err)
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}
	c.JSON(http.StatusOK, notes)
}

type createNoteRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Category   string `json:"category"`
	Location   string `json:"location"`
	AuthorName string `json:"author_name"`
}

// Create - POST /notes
func (h *NoteHandler) Create(c *gin.Context) {
	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Title == "" || req.Content == "" {
		JSONError(c, http.StatusBadRequest, "Title and Content are required", nil)
		return
	}

	note := models.Note{
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		Location:   req.Location,
		AuthorName: req.AuthorName,
	}
	if note.Category == "" {
		note.Category = "General"
	}
	if note.AuthorName == "" {
		note.AuthorName = "Neighbor"
	}

	if err := db.DB.Create(&note).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to create note", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      note.ID,
		"message": "Note created successfully",
	})
}
