package handlers

import (
	"net/http"

	"neighbornotes/internal/db"
	"neighbornotes/internal/models"
	"neighbornotes/internal/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

// List - GET /comments?postId=N
// Thread order is oldest first; clients render in the order received.
func (h *CommentHandler) List(c *gin.Context) {
	postID := c.Query("postId")
	if postID == "" {
		JSONError(c, http.StatusBadRequest, "Post ID is required", nil)
		return
	}

	var comments []models.CommentWithAuthor
	err := db.DB.Table("comments").
		Select("comments.*, users.email, users.display_name, users.profile_picture_url").
		Joins("JOIN users ON users.id = comments.author_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at ASC, comments.id ASC").
		Scan(&comments).Error
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to fetch comments", err)
		return
	}
	if comments == nil {
		comments = []models.CommentWithAuthor{}
	}
	c.JSON(http.StatusOK, comments)
}

type createCommentRequest struct {
	PostID      uint   `json:"post_id"`
	Content     string `json:"content"`
	AuthorEmail string `json:"author_email"`
}

// Create - POST /comments
// Unlike post creation, an unknown author email is a 404: commenting does
// not create users.
func (h *CommentHandler) Create(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.PostID == 0 || req.Content == "" || req.AuthorEmail == "" {
		JSONError(c, http.StatusBadRequest, "Post ID, content, and author email are required", nil)
		return
	}

	author, _, err := services.GetUserByEmail(req.AuthorEmail)
	if err != nil {
		if err == services.ErrUserNotFound {
			JSONError(c, http.StatusNotFound, "User not found", nil)
			return
		}
		JSONError(c, http.StatusInternalServerError, "Failed to add comment", err)
		return
	}

	comment := models.Comment{
		PostID:   req.PostID,
		AuthorID: author.ID,
		Content:  req.Content,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to add comment", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      comment.ID,
		"message": "Comment added successfully",
	})
}
