package handlers

import (
	"net/http"

	"neighbornotes/internal/db"
	"neighbornotes/internal/identity"
	"neighbornotes/internal/models"
	"neighbornotes/internal/services"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	identity identity.Verifier
}

func NewPostHandler() *PostHandler {
	return &PostHandler{identity: identity.Trusted{}}
}

// List - GET /posts
// Every post joined with its author's public fields, newest first. No
// pagination: the board is expected to stay small.
func (h *PostHandler) List(c *gin.Context) {
	var posts []models.PostWithAuthor
	err := db.DB.Table("posts").
		Select("posts.*, users.email, users.display_name, users.profile_picture_url").
		Joins("JOIN users ON users.id = posts.author_id").
		Order("posts.created_at DESC, posts.id DESC").
		Scan(&posts).Error
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to fetch posts. Please try again later.", err)
		return
	}
	if posts == nil {
		posts = []models.PostWithAuthor{}
	}
	c.JSON(http.StatusOK, posts)
}

type createPostRequest struct {
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	Category    string  `json:"category"`
	Location    string  `json:"location"`
	AuthorEmail string  `json:"author_email"`
	ImageURL    *string `json:"image_url"`
}

// Create - POST /posts
// Resolves the author by email, creating the user on first sight, then
// inserts the post. The two writes are independent statements: a failed
// insert can leave a freshly created user behind.
func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Title == "" || req.Content == "" {
		JSONError(c, http.StatusBadRequest, "Title and content are required", nil)
		return
	}

	email, err := h.identity.Verify(req.AuthorEmail)
	if err != nil {
		JSONError(c, http.StatusUnauthorized, "Authentication required", err)
		return
	}

	author, err := services.GetOrCreateUser(email)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to create post. Please try again.", err)
		return
	}

	category := req.Category
	if category == "" {
		category = "General"
	}

	post := models.Post{
		Title:    req.Title,
		Content:  req.Content,
		Category: category,
		Location: req.Location,
		ImageURL: req.ImageURL,
		AuthorID: author.ID,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to create post. Please try again.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      post.ID,
		"message": "Post created successfully",
	})
}
