package handlers

import (
	"net/http"

	"neighbornotes/internal/identity"
	"neighbornotes/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	identity identity.Verifier
}

func NewUserHandler() *UserHandler {
	return &UserHandler{identity: identity.Trusted{}}
}

// Profile - GET /users?email=...
func (h *UserHandler) Profile(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		JSONError(c, http.StatusBadRequest, "Email is required", nil)
		return
	}

	user, postsCount, err := services.GetUserByEmail(email)
	if err != nil {
		if err == services.ErrUserNotFound {
			JSONError(c, http.StatusNotFound, "User not found", nil)
			return
		}
		JSONError(c, http.StatusInternalServerError, "Failed to fetch user profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                  user.ID,
		"email":               user.Email,
		"display_name":        user.DisplayName,
		"profile_picture_url": user.ProfilePictureURL,
		"bio":                 user.Bio,
		"created_at":          user.CreatedAt,
		"posts_count":         postsCount,
	})
}

type updateProfileRequest struct {
	Email             string  `json:"email"`
	DisplayName       *string `json:"display_name"`
	Bio               *string `json:"bio"`
	ProfilePictureURL *string `json:"profile_picture_url"`
}

// Update - PUT /users
// Full replace: the three editable fields are overwritten from the request,
// and anything omitted is cleared. Callers must always send complete
// profile state.
func (h *UserHandler) Update(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	email, err := h.identity.Verify(req.Email)
	if err != nil {
		JSONError(c, http.StatusUnauthorized, "Email is required", err)
		return
	}

	if err := services.UpdateUserProfile(email, req.DisplayName, req.Bio, req.ProfilePictureURL); err != nil {
		if err == services.ErrUserNotFound {
			JSONError(c, http.StatusNotFound, "User not found", nil)
			return
		}
		JSONError(c, http.StatusInternalServerError, "Failed to update profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}
