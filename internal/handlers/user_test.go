package handlers_test

import (
	"net/http"
	"testing"

	"neighbornotes/internal/db"
	"neighbornotes/internal/models"
)

type profileResponse struct {
	ID                uint    `json:"id"`
	Email             string  `json:"email"`
	DisplayName       *string `json:"display_name"`
	ProfilePictureURL *string `json:"profile_picture_url"`
	Bio               *string `json:"bio"`
	PostsCount        int64   `json:"posts_count"`
}

func TestProfileLookup(t *testing.T) {
	r := newTestRouter(t)
	seedPost(t, r, "a@x.com")
	seedPost(t, r, "a@x.com")

	w := doJSON(t, r, http.MethodGet, "/users?email=a@x.com", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("code %d: %s", w.Code, w.Body.String())
	}
	var p profileResponse
	decodeJSON(t, w, &p)
	if p.Email != "a@x.com" {
		t.Errorf("email = %q", p.Email)
	}
	if p.DisplayName == nil || *p.DisplayName != "a" {
		t.Errorf("display_name = %v, want local part \"a\"", p.DisplayName)
	}
	if p.PostsCount != 2 {
		t.Errorf("posts_count = %d, want 2", p.PostsCount)
	}
}

func TestProfileErrors(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/users", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing email: code %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/users?email=nobody@x.com", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown email: code %d, want 404", w.Code)
	}
}

func TestUpdateProfileIsFullReplace(t *testing.T) {
	r := newTestRouter(t)
	seedPost(t, r, "a@x.com")

	w := doJSON(t, r, http.MethodPut, "/users", map[string]interface{}{
		"email":               "a@x.com",
		"display_name":        "Alice",
		"bio":                 "hello",
		"profile_picture_url": "/uploads/1_1.png",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("first update code %d: %s", w.Code, w.Body.String())
	}

	// Resending only display_name clears the other two fields.
	w = doJSON(t, r, http.MethodPut, "/users", map[string]interface{}{
		"email":        "a@x.com",
		"display_name": "Alice B",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("second update code %d: %s", w.Code, w.Body.String())
	}

	var user models.User
	if err := db.DB.Where("email = ?", "a@x.com").First(&user).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if user.DisplayName == nil || *user.DisplayName != "Alice B" {
		t.Errorf("display_name = %v, want Alice B", user.DisplayName)
	}
	if user.Bio != nil {
		t.Errorf("bio = %q, want NULL", *user.Bio)
	}
	if user.ProfilePictureURL != nil {
		t.Errorf("profile_picture_url = %q, want NULL", *user.ProfilePictureURL)
	}
}

func TestUpdateProfileErrors(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/users", map[string]interface{}{
		"display_name": "nobody",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("missing email: code %d, want 401", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, "/users", map[string]interface{}{
		"email":        "nobody@x.com",
		"display_name": "nobody",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown email: code %d, want 404", w.Code)
	}
}
