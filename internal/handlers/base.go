package handlers

import (
	"net/http"

	"neighbornotes/internal/middleware"
	"neighbornotes/internal/utils"

	"github.com/gin-gonic/gin"
)

// JSONError writes the shared error shape: {"error": msg}, plus a "details"
// field in debug mode so local development sees the underlying cause.
func JSONError(c *gin.Context, code int, message string, err error) {
	body := gin.H{"error": message}
	if err != nil && gin.Mode() == gin.DebugMode {
		body["details"] = err.Error()
	}
	if code == http.StatusInternalServerError {
		utils.Log().Errorw("request failed",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"request_id", c.GetString(middleware.RequestIDKey),
			"error", err,
		)
	}
	c.JSON(code, body)
}
