package router

import (
	"neighbornotes/internal/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	postHandler := handlers.NewPostHandler()
	commentHandler := handlers.NewCommentHandler()
	userHandler := handlers.NewUserHandler()
	uploadHandler := handlers.NewUploadHandler()
	noteHandler := handlers.NewNoteHandler()

	// Post board
	r.GET("/posts", postHandler.List)    // 所有帖子，最新在前
	r.POST("/posts", postHandler.Create) // 发布帖子（首次发帖自动建用户）

	// Comment threads
	r.GET("/comments", commentHandler.List)    // 某帖子的评论，最早在前
	r.POST("/comments", commentHandler.Create) // 发表评论

	// User profiles
	r.GET("/users", userHandler.Profile) // 用户资料 + 发帖数
	r.PUT("/users", userHandler.Update)  // 更新资料（整体覆盖）

	// Media ingestion
	r.POST("/upload", uploadHandler.Upload) // 图片上传

	// Legacy notes board
	r.GET("/notes", noteHandler.List)
	r.POST("/notes", noteHandler.Create)
}
