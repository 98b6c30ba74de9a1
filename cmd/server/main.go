package main

import (
	"os"

	"neighbornotes/internal/db"
	"neighbornotes/internal/middleware"
	"neighbornotes/internal/router"
	"neighbornotes/internal/services"
	"neighbornotes/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		utils.Log().Info("No .env file found, reading env vars from system")
	}

	if err := utils.InitLogger(gin.Mode() == gin.DebugMode); err != nil {
		panic(err)
	}

	// Initialize Database
	db.Init()

	// Initialize Gin
	r := gin.Default()
	r.Use(middleware.RequestID())

	// Uploaded files are served statically; the upload endpoint only
	// returns the relative path.
	r.Static("/uploads", services.UploadDir())

	router.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.Log().Infof("NeighborNotes server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		utils.Log().Fatal(err)
	}
}
