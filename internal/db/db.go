package db

import (
	"os"
	"time"

	"neighbornotes/internal/models"
	"neighbornotes/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=neighbornotes port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		utils.Log().Fatalf("Failed to connect to database: %v", err)
	}

	utils.Log().Info("Database connection established")

	sqlDB, err := DB.DB()
	if err != nil {
		utils.Log().Fatalf("Failed to access underlying sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	Migrate(DB)
}

// Migrate creates the schema. Split out so tests can run it against their
// own database.
func Migrate(gdb *gorm.DB) {
	err := gdb.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.MediaUpload{},
		&models.Note{},
	)
	if err != nil {
		utils.Log().Fatalf("Failed to migrate database: %v", err)
	}
	utils.Log().Info("Database migration completed")
}
