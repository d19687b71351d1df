package common

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// Init opens the sqlite database used for job history and metrics.
// The property collection itself is never persisted here; it lives in
// memory and is replaced wholesale on every refresh.
func Init() *gorm.DB {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "dashboard.db"
	}

	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	db = conn
	return db
}

// GetDB returns the shared database handle
func GetDB() *gorm.DB {
	return db
}
