package database

import (
	"log"
	"task-bidding-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the SQLite database at dsn and runs migrations.
// Using glebarez/sqlite which is a pure Go implementation (no CGO required).
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate the schema (it will create tables if they don't exist)
	if err := db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Bid{},
		&models.Payment{},
		&models.Message{},
	); err != nil {
		return nil, err
	}

	log.Println("Database connected and migrated successfully")
	return db, nil
}
