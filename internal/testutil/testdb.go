package testutil

import (
	"task-bidding-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewInMemoryDB creates an in-memory SQLite DB and runs migrations.
// The pool is pinned to a single connection: every connection to ":memory:"
// opens a distinct database, so a second pooled connection would see an
// empty schema.
func NewInMemoryDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Bid{},
		&models.Payment{},
		&models.Message{},
	); err != nil {
		return nil, err
	}
	return db, nil
}

// SeedUser inserts a minimal user row for tests.
func SeedUser(db *gorm.DB, id, email string, isWorker bool) (*models.User, error) {
	user := &models.User{
		ID:       id,
		Email:    email,
		Password: "x",
		IsWorker: isWorker,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
