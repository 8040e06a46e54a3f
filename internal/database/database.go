package database

import (
	"fmt"

	"programmers-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens the SQLite database at storagePath and runs migrations.
// Using glebarez/sqlite which is a pure Go implementation (no CGO required).
func InitDB(storagePath string) error {
	var err error

	DB, err = gorm.Open(sqlite.Open(storagePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	// Auto-migrate the schema (creates the table if it doesn't exist)
	if err := DB.AutoMigrate(&models.Programmer{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	return nil
}

// GetDB returns the database connection
func GetDB() *gorm.DB {
	return DB
}
