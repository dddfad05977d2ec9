package database

import (
	"fmt"
	"log"

	"authbase/config"
	"authbase/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured database and runs migrations.
func Connect(cfg config.DBConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	if cfg.Driver == "postgres" {
		if cfg.DSN == "" {
			return nil, fmt.Errorf("DB_DSN is required for postgres driver")
		}
		dialector = postgres.Open(cfg.DSN)
		log.Println("Connecting to PostgreSQL...")
	} else {
		// Default to SQLite
		dialector = sqlite.Open(cfg.Path)
		log.Println("Connecting to SQLite...")
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate runs the schema migrations for all models.
func Migrate(db *gorm.DB) error {
	if err := models.MigrateUsers(db); err != nil {
		return err
	}
	return models.MigrateAuthProviders(db)
}
