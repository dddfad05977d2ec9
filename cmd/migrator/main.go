package main

import (
	"log"
	"os"

	"authbase/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Copies users and provider links from a local SQLite database into
// PostgreSQL. Used when promoting a dev instance to a hosted one.
func main() {
	if err := godotenv.Load("../.env"); err != nil {
		log.Println("No .env file found, using defaults/env vars")
	}

	sqlitePath := os.Getenv("SQLITE_PATH")
	if sqlitePath == "" {
		sqlitePath = "../authbase.db"
	}

	pgDSN := os.Getenv("POSTGRES_DSN")
	if pgDSN == "" {
		log.Fatal("POSTGRES_DSN is required (e.g., host=localhost user=authbase password=authbase dbname=authbase port=5432 sslmode=disable)")
	}

	log.Printf("Opening SQLite: %s\n", sqlitePath)
	srcDB, err := gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to open SQLite:", err)
	}

	log.Println("Opening PostgreSQL...")
	dstDB, err := gorm.Open(postgres.Open(pgDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to open PostgreSQL:", err)
	}

	log.Println("Migrating Target Schema...")
	if err := dstDB.AutoMigrate(&models.User{}, &models.AuthProvider{}); err != nil {
		log.Fatal("Failed to migrate target schema:", err)
	}

	// Users first so the link rows have their owners in place.
	copyTable(srcDB, dstDB, &[]models.User{}, "Users")
	copyTable(srcDB, dstDB, &[]models.AuthProvider{}, "AuthProviders")

	log.Println("Migration Complete!")
}

func copyTable(src *gorm.DB, dst *gorm.DB, model interface{}, name string) {
	log.Printf("Copying %s...", name)

	if err := src.Find(model).Error; err != nil {
		log.Printf("Error reading %s: %v\n", name, err)
		return
	}

	if err := dst.Create(model).Error; err != nil {
		log.Printf("Warning inserting %s (might strictly be duplicates): %v\n", name, err)
	} else {
		log.Printf("Successfully copied %s\n", name)
	}
}
