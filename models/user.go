package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Email           string    `gorm:"uniqueIndex;not null" json:"email"`
	Name            string    `json:"name"`
	Password        *string   `json:"-"`                        // bcrypt hash, nil for OAuth-only accounts
	Role            string    `json:"role" gorm:"default:user"` // user, admin
	IsEmailVerified bool      `json:"is_email_verified" gorm:"default:false"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MigrateUsers migrates the table
func MigrateUsers(db *gorm.DB) error {
	return db.AutoMigrate(&User{})
}
