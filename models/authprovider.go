package models

import (
	"time"

	"gorm.io/gorm"
)

// Provider type identifiers. Must match the adapter IDs in services/oauth.
const (
	ProviderGithub   = "github"
	ProviderGoogle   = "google"
	ProviderDiscord  = "discord"
	ProviderSpotify  = "spotify"
	ProviderFacebook = "facebook"
)

// AuthProvider binds an external OAuth identity to a local user.
// One provider identity maps to at most one user.
type AuthProvider struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ProviderType   string    `gorm:"uniqueIndex:idx_provider_user;not null" json:"provider_type"`
	ProviderUserID string    `gorm:"uniqueIndex:idx_provider_user;not null" json:"provider_user_id"`
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// MigrateAuthProviders migrates the table
func MigrateAuthProviders(db *gorm.DB) error {
	return db.AutoMigrate(&AuthProvider{})
}
