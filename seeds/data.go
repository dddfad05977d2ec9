package seeds

import (
	"errors"
	"log"

	"authbase/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureAdmin creates the bootstrap admin account if no user holds that
// email yet. Safe to call on every startup.
func EnsureAdmin(db *gorm.DB, email, password, name string) error {
	if email == "" || password == "" {
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hashed := string(hash)

	admin := models.User{
		Email:           email,
		Name:            name,
		Password:        &hashed,
		Role:            "admin",
		IsEmailVerified: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Seeded admin account:", email)
	return nil
}
