package database

import (
	"errors"

	"authbase/models"
	"authbase/services/auth"

	"gorm.io/gorm"
)

// Store is the GORM-backed implementation of auth.Store.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) ListUsers(offset, limit int, search string) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := s.db.Model(&models.User{})
	if search != "" {
		term := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", term, term)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Limit(limit).Offset(offset).Order("created_at desc").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *Store) CreateUser(user *models.User) error {
	err := s.db.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return auth.ErrEmailConflict
	}
	return err
}

func (s *Store) UpdateUser(user *models.User) error {
	return s.db.Save(user).Error
}

func (s *Store) FindLink(providerType, providerUserID string) (*models.AuthProvider, error) {
	var link models.AuthProvider
	err := s.db.Where("provider_type = ? AND provider_user_id = ?", providerType, providerUserID).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (s *Store) FindLinkForUser(userID uint, providerType string) (*models.AuthProvider, error) {
	var link models.AuthProvider
	err := s.db.Where("user_id = ? AND provider_type = ?", userID, providerType).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (s *Store) CreateLink(link *models.AuthProvider) error {
	err := s.db.Create(link).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return auth.ErrLinkConflict
	}
	return err
}

func (s *Store) DeleteLink(userID uint, providerType string) error {
	return s.db.Where("user_id = ? AND provider_type = ?", userID, providerType).
		Delete(&models.AuthProvider{}).Error
}

// Transaction runs fn against a store bound to one transaction.
func (s *Store) Transaction(fn func(auth.Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}
