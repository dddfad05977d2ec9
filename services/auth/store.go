package auth

import (
	"errors"
	"fmt"

	"authbase/models"
)

// Storage errors the service reacts to.
var (
	// ErrLinkConflict is returned by CreateLink when the
	// (provider_type, provider_user_id) pair is already bound.
	ErrLinkConflict = errors.New("provider identity already linked")

	// ErrEmailConflict is returned by CreateUser when the email is
	// already taken. A pre-insert lookup can miss a concurrent commit,
	// so the unique index is the authority.
	ErrEmailConflict = errors.New("email already in use")

	ErrUserNotFound = errors.New("user not found")
)

// EmailTakenError rejects a first-time OAuth signup whose email belongs to
// an existing account not linked to that provider. Without this check a
// provider identity carrying a victim's email would be logged straight into
// the victim's account.
type EmailTakenError struct {
	Provider string
}

func (e *EmailTakenError) Error() string {
	return fmt.Sprintf("cannot signup with %s, user already exists with that email", e.Provider)
}

// UserStore persists local user records.
type UserStore interface {
	GetUserByID(id uint) (*models.User, error)         // nil, nil on miss
	GetUserByEmail(email string) (*models.User, error) // nil, nil on miss
	CreateUser(user *models.User) error // ErrEmailConflict on duplicate email
	UpdateUser(user *models.User) error
	ListUsers(offset, limit int, search string) ([]models.User, int64, error)
}

// LinkStore persists provider-identity bindings.
type LinkStore interface {
	FindLink(providerType, providerUserID string) (*models.AuthProvider, error) // nil, nil on miss
	FindLinkForUser(userID uint, providerType string) (*models.AuthProvider, error)
	CreateLink(link *models.AuthProvider) error // ErrLinkConflict on duplicate identity
	DeleteLink(userID uint, providerType string) error
}

// Store is the full storage surface the auth service consumes. Transaction
// runs fn against a store bound to a single transaction; returning an error
// rolls everything back.
type Store interface {
	UserStore
	LinkStore
	Transaction(fn func(Store) error) error
}
