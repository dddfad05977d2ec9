package auth

import (
	"errors"

	"authbase/config"
	"authbase/models"
	"authbase/token"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("incorrect email or password")
	ErrPasswordMismatch       = errors.New("incorrect password")
)

// Service implements the auth flows over a Store. Config is threaded in at
// construction; nothing here reads the environment.
type Service struct {
	store Store
	jwt   config.JWTConfig
}

func NewService(store Store, jwt config.JWTConfig) *Service {
	return &Service{store: store, jwt: jwt}
}

// Register creates a password account. The email must be unused.
func (s *Service) Register(email, password, name string) (*models.User, error) {
	existing, err := s.store.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashed := string(hash)

	user := &models.User{
		Email:           email,
		Name:            name,
		Password:        &hashed,
		Role:            config.DefaultRole,
		IsEmailVerified: false,
	}
	if err := s.store.CreateUser(user); err != nil {
		if errors.Is(err, ErrEmailConflict) {
			// A concurrent register on the same email beat the lookup.
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, err
	}
	return user, nil
}

// LoginWithEmailAndPassword checks the credentials. A miss, a bcrypt
// mismatch and an OAuth-only (password-less) account all fail the same way
// so callers can't probe which one happened.
func (s *Service) LoginWithEmailAndPassword(email, password string) (*models.User, error) {
	user, err := s.store.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// RefreshAuth verifies a refresh token and mints a fresh pair.
func (s *Service) RefreshAuth(refreshToken string) (*token.Pair, error) {
	claims, err := token.Verify(refreshToken, token.TypeRefresh, s.jwt.Secret)
	if err != nil {
		return nil, err
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, err
	}
	user, err := s.store.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, token.ErrInvalidToken
	}
	return token.GenerateAuthTokens(user, s.jwt)
}

// ResetPassword consumes a reset token and stores the new password hash.
func (s *Service) ResetPassword(resetToken, newPassword string) error {
	claims, err := token.Verify(resetToken, token.TypeResetPassword, s.jwt.Secret)
	if err != nil {
		return err
	}
	userID, err := claims.UserID()
	if err != nil {
		return err
	}
	user, err := s.store.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return token.ErrInvalidToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hashed := string(hash)
	user.Password = &hashed
	return s.store.UpdateUser(user)
}

// VerifyEmail consumes a verify-email token and marks the account verified.
func (s *Service) VerifyEmail(verifyToken string) error {
	claims, err := token.Verify(verifyToken, token.TypeVerifyEmail, s.jwt.Secret)
	if err != nil {
		return err
	}
	userID, err := claims.UserID()
	if err != nil {
		return err
	}
	user, err := s.store.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return token.ErrInvalidToken
	}

	user.IsEmailVerified = true
	return s.store.UpdateUser(user)
}

// ChangePassword swaps the password after checking the old one.
func (s *Service) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := s.store.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.Password == nil {
		return ErrPasswordMismatch
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(oldPassword)); err != nil {
		return ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hashed := string(hash)
	user.Password = &hashed
	return s.store.UpdateUser(user)
}
