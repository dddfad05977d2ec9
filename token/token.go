package token

import (
	"errors"
	"strconv"
	"time"

	"authbase/config"
	"authbase/models"

	"github.com/golang-jwt/jwt/v5"
)

// Token types carried in the "type" claim. A token of one type is never
// accepted where another is expected.
const (
	TypeAccess        = "access"
	TypeRefresh       = "refresh"
	TypeResetPassword = "resetPassword"
	TypeVerifyEmail   = "verifyEmail"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the JWT payload for every token this service mints.
type Claims struct {
	Type            string `json:"type"`
	Role            string `json:"role,omitempty"`
	IsEmailVerified bool   `json:"is_email_verified"`
	jwt.RegisteredClaims
}

// UserID parses the subject back into a user id.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}

// TokenExpires pairs a signed token with its expiry.
type TokenExpires struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// Pair holds the access/refresh tokens returned on login.
type Pair struct {
	Access  TokenExpires `json:"access"`
	Refresh TokenExpires `json:"refresh"`
}

// Generate signs a token of the given type for a user.
func Generate(user *models.User, tokenType string, expires time.Time, secret string) (string, error) {
	claims := Claims{
		Type:            tokenType,
		Role:            user.Role,
		IsEmailVerified: user.IsEmailVerified,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// GenerateAuthTokens mints the access/refresh pair for a user.
func GenerateAuthTokens(user *models.User, cfg config.JWTConfig) (*Pair, error) {
	accessExpires := time.Now().Add(time.Duration(cfg.AccessExpirationMinutes) * time.Minute)
	access, err := Generate(user, TypeAccess, accessExpires, cfg.Secret)
	if err != nil {
		return nil, err
	}

	refreshExpires := time.Now().Add(time.Duration(cfg.RefreshExpirationDays) * 24 * time.Hour)
	refresh, err := Generate(user, TypeRefresh, refreshExpires, cfg.Secret)
	if err != nil {
		return nil, err
	}

	return &Pair{
		Access:  TokenExpires{Token: access, Expires: accessExpires},
		Refresh: TokenExpires{Token: refresh, Expires: refreshExpires},
	}, nil
}

// GenerateResetPasswordToken mints the short-lived token emailed on forgot-password.
func GenerateResetPasswordToken(user *models.User, cfg config.JWTConfig) (string, error) {
	expires := time.Now().Add(time.Duration(cfg.ResetPasswordExpirationMins) * time.Minute)
	return Generate(user, TypeResetPassword, expires, cfg.Secret)
}

// GenerateVerifyEmailToken mints the short-lived token emailed for verification.
func GenerateVerifyEmailToken(user *models.User, cfg config.JWTConfig) (string, error) {
	expires := time.Now().Add(time.Duration(cfg.VerifyEmailExpirationMins) * time.Minute)
	return Generate(user, TypeVerifyEmail, expires, cfg.Secret)
}

// Verify parses a token, checks the signature and expiry, and requires the
// expected type claim.
func Verify(tokenString, wantType, secret string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != wantType {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
