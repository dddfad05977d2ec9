package auth_test

import (
	"testing"

	"authbase/models"
	"authbase/services/auth"
	"authbase/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)

	user, err := svc.Register("jane@example.com", "password123", "Jane")
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "user", user.Role)
	assert.False(t, user.IsEmailVerified)
	require.NotNil(t, user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte("password123")))

	_, err = svc.Register("jane@example.com", "password123", "Jane Again")
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyRegistered)
}

// blindStore hides existing accounts from the pre-insert lookup, like a
// concurrent register committing between the check and the insert.
type blindStore struct {
	auth.Store
}

func (b *blindStore) GetUserByEmail(string) (*models.User, error) { return nil, nil }

func TestRegisterRaceOnSameEmail(t *testing.T) {
	t.Parallel()
	store, _ := newTestStore(t)
	svc := auth.NewService(&blindStore{Store: store}, testJWT)

	_, err := svc.Register("jane@example.com", "password123", "Jane")
	require.NoError(t, err)

	// The unique index catches what the lookup missed.
	_, err = svc.Register("jane@example.com", "password123", "Jane Again")
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyRegistered)
}

func TestLoginWithEmailAndPassword(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)

	registered, err := svc.Register("jane@example.com", "password123", "Jane")
	require.NoError(t, err)

	user, err := svc.LoginWithEmailAndPassword("jane@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = svc.LoginWithEmailAndPassword("jane@example.com", "wrong-password")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.LoginWithEmailAndPassword("nobody@example.com", "password123")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginRejectsOauthOnlyAccount(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)

	// OAuth signup creates a password-less account.
	user, err := svc.LoginOrCreateOauthUser(githubIdentity())
	require.NoError(t, err)
	require.Nil(t, user.Password)

	_, err = svc.LoginWithEmailAndPassword(user.Email, "anything-at-all")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshAuth(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)

	user, err := svc.Register("jane@example.com", "password123", "Jane")
	require.NoError(t, err)

	pair, err := token.GenerateAuthTokens(user, testJWT)
	require.NoError(t, err)

	fresh, err := svc.RefreshAuth(pair.Refresh.Token)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.Access.Token)
	assert.NotEmpty(t, fresh.Refresh.Token)

	// An access token is not accepted as a refresh token.
	_, err = svc.RefreshAuth(pair.Access.Token)
	assert.Error(t, err)
}

func TestResetPassword(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)

	user, err := svc.Register("jane@example.com", "password123", "Jane")
	require.NoError(t, err)

	resetToken, err := token.GenerateResetPasswordToken(user, testJWT)
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(resetToken, "new-password-1"))

	_, err = svc.LoginWithEmailAndPassword("jane@example.com", "password123")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	_, err = svc.LoginWithEmailAndPassword("jane@example.com", "new-password-1")
	assert.NoError(t, err)

	// Wrong token type is rejected.
	pair, err := token.GenerateAuthTokens(user, testJWT)
	require.NoError(t, err)
	assert.Error(t, svc.ResetPassword(pair.Access.Token, "sneaky-password"))
}

func TestVerifyEmail(t *testing.T) {
	t.Parallel()
	svc, store, _ := newTestService(t)

	user, err := svc.Register("jane@example.com", "password123", "Jane")
	require.NoError(t, err)
	require.False(t, user.IsEmailVerified)

	verifyToken, err := token.GenerateVerifyEmailToken(user, testJWT)
	require.NoError(t, err)

	require.NoError(t, svc.VerifyEmail(verifyToken))

	verified, err := store.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.True(t, verified.IsEmailVerified)
}

func TestChangePassword(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)

	user, err := svc.Register("jane@example.com", "password123", "Jane")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ChangePassword(user.ID, "wrong-old", "new-password-1"), auth.ErrPasswordMismatch)

	require.NoError(t, svc.ChangePassword(user.ID, "password123", "new-password-1"))
	_, err = svc.LoginWithEmailAndPassword("jane@example.com", "new-password-1")
	assert.NoError(t, err)
}

func TestChangePasswordOnOauthOnlyAccount(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t)

	user, err := svc.LoginOrCreateOauthUser(githubIdentity())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ChangePassword(user.ID, "", "new-password-1"), auth.ErrPasswordMismatch)
}
