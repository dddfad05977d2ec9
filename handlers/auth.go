package handlers

import (
	"errors"
	"log"
	"strings"

	"authbase/services/auth"
	"authbase/token"

	"github.com/gofiber/fiber/v2"
)

// Register creates a password account and returns it with a token pair.
func (h *Handler) Register(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return fiber.NewError(fiber.StatusBadRequest, "A valid email is required")
	}
	if len(input.Password) < 8 {
		return fiber.NewError(fiber.StatusBadRequest, "Password must be at least 8 characters")
	}
	if input.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Name is required")
	}

	user, err := h.auth.Register(input.Email, input.Password, input.Name)
	if errors.Is(err, auth.ErrEmailAlreadyRegistered) {
		return fiber.NewError(fiber.StatusBadRequest, "Email already taken")
	}
	if err != nil {
		return err
	}

	tokens, err := token.GenerateAuthTokens(user, h.cfg.JWT)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user, "tokens": tokens})
}

// Login checks email/password credentials.
func (h *Handler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	if input.Email == "" || input.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Email and password are required")
	}

	user, err := h.auth.LoginWithEmailAndPassword(input.Email, input.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		return fiber.NewError(fiber.StatusUnauthorized, "Incorrect email or password")
	}
	if err != nil {
		return err
	}

	tokens, err := token.GenerateAuthTokens(user, h.cfg.JWT)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"user": user, "tokens": tokens})
}

// RefreshTokens mints a new token pair from a refresh token.
func (h *Handler) RefreshTokens(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	if input.RefreshToken == "" {
		return fiber.NewError(fiber.StatusBadRequest, "A refresh token is required")
	}

	tokens, err := h.auth.RefreshAuth(input.RefreshToken)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Please authenticate")
	}

	return c.JSON(tokens)
}

// ForgotPassword always responds 204; the reset email only goes out when
// the account exists, so callers can't probe registered addresses.
func (h *Handler) ForgotPassword(c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	if input.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "An email is required")
	}

	user, err := h.store.GetUserByEmail(input.Email)
	if err != nil {
		return err
	}
	if user != nil {
		resetToken, err := token.GenerateResetPasswordToken(user, h.cfg.JWT)
		if err != nil {
			return err
		}
		if err := h.mailer.SendResetPasswordEmail(user.Email, user.Name, resetToken); err != nil {
			log.Println("Failed to send reset password email:", err)
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ResetPassword consumes the emailed token and sets the new password.
func (h *Handler) ResetPassword(c *fiber.Ctx) error {
	resetToken := c.Query("token")
	if resetToken == "" {
		return fiber.NewError(fiber.StatusBadRequest, "A token is required")
	}
	var input struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	if len(input.Password) < 8 {
		return fiber.NewError(fiber.StatusBadRequest, "Password must be at least 8 characters")
	}

	if err := h.auth.ResetPassword(resetToken, input.Password); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Password reset failed")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// SendVerificationEmail always responds 204; mail goes out only for an
// existing, not-yet-verified account.
func (h *Handler) SendVerificationEmail(c *fiber.Ctx) error {
	claims := authClaims(c)
	userID, err := claims.UserID()
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Please authenticate")
	}

	user, err := h.store.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user != nil && !user.IsEmailVerified {
		verifyToken, err := token.GenerateVerifyEmailToken(user, h.cfg.JWT)
		if err != nil {
			return err
		}
		if err := h.mailer.SendVerificationEmail(user.Email, user.Name, verifyToken); err != nil {
			log.Println("Failed to send verification email:", err)
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// VerifyEmail consumes the emailed token and flags the account verified.
func (h *Handler) VerifyEmail(c *fiber.Ctx) error {
	verifyToken := c.Query("token")
	if verifyToken == "" {
		return fiber.NewError(fiber.StatusBadRequest, "A token is required")
	}

	if err := h.auth.VerifyEmail(verifyToken); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Email verification failed")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ChangePassword swaps the authenticated user's password.
func (h *Handler) ChangePassword(c *fiber.Ctx) error {
	var input struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	if input.OldPassword == "" || len(input.NewPassword) < 8 {
		return fiber.NewError(fiber.StatusBadRequest, "Old password and a new password of at least 8 characters are required")
	}

	claims := authClaims(c)
	userID, err := claims.UserID()
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Please authenticate")
	}

	err = h.auth.ChangePassword(userID, input.OldPassword, input.NewPassword)
	if errors.Is(err, auth.ErrPasswordMismatch) {
		return fiber.NewError(fiber.StatusUnauthorized, "Incorrect password")
	}
	if errors.Is(err, auth.ErrUserNotFound) {
		// The token outlived its account.
		return fiber.NewError(fiber.StatusUnauthorized, "Please authenticate")
	}
	if err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
