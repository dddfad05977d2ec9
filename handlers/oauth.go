package handlers

import (
	"errors"

	"authbase/services/auth"
	"authbase/token"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// OauthRedirect sends the client to the provider's consent screen.
func (h *Handler) OauthRedirect(c *fiber.Ctx) error {
	provider, err := h.oauth.Get(c.Params("provider"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Unknown provider")
	}

	state := uuid.NewString()
	return c.Redirect(provider.AuthorizationURL(state), fiber.StatusFound)
}

// OauthCallback resolves the provider callback into a local login or signup.
func (h *Handler) OauthCallback(c *fiber.Ctx) error {
	provider, err := h.oauth.Get(c.Params("provider"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Unknown provider")
	}

	code := c.Query("code")
	if code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "An authorization code is required")
	}

	identity, err := provider.ExchangeCode(c.Context(), code)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := h.auth.LoginOrCreateOauthUser(identity)
	var taken *auth.EmailTakenError
	if errors.As(err, &taken) {
		return fiber.NewError(fiber.StatusForbidden, taken.Error())
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

// OauthLink connects a provider identity to the authenticated user.
func (h *Handler) OauthLink(c *fiber.Ctx) error {
	provider, err := h.oauth.Get(c.Params("provider"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Unknown provider")
	}

	var input struct {
		Code string `json:"code"`
	}
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}
	if input.Code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "An authorization code is required")
	}

	identity, err := provider.ExchangeCode(c.Context(), input.Code)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	claims := authClaims(c)
	userID, err := claims.UserID()
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Please authenticate")
	}

	link, err := h.auth.LinkOauthUser(userID, identity)
	if errors.Is(err, auth.ErrLinkConflict) {
		return fiber.NewError(fiber.StatusConflict, "Account already linked to another user")
	}
	if err != nil {
		return err
	}

	return c.JSON(link)
}

// OauthUnlink removes the authenticated user's link for a provider.
func (h *Handler) OauthUnlink(c *fiber.Ctx) error {
	provider, err := h.oauth.Get(c.Params("provider"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Unknown provider")
	}

	claims := authClaims(c)
	userID, err := claims.UserID()
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Please authenticate")
	}

	if err := h.auth.UnlinkOauthProvider(userID, provider.GetID()); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
