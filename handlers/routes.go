package handlers

import (
	"authbase/config"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the full /v1 surface on the app.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	v1 := app.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/refresh-tokens", h.RefreshTokens)
	auth.Post("/forgot-password", h.ForgotPassword)
	auth.Post("/reset-password", h.ResetPassword)
	auth.Post("/send-verification-email", h.Auth(), h.SendVerificationEmail)
	auth.Post("/verify-email", h.VerifyEmail)
	auth.Post("/change-password", h.Auth(), h.ChangePassword)

	// OAuth (github, google, discord, spotify, facebook)
	auth.Get("/:provider/redirect", h.OauthRedirect)
	auth.Get("/:provider/callback", h.OauthCallback)
	auth.Post("/:provider/link", h.Auth(), h.OauthLink)
	auth.Delete("/:provider/link", h.Auth(), h.OauthUnlink)

	users := v1.Group("/users")
	users.Get("/", h.Auth(config.RightGetUsers), h.GetUsers)
	users.Get("/:userId", h.Auth(config.RightGetUsers), h.GetUser)
	users.Patch("/:userId", h.Auth(config.RightManageUsers), h.UpdateUser)
}
