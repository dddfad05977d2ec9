package handlers

import (
	"strings"

	"authbase/config"
	"authbase/token"

	"github.com/gofiber/fiber/v2"
)

const claimsLocalKey = "claims"

// authClaims returns the verified access-token claims stashed by Auth.
// Only read behind the Auth middleware.
func authClaims(c *fiber.Ctx) *token.Claims {
	claims, _ := c.Locals(claimsLocalKey).(*token.Claims)
	return claims
}

// Auth verifies the bearer access token and, when rights are given, checks
// them against the user's role. A user without the required rights can
// still reach a :userId route that matches their own id. Accounts with an
// unverified email are blocked everywhere except the resend endpoint.
func (h *Handler) Auth(requiredRights ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Please authenticate")
		}
		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "Please authenticate")
		}

		claims, err := token.Verify(parts[1], token.TypeAccess, h.cfg.JWT.Secret)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Please authenticate")
		}

		if len(requiredRights) > 0 {
			userRights := config.RoleRights[claims.Role]
			hasRights := true
			for _, required := range requiredRights {
				if !contains(userRights, required) {
					hasRights = false
					break
				}
			}
			if !hasRights && c.Params("userId") != claims.Subject {
				return fiber.NewError(fiber.StatusForbidden, "Forbidden")
			}
		}

		if !claims.IsEmailVerified && c.Path() != "/v1/auth/send-verification-email" {
			return fiber.NewError(fiber.StatusForbidden, "Please verify your email")
		}

		c.Locals(claimsLocalKey, claims)
		return c.Next()
	}
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
