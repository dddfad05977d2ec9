package handlers

import (
	"errors"

	"authbase/config"
	"authbase/services/auth"
	"authbase/services/oauth"

	"github.com/gofiber/fiber/v2"
)

// Mailer is the email capability the handlers need. utils.Mailer satisfies
// it; tests swap in a recorder.
type Mailer interface {
	SendResetPasswordEmail(to, name, resetToken string) error
	SendVerificationEmail(to, name, verifyToken string) error
}

// Handler carries the collaborators every route needs. Config is threaded
// in at construction, never read from the environment mid-request.
type Handler struct {
	cfg    config.Config
	store  auth.Store
	auth   *auth.Service
	oauth  *oauth.Manager
	mailer Mailer
}

func New(cfg config.Config, store auth.Store, authService *auth.Service, manager *oauth.Manager, mailer Mailer) *Handler {
	return &Handler{
		cfg:    cfg,
		store:  store,
		auth:   authService,
		oauth:  manager,
		mailer: mailer,
	}
}

// ErrorHandler renders every error as {code, message} JSON with a matching
// HTTP status.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"message": message,
	})
}
