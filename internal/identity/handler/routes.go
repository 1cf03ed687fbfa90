package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/avayezaryab/backend/internal/identity/service"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/api/auth/register", h.Register)
	app.Post("/api/auth/verify-email", h.VerifyEmail)
	app.Post("/api/auth/login", h.Login)
	app.Post("/api/auth/forgot-password", h.ForgotPassword)
	app.Post("/api/auth/reset-password", h.ResetPassword)

	// Admin login is the only ungated admin route; it hands out the token the
	// gate checks.
	app.Post("/api/admin/login", h.AdminLogin)
}

// RequireAdminToken gates the privileged routes on the X-Admin-Token header.
// A mismatch yields a bare 401 with no body details.
func RequireAdminToken(configuredToken string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !service.CheckAdminToken(c.Get("X-Admin-Token"), configuredToken) {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.Next()
	}
}
