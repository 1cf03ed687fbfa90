package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	apperr "github.com/avayezaryab/backend/internal/errors"
	"github.com/avayezaryab/backend/internal/identity/dto"
	"github.com/avayezaryab/backend/internal/identity/service"
)

const (
	msgRegistered    = "registration successful, a verification code has been sent to your email"
	msgForgot        = "if the email is registered, a recovery code has been sent"
	msgPasswordReset = "password changed successfully"
)

type AuthHandler struct {
	identity *service.IdentityService
}

func NewAuthHandler(identity *service.IdentityService) *AuthHandler {
	return &AuthHandler{identity: identity}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return badInput(c)
	}

	if _, err := h.identity.Register(c.Context(), input); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": msgRegistered})
}

func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	var input dto.VerifyEmailInput
	if err := c.BodyParser(&input); err != nil {
		return badInput(c)
	}

	out, err := h.identity.VerifyEmail(c.Context(), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return badInput(c)
	}

	out, err := h.identity.Login(c.Context(), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input dto.ForgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return badInput(c)
	}

	if err := h.identity.ForgotPassword(c.Context(), input.Email); err != nil {
		return fail(c, err)
	}

	// Same message whether or not the email exists.
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": msgForgot})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return badInput(c)
	}

	if err := h.identity.ResetPassword(c.Context(), input); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": msgPasswordReset})
}

func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var input dto.AdminLoginInput
	if err := c.BodyParser(&input); err != nil {
		return badInput(c)
	}

	token, err := h.identity.AdminLogin(c.Context(), input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": token})
}

func badInput(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid input"})
}

// fail maps service errors to a status and a short generic message. Internal
// distinctions (expired vs wrong code, unknown user vs wrong password) are
// deliberately not exposed.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, apperr.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "email already registered"})
	case errors.Is(err, apperr.ErrUserNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "user not found"})
	case errors.Is(err, apperr.ErrCodeInvalidOrExpired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "code is invalid or expired"})
	case errors.Is(err, apperr.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid credentials"})
	case errors.Is(err, apperr.ErrUnauthorized):
		return c.SendStatus(fiber.StatusUnauthorized)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
	}
}
