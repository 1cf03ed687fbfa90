package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avayezaryab/backend/internal/identity/handler"
)

func TestRegisteredRoutes(t *testing.T) {
	f := newApp(t)

	paths := []string{
		"/api/auth/register",
		"/api/auth/verify-email",
		"/api/auth/login",
		"/api/auth/forgot-password",
		"/api/auth/reset-password",
		"/api/admin/login",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			// An empty POST must reach the handler, not fall through to 404
			// or 405.
			req := httptest.NewRequest(http.MethodPost, path, nil)
			resp, err := f.app.Test(req, -1)
			require.NoError(t, err)
			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
			assert.NotEqual(t, http.StatusMethodNotAllowed, resp.StatusCode)
		})
	}
}

func TestRequireAdminToken(t *testing.T) {
	newGatedApp := func(token string) *fiber.App {
		app := fiber.New()
		admin := app.Group("/api/admin", handler.RequireAdminToken(token))
		admin.Post("/ping", func(c *fiber.Ctx) error {
			return c.SendStatus(http.StatusOK)
		})
		return app
	}

	t.Run("valid token passes", func(t *testing.T) {
		app := newGatedApp("secret")

		req := httptest.NewRequest(http.MethodPost, "/api/admin/ping", nil)
		req.Header.Set("X-Admin-Token", "secret")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("wrong token rejected", func(t *testing.T) {
		app := newGatedApp("secret")

		req := httptest.NewRequest(http.MethodPost, "/api/admin/ping", nil)
		req.Header.Set("X-Admin-Token", "other")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		app := newGatedApp("secret")

		req := httptest.NewRequest(http.MethodPost, "/api/admin/ping", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("empty configured token locks the gate", func(t *testing.T) {
		app := newGatedApp("")

		req := httptest.NewRequest(http.MethodPost, "/api/admin/ping", nil)
		req.Header.Set("X-Admin-Token", "")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
