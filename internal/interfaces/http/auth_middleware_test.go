package http_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/nirs/shop-api/internal/interfaces/http"
	"github.com/nirs/shop-api/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protegido", apphttp.AuthMiddleware(testSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    c.Locals(apphttp.LocalRole),
		})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) (int, map[string]string) {
	t.Helper()
	req := httptest.NewRequest("GET", "/protegido", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := newProtectedApp()

	status, body := doRequest(t, app, "")

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", body["code"])
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := newProtectedApp()

	status, body := doRequest(t, app, "Basic abc123")

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", body["code"])
}

func TestAuthMiddleware_TokenVacio(t *testing.T) {
	app := newProtectedApp()

	status, body := doRequest(t, app, "Bearer ")

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", body["code"])
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := newProtectedApp()

	status, body := doRequest(t, app, "Bearer no-es-un-jwt")

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", body["code"])
}

func TestAuthMiddleware_FirmaDeOtroSecreto(t *testing.T) {
	app := newProtectedApp()

	token, err := jwt.Generate("otro-secreto", "user-1", "admin", "shop-api", 15)
	require.NoError(t, err)

	status, _ := doRequest(t, app, "Bearer "+token)

	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAuthMiddleware_TokenValidoExtraeLocals(t *testing.T) {
	app := newProtectedApp()

	token, err := jwt.Generate(testSecret, "user-1", "editor", "shop-api", 15)
	require.NoError(t, err)

	status, body := doRequest(t, app, "Bearer "+token)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "user-1", body["user_id"])
	assert.Equal(t, "editor", body["role"])
}

// El esquema Bearer no distingue mayúsculas.
func TestAuthMiddleware_EsquemaCaseInsensitive(t *testing.T) {
	app := newProtectedApp()

	token, err := jwt.Generate(testSecret, "user-1", "admin", "shop-api", 15)
	require.NoError(t, err)

	status, _ := doRequest(t, app, "bearer "+token)

	assert.Equal(t, fiber.StatusOK, status)
}
