package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Lavadero-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Lavadero-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "lavadero-pro-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con una ruta protegida
// por AuthMiddleware y un handler dummy que devuelve la identidad extraída.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"userId":   apphttp.GetUserID(c),
				"username": apphttp.GetUsername(c),
			})
		},
	)
	return app
}

// doRequest lanza una petición GET /protected con el header Authorization dado.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeError decodifica el cuerpo de error {code, message}.
func decodeError(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: token válido → pasa y los locals llevan la identidad del token.
func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := buildTestApp()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, testUserID, body["userId"])
	assert.Equal(t, "admin", body["username"])
}

// Caso 2: todos los modos de fallo producen el MISMO 401 con el MISMO cuerpo:
// la respuesta no distingue ausente, malformado, expirado ni firma inválida.
func TestAuthMiddleware_Falla401Uniforme(t *testing.T) {
	app := buildTestApp()

	expiredTok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, -5)
	require.NoError(t, err)
	wrongSecretTok, err := pkgjwt.Generate("otro-secreto", testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"sin header", ""},
		{"esquema incorrecto", "Basic abc123"},
		{"bearer sin token", "Bearer "},
		{"token malformado", "Bearer no-es-un-jwt"},
		{"token expirado", "Bearer " + expiredTok},
		{"firma inválida", "Bearer " + wrongSecretTok},
	}

	var firstBody map[string]interface{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doRequest(t, app, tc.header)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			body := decodeError(t, resp)
			assert.Equal(t, "UNAUTHORIZED", body["code"])
			if firstBody == nil {
				firstBody = body
			} else {
				assert.Equal(t, firstBody, body,
					"todas las fallas de auth deben producir exactamente el mismo cuerpo")
			}
		})
	}
}

// Caso 3: el esquema Bearer no distingue mayúsculas.
func TestAuthMiddleware_BearerCaseInsensitive(t *testing.T) {
	app := buildTestApp()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
