package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Lavadero-api/internal/application/auth"
	"github.com/jhoicas/Lavadero-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Lavadero-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de usuarios
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byUsername map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	r.byUsername[user.Username] = user
	return nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	return r.byUsername[username], nil
}

// buildAuthApp construye una app Fiber con las rutas públicas de auth sobre
// un repositorio fake.
func buildAuthApp() *fiber.App {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	handler := apphttp.NewAuthHandler(uc)
	app := fiber.New()
	app.Post("/api/register", handler.Register)
	app.Post("/api/login", handler.Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: registro exitoso responde 201 sin exponer el password.
func TestRegisterHandler_OK(t *testing.T) {
	app := buildAuthApp()

	resp := postJSON(t, app, "/api/register", fiber.Map{"username": "admin", "password": "password123"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "admin", body["username"])
	assert.NotEmpty(t, body["id"])
	assert.NotContains(t, body, "password", "la respuesta no debe incluir el password")
	assert.NotContains(t, body, "passwordHash")
}

// Caso 2: registrar el mismo username dos veces responde 400, no 500.
func TestRegisterHandler_Duplicado(t *testing.T) {
	app := buildAuthApp()

	resp := postJSON(t, app, "/api/register", fiber.Map{"username": "admin", "password": "password123"})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/api/register", fiber.Map{"username": "admin", "password": "otra"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "USER_EXISTS", body["code"])
}

// Caso 3: campos vacíos responden 400.
func TestRegisterHandler_CamposRequeridos(t *testing.T) {
	app := buildAuthApp()

	resp := postJSON(t, app, "/api/register", fiber.Map{"username": "", "password": ""})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: login correcto devuelve token y usuario.
func TestLoginHandler_OK(t *testing.T) {
	app := buildAuthApp()

	resp := postJSON(t, app, "/api/register", fiber.Map{"username": "admin", "password": "password123"})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/api/login", fiber.Map{"username": "admin", "password": "password123"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "admin", body.User.Username)
}

// Caso 2: usuario inexistente y password malo responden con el MISMO 401.
func TestLoginHandler_401Uniforme(t *testing.T) {
	app := buildAuthApp()

	resp := postJSON(t, app, "/api/register", fiber.Map{"username": "admin", "password": "password123"})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	respNoUser := postJSON(t, app, "/api/login", fiber.Map{"username": "fantasma", "password": "password123"})
	defer respNoUser.Body.Close()
	respBadPass := postJSON(t, app, "/api/login", fiber.Map{"username": "admin", "password": "equivocada"})
	defer respBadPass.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, respNoUser.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respBadPass.StatusCode)

	bodyNoUser := decodeError(t, respNoUser)
	bodyBadPass := decodeError(t, respBadPass)
	assert.Equal(t, bodyNoUser, bodyBadPass,
		"la respuesta no debe permitir enumerar usuarios")
}
