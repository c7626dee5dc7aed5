package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/userdesk-api/internal/application/dto"
	"github.com/jhoicas/userdesk-api/internal/domain/entity"
)

func TestLoginHandler_CredencialesDemo(t *testing.T) {
	ta := buildTestApp(t, true)

	resp := doJSON(t, ta.app, http.MethodPost, "/api/auth/login", "",
		map[string]any{"username": "admin", "password": "cualquiera"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.LoginResponse
	decodeInto(t, resp, &body)
	require.NotEmpty(t, body.Token)
	assert.Equal(t, "1", body.User.ID)
	assert.Equal(t, entity.RoleAdmin, body.User.Role)
	assert.Equal(t, "Admin User", body.User.FullName)

	// El token emitido abre las rutas protegidas
	resp = doJSON(t, ta.app, http.MethodGet, "/api/users", body.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginHandler_UsernameDesconocido(t *testing.T) {
	ta := buildTestApp(t, true)

	resp := doJSON(t, ta.app, http.MethodPost, "/api/auth/login", "",
		map[string]any{"username": "root", "password": "x"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	decodeInto(t, resp, &body)
	assert.Equal(t, "UNAUTHORIZED", body.Code)
}

func TestLoginHandler_UsernameVacio(t *testing.T) {
	ta := buildTestApp(t, true)

	resp := doJSON(t, ta.app, http.MethodPost, "/api/auth/login", "",
		map[string]any{"password": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogoutHandler_CierraLaSesion(t *testing.T) {
	ta := buildTestApp(t, true)

	resp := doJSON(t, ta.app, http.MethodPost, "/api/auth/login", "",
		map[string]any{"username": "supervisor", "password": "x"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login dto.LoginResponse
	decodeInto(t, resp, &login)

	resp = doJSON(t, ta.app, http.MethodPost, "/api/auth/logout", login.Token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Nil(t, ta.sessions.Current())
}
