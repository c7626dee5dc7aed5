package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/userdesk-api/internal/application/dto"
	"github.com/jhoicas/userdesk-api/internal/domain"
	"github.com/jhoicas/userdesk-api/internal/domain/entity"
)

// ─────────────────────────────────────────────────────────────────────────────
// Lectura
// ─────────────────────────────────────────────────────────────────────────────

func TestUserHandler_ListDevuelveLaSiembra(t *testing.T) {
	ta := buildTestApp(t, true)

	resp := doJSON(t, ta.app, http.MethodGet, "/api/users", tokenFor(t, "associate"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var users []entity.User
	decodeInto(t, resp, &users)
	require.Len(t, users, 2)
	assert.Equal(t, "associate user", users[0].FullName)
	assert.Equal(t, "supervisor user2", users[1].FullName)
}

func TestUserHandler_GetByID(t *testing.T) {
	ta := buildTestApp(t, true)

	resp := doJSON(t, ta.app, http.MethodGet, "/api/users/2", tokenFor(t, "associate"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user entity.User
	decodeInto(t, resp, &user)
	assert.Equal(t, "supervisor_user2@example.com", user.Email)

	resp = doJSON(t, ta.app, http.MethodGet, "/api/users/999", tokenFor(t, "associate"), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body dto.ErrorResponse
	decodeInto(t, resp, &body)
	assert.Equal(t, "USER_NOT_FOUND", body.Code)
}

// ─────────────────────────────────────────────────────────────────────────────
// Alta
// ─────────────────────────────────────────────────────────────────────────────

func TestUserHandler_CreateValido(t *testing.T) {
	ta := buildTestApp(t, true)

	resp := doJSON(t, ta.app, http.MethodPost, "/api/users", tokenFor(t, "admin"), formPayload("nuevo@example.com"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created entity.User
	decodeInto(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "nuevo@example.com", created.Email)
	require.Len(t, created.Addresses, 1)
	assert.NotEmpty(t, created.Addresses[0].ID)

	// Queda en la colección
	got, err := ta.userStore.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, got.Email)
}

// El rechazo de validación devuelve el mapa de errores completo: los tres
// errores de campo a la vez más el error posicional de la dirección.
func TestUserHandler_CreateInvalidoReportaTodo(t *testing.T) {
	ta := buildTestApp(t, true)

	payload := map[string]any{
		"fullName": "",
		"email":    "malformado",
		"phone":    "123",
		"role":     "associate",
		"addresses": []map[string]any{
			{"street": "", "city": "Dubai", "state": "DUBAI", "zipCode": "000005"},
		},
	}
	resp := doJSON(t, ta.app, http.MethodPost, "/api/users", tokenFor(t, "admin"), payload)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body dto.ValidationResponse
	decodeInto(t, resp, &body)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "Full name is required", body.Errors.FullName)
	assert.Equal(t, "Invalid email format", body.Errors.Email)
	assert.Equal(t, "Phone number must be at least 10 characters", body.Errors.Phone)
	require.Len(t, body.Errors.Addresses, 1)
	assert.Equal(t, "Street is required", body.Errors.Addresses[0].Street)
}

func TestUserHandler_CreateSinRol(t *testing.T) {
	ta := buildTestApp(t, true)

	payload := formPayload("sinrol@example.com")
	delete(payload, "role")

	resp := doJSON(t, ta.app, http.MethodPost, "/api/users", tokenFor(t, "admin"), payload)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body dto.ValidationResponse
	decodeInto(t, resp, &body)
	assert.Equal(t, "Role is required", body.Errors.Role)
}

func TestUserHandler_CreateRolDesconocido(t *testing.T) {
	ta := buildTestApp(t, true)

	payload := formPayload("rolraro@example.com")
	payload["role"] = "superuser"

	resp := doJSON(t, ta.app, http.MethodPost, "/api/users", tokenFor(t, "admin"), payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Un email ya tomado (incluso con otra capitalización) se reporta como error
// de validación del campo email, con el mensaje de conflicto.
func TestUserHandler_CreateEmailDuplicado(t *testing.T) {
	ta := buildTestApp(t, true)

	resp := doJSON(t, ta.app, http.MethodPost, "/api/users", tokenFor(t, "admin"), formPayload("ASSOCIATE_USER@example.com"))
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body dto.ValidationResponse
	decodeInto(t, resp, &body)
	assert.Equal(t, "Email already exists. Please use a different email address.", body.Errors.Email)
}

// ─────────────────────────────────────────────────────────────────────────────
// Edición
// ─────────────────────────────────────────────────────────────────────────────

func TestUserHandler_Update(t *testing.T) {
	ta := buildTestApp(t, true)

	payload := formPayload("associate_user@example.com")
	payload["fullName"] = "Associate Renombrado"

	resp := doJSON(t, ta.app, http.MethodPut, "/api/users/1", tokenFor(t, "admin"), payload)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated entity.User
	decodeInto(t, resp, &updated)
	assert.Equal(t, "Associate Renombrado", updated.FullName)
	assert.Equal(t, "1", updated.ID)
}

func TestUserHandler_UpdateEmailDeOtroUsuario(t *testing.T) {
	ta := buildTestApp(t, true)

	// Intentar poner al usuario 1 el email del usuario 2
	resp := doJSON(t, ta.app, http.MethodPut, "/api/users/1", tokenFor(t, "admin"), formPayload("supervisor_user2@example.com"))
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body dto.ValidationResponse
	decodeInto(t, resp, &body)
	assert.Equal(t, "Email already exists. Please use a different email address.", body.Errors.Email)
}

func TestUserHandler_UpdateIDInexistente(t *testing.T) {
	ta := buildTestApp(t, true)

	resp := doJSON(t, ta.app, http.MethodPut, "/api/users/999", tokenFor(t, "admin"), formPayload("ghost@example.com"))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body dto.ErrorResponse
	decodeInto(t, resp, &body)
	assert.Equal(t, "USER_NOT_FOUND", body.Code)
}

// ─────────────────────────────────────────────────────────────────────────────
// Borrado
// ─────────────────────────────────────────────────────────────────────────────

func TestUserHandler_Delete(t *testing.T) {
	ta := buildTestApp(t, true)

	resp := doJSON(t, ta.app, http.MethodDelete, "/api/users/2", tokenFor(t, "admin"), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, err := ta.userStore.FindByID("2")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	// Repetir el borrado ya no encuentra al usuario
	resp = doJSON(t, ta.app, http.MethodDelete, "/api/users/2", tokenFor(t, "admin"), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
