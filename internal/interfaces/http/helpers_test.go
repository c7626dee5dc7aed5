package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	appauth "github.com/jhoicas/userdesk-api/internal/application/auth"
	"github.com/jhoicas/userdesk-api/internal/application/usecase"
	"github.com/jhoicas/userdesk-api/internal/infrastructure/localstore"
	httpiface "github.com/jhoicas/userdesk-api/internal/interfaces/http"
	"github.com/jhoicas/userdesk-api/pkg/config"
	"github.com/jhoicas/userdesk-api/pkg/jwt"
	"github.com/jhoicas/userdesk-api/pkg/logger"
)

var testJWT = config.JWTConfig{
	Secret:     "test-secret",
	Expiration: 60,
	Issuer:     "userdesk-test",
}

// testApp app Fiber completa sobre un almacén temporal, cableada como en main.
type testApp struct {
	app       *fiber.App
	sessions  *appauth.SessionManager
	userStore *usecase.UserStore
}

// buildTestApp monta el router con dependencias reales sobre bbolt en un
// directorio temporal. restore controla si la restauración de sesión corre
// antes de atender tráfico (como hace main) o se deja pendiente.
func buildTestApp(t *testing.T, restore bool) *testApp {
	t.Helper()

	store, err := localstore.Open(filepath.Join(t.TempDir(), "store.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	userStore, err := usecase.NewUserStore(
		localstore.NewUserRepository(store),
		localstore.NewActivityRepository(store),
		localstore.NewStatsRepository(store),
		logger.Nop(),
	)
	require.NoError(t, err)

	sessions := appauth.NewSessionManager(
		localstore.NewSessionRepository(store),
		localstore.NewActivityRepository(store),
		logger.Nop(),
	)
	if restore {
		sessions.Restore()
	}

	app := fiber.New()
	httpiface.Router(app, httpiface.RouterDeps{
		Sessions:    sessions,
		UserStore:   userStore,
		DashboardUC: usecase.NewDashboardUseCase(userStore, localstore.NewActivityRepository(store)),
		JWT:         testJWT,
	})
	return &testApp{app: app, sessions: sessions, userStore: userStore}
}

// tokenFor genera un Bearer Token para una de las identidades demo.
func tokenFor(t *testing.T, role string) string {
	t.Helper()

	ids := map[string]string{"admin": "1", "supervisor": "2", "associate": "3"}
	id, ok := ids[role]
	require.True(t, ok, "rol demo desconocido: %s", role)

	token, err := jwt.Generate(testJWT.Secret, id, role, testJWT.Issuer, testJWT.Expiration)
	require.NoError(t, err)
	return token
}

// doJSON ejecuta una petición contra la app; body nil envía sin cuerpo y
// token vacío omite el header Authorization.
func doJSON(t *testing.T, app *fiber.App, method, target, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// formPayload formulario de usuario completo y válido, listo para enviar.
func formPayload(email string) map[string]any {
	return map[string]any{
		"fullName": "Test User",
		"email":    email,
		"phone":    "+971 9999999996",
		"role":     "associate",
		"addresses": []map[string]any{
			{"street": "VILLA NO 5", "city": "Dubai", "state": "DUBAI", "zipCode": "000005"},
		},
	}
}

// decodeInto deserializa el cuerpo de la respuesta en dest.
func decodeInto(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}
