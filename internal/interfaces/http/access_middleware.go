package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/userdesk-api/internal/application/accesscontrol"
	"github.com/jhoicas/userdesk-api/internal/application/dto"
	"github.com/jhoicas/userdesk-api/internal/domain/entity"
)

// identityResolver contrato mínimo que necesita el middleware para resolver la
// identidad del token. Lo implementa *auth.SessionManager; la interfaz evita
// el import circular y simplifica los tests.
type identityResolver interface {
	Ready() bool
	Resolve(id string) *entity.User
}

// RequireAuth exige identidad autenticada y válida (sin rol ni permiso
// concreto). Debe usarse DESPUÉS de AuthMiddleware.
func RequireAuth(resolver identityResolver) fiber.Handler {
	return requireAccess(resolver, accesscontrol.Requirement{})
}

// RequireRole exige un rol concreto. Admin pasa siempre; supervisor hereda las
// rutas que requieren associate. Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(resolver identityResolver, role string) fiber.Handler {
	return requireAccess(resolver, accesscontrol.Requirement{Role: role})
}

// RequirePermission exige una capacidad (canAdd/canEdit/canView) derivada del
// rol de la identidad. Debe usarse DESPUÉS de AuthMiddleware.
func RequirePermission(resolver identityResolver, permission string) fiber.Handler {
	return requireAccess(resolver, accesscontrol.Requirement{Permission: permission})
}

// requireAccess evalúa la máquina de estados del gate y mapea la decisión a
// una respuesta HTTP. El usuario resuelto queda en c.Locals para el handler.
func requireAccess(resolver identityResolver, req accesscontrol.Requirement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := resolver.Resolve(GetUserID(c))

		switch accesscontrol.Decide(resolver.Ready(), user, req) {
		case accesscontrol.DecisionChecking:
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code: "CHECKING_AUTH", Message: "verificando autenticación, reintente",
			})
		case accesscontrol.DecisionLogin:
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "UNAUTHORIZED", Message: "identidad no válida, inicie sesión", From: c.OriginalURL(),
			})
		case accesscontrol.DecisionForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code: "FORBIDDEN", Message: "acceso denegado para este rol",
			})
		}

		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// CurrentUser devuelve el usuario resuelto por el gate (después de
// RequireAuth/RequireRole/RequirePermission).
func CurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
