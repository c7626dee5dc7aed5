package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/userdesk-api/internal/application/accesscontrol"
	appauth "github.com/jhoicas/userdesk-api/internal/application/auth"
	"github.com/jhoicas/userdesk-api/internal/application/usecase"
	"github.com/jhoicas/userdesk-api/internal/domain/entity"
	"github.com/jhoicas/userdesk-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sessions    *appauth.SessionManager
	UserStore   *usecase.UserStore
	DashboardUC *usecase.DashboardUseCase
	JWT         config.JWTConfig
}

// Router registra las rutas de la API. Los requisitos por ruta replican el
// mapa de navegación del producto: listar/ver exige canView, crear canAdd,
// editar canEdit y eliminar es exclusivo de admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.Sessions, deps.JWT)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token + gate de acceso)
	protected := api.Group("/", AuthMiddleware(deps.JWT.Secret))

	authGroup.Post("/logout", AuthMiddleware(deps.JWT.Secret), RequireAuth(deps.Sessions), authHandler.Logout)

	// Perfil propio (protegido, sin rol ni permiso concreto)
	profileHandler := NewProfileHandler(deps.UserStore)
	protected.Get("/me", RequireAuth(deps.Sessions), profileHandler.Me)
	protected.Put("/me", RequireAuth(deps.Sessions), profileHandler.UpdateMe)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", RequireAuth(deps.Sessions), dashboardHandler.GetSummary)

	// Users (protegido, gate por permiso/rol)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserStore)
	users.Get("/", RequirePermission(deps.Sessions, accesscontrol.PermCanView), userHandler.List)
	users.Post("/", RequirePermission(deps.Sessions, accesscontrol.PermCanAdd), userHandler.Create)
	users.Get("/:id", RequirePermission(deps.Sessions, accesscontrol.PermCanView), userHandler.GetByID)
	users.Put("/:id", RequirePermission(deps.Sessions, accesscontrol.PermCanEdit), userHandler.Update)
	users.Delete("/:id", RequireRole(deps.Sessions, entity.RoleAdmin), userHandler.Delete)
}
