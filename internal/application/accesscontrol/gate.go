// Package accesscontrol decide el acceso a rutas protegidas.
//
// La decisión es una máquina de estados ordenada: restauración pendiente,
// sin identidad, identidad sin usuario válido, rol, permiso, acceso. El orden
// es normativo: el chequeo de permiso solo aplica cuando ningún chequeo de rol
// falló antes, y el bypass de admin es absoluto.
package accesscontrol

import "github.com/jhoicas/userdesk-api/internal/domain/entity"

// Decision resultado de evaluar una navegación.
type Decision int

// Decisiones posibles, en orden de evaluación.
const (
	// DecisionChecking la restauración de sesión no ha terminado: estado
	// transitorio, aún sin redirección.
	DecisionChecking Decision = iota
	// DecisionLogin sin identidad utilizable: redirigir a login recordando la
	// ubicación original.
	DecisionLogin
	// DecisionForbidden identidad válida pero sin el rol o permiso requerido.
	DecisionForbidden
	// DecisionAllow renderizar el contenido protegido.
	DecisionAllow
)

// Permisos requeribles por una ruta.
const (
	PermCanAdd  = "canAdd"
	PermCanEdit = "canEdit"
	PermCanView = "canView"
)

// Requirement lo que exige la ruta: un rol o un permiso, nunca ambos.
type Requirement struct {
	Role       string
	Permission string
}

// anyRole comodín en la tabla de reglas.
const anyRole = "*"

// roleRule regla (rol de la identidad, rol requerido) → permitir.
// La tabla se evalúa de arriba hacia abajo; sin coincidencia se deniega.
type roleRule struct {
	identity string
	required string
}

// roleOverrides excepciones a la igualdad exacta de roles: admin accede a todo
// y supervisor hereda las rutas que requieren associate.
var roleOverrides = []roleRule{
	{identity: entity.RoleAdmin, required: anyRole},
	{identity: entity.RoleSupervisor, required: entity.RoleAssociate},
}

// Decide evalúa la navegación. ready indica si la restauración de sesión
// terminó; user es la identidad resuelta (nil si no hay o no corresponde a un
// usuario conocido). Primer estado que aplica gana.
func Decide(ready bool, user *entity.User, req Requirement) Decision {
	if !ready {
		return DecisionChecking
	}
	if user == nil {
		return DecisionLogin
	}
	if req.Role != "" && user.Role != req.Role {
		if !roleOverrideAllows(user.Role, req.Role) {
			return DecisionForbidden
		}
		return DecisionAllow
	}
	if req.Permission != "" && !hasPermission(entity.PermissionsFor(user.Role), req.Permission) {
		return DecisionForbidden
	}
	return DecisionAllow
}

func roleOverrideAllows(identityRole, requiredRole string) bool {
	for _, rule := range roleOverrides {
		if rule.identity != identityRole {
			continue
		}
		if rule.required == anyRole || rule.required == requiredRole {
			return true
		}
	}
	return false
}

func hasPermission(p entity.Permission, name string) bool {
	switch name {
	case PermCanAdd:
		return p.CanAdd
	case PermCanEdit:
		return p.CanEdit
	case PermCanView:
		return p.CanView
	}
	return false
}
