package entity

import "fmt"

// Permission capacidades derivadas de un rol.
type Permission struct {
	CanAdd  bool `json:"canAdd"`
	CanEdit bool `json:"canEdit"`
	CanView bool `json:"canView"`
}

// rolePermissions tabla estática rol → capacidades, inmutable durante el proceso.
var rolePermissions = map[string]Permission{
	RoleAdmin:      {CanAdd: true, CanEdit: true, CanView: true},
	RoleSupervisor: {CanAdd: false, CanEdit: true, CanView: true},
	RoleAssociate:  {CanAdd: false, CanEdit: false, CanView: true},
}

// PermissionsFor devuelve las capacidades del rol. Función total sobre el conjunto
// cerrado de roles; un rol desconocido aquí es un bug de construcción y se falla
// ruidosamente en vez de devolver un Permission vacío silencioso.
func PermissionsFor(role string) Permission {
	p, ok := rolePermissions[role]
	if !ok {
		panic(fmt.Sprintf("entity: rol desconocido %q en tabla de permisos", role))
	}
	return p
}
