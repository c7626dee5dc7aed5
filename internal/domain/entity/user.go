package entity

import "time"

// Roles válidos para User. Conjunto cerrado: toda autorización se deriva de aquí.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleAssociate  = "associate"
)

// ValidRole reporta si role pertenece al conjunto cerrado de roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSupervisor, RoleAssociate:
		return true
	}
	return false
}

// Address dirección postal de un usuario. El ID se asigna a más tardar al persistir;
// antes de eso puede venir vacío desde el formulario.
type Address struct {
	ID      string `json:"id,omitempty"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// User representa un perfil de usuario del sistema.
// El ID es inmutable después de la creación. La unicidad del email (case-insensitive)
// se exige en la frontera de validación, no en el almacén.
type User struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Addresses []Address `json:"addresses"`
	Role      string    `json:"role"` // admin, supervisor, associate
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// IsActive es opcional: ausente (nil) cuenta como activo.
	IsActive *bool `json:"isActive,omitempty"`
}

// Active reporta si el usuario cuenta como activo (solo false explícito lo desactiva).
func (u User) Active() bool {
	return u.IsActive == nil || *u.IsActive
}
