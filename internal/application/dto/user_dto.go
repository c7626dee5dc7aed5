package dto

import "github.com/jhoicas/userdesk-api/internal/domain/entity"

// AddressInput dirección tal como llega del formulario. El ID solo viene en
// edición, cuando la dirección ya fue persistida.
type AddressInput struct {
	ID      string `json:"id,omitempty"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// UserFormData entrada del formulario de perfil (crear/editar). Contrato de
// actualización parcial explícito: solo estos campos se fusionan sobre el
// registro existente; cualquier otro campo del JSON entrante se ignora.
type UserFormData struct {
	FullName  string         `json:"fullName"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Addresses []AddressInput `json:"addresses"`
	Role      string         `json:"role,omitempty"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// DashboardResponse estadísticas más actividad reciente.
type DashboardResponse struct {
	Stats            entity.SystemStats `json:"stats"`
	RecentActivities []entity.Activity  `json:"recentActivities"`
}
