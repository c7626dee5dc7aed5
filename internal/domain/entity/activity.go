package entity

// Tipos de Activity registrados por el sistema.
const (
	ActivityUserCreated  = "user_created"
	ActivityUserUpdated  = "user_updated"
	ActivityUserDeleted  = "user_deleted"
	ActivityUserLoggedIn = "user_logged_in"
)

// MaxRecentActivities tope del log de actividad: solo se retienen las 10 más
// recientes, la más nueva primero.
const MaxRecentActivities = 10

// Activity entrada de auditoría append-only; nunca se edita, solo se desaloja
// por capacidad.
type Activity struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Timestamp   int64  `json:"timestamp"` // epoch millis
	UserID      string `json:"userId,omitempty"`
	UserName    string `json:"userName,omitempty"`
}

// SystemStats agregado derivado de la colección de usuarios. Es solo un caché:
// se recalcula bajo demanda y nunca es fuente de verdad.
type SystemStats struct {
	TotalUsers        int    `json:"totalUsers"`
	ActiveUsers       int    `json:"activeUsers"`
	NewUsersThisMonth int    `json:"newUsersThisMonth"`
	SystemStatus      string `json:"systemStatus"`
}
