package repository

import "github.com/jhoicas/userdesk-api/internal/domain/entity"

// ActivityRepository puerto para el log de actividad del dashboard.
// El log es append-only desde el punto de vista del llamador; la retención
// (las entity.MaxRecentActivities más recientes, la más nueva primero) es
// parte del contrato de la clave persistida.
type ActivityRepository interface {
	Recent() ([]entity.Activity, error)
	// Push antepone la entrada y trunca al tope de retención.
	Push(a entity.Activity) error
}
