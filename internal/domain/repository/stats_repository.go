package repository

import "github.com/jhoicas/userdesk-api/internal/domain/entity"

// StatsRepository puerto para el caché de SystemStats. Solo escritura de caché:
// las estadísticas se recalculan siempre desde la colección de usuarios y lo
// persistido nunca es autoridad.
type StatsRepository interface {
	Save(s entity.SystemStats) error
	Load() (s entity.SystemStats, found bool, err error)
}
