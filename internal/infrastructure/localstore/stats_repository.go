package localstore

import "github.com/jhoicas/userdesk-api/internal/domain/entity"

// StatsRepository persiste el caché de SystemStats bajo KeyStats.
type StatsRepository struct {
	store *Store
}

// NewStatsRepository construye el repositorio de estadísticas.
func NewStatsRepository(store *Store) *StatsRepository {
	return &StatsRepository{store: store}
}

// Save escribe el caché.
func (r *StatsRepository) Save(s entity.SystemStats) error {
	return r.store.put(KeyStats, s)
}

// Load lee el último caché escrito; found=false si nunca se ha calculado.
func (r *StatsRepository) Load() (entity.SystemStats, bool, error) {
	var s entity.SystemStats
	found, err := r.store.get(KeyStats, &s)
	return s, found, err
}
