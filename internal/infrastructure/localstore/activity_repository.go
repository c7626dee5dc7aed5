package localstore

import "github.com/jhoicas/userdesk-api/internal/domain/entity"

// ActivityRepository persiste el log de actividad bajo KeyActivities.
type ActivityRepository struct {
	store *Store
}

// NewActivityRepository construye el repositorio de actividad.
func NewActivityRepository(store *Store) *ActivityRepository {
	return &ActivityRepository{store: store}
}

// Recent devuelve las entradas persistidas, la más nueva primero.
func (r *ActivityRepository) Recent() ([]entity.Activity, error) {
	var activities []entity.Activity
	if _, err := r.store.get(KeyActivities, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// Push antepone la entrada y trunca a entity.MaxRecentActivities.
func (r *ActivityRepository) Push(a entity.Activity) error {
	current, err := r.Recent()
	if err != nil {
		return err
	}
	if len(current) > entity.MaxRecentActivities-1 {
		current = current[:entity.MaxRecentActivities-1]
	}
	updated := append([]entity.Activity{a}, current...)
	return r.store.put(KeyActivities, updated)
}
