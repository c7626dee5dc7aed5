package localstore

import "github.com/jhoicas/userdesk-api/internal/domain/entity"

// SessionRepository persiste la identidad de la sesión actual bajo KeySessionUser.
type SessionRepository struct {
	store *Store
}

// NewSessionRepository construye el repositorio de sesión.
func NewSessionRepository(store *Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// Load lee la identidad persistida; found=false si no hay sesión guardada.
func (r *SessionRepository) Load() (entity.User, bool, error) {
	var u entity.User
	found, err := r.store.get(KeySessionUser, &u)
	return u, found, err
}

// Save persiste la identidad actual.
func (r *SessionRepository) Save(u entity.User) error {
	return r.store.put(KeySessionUser, u)
}

// Clear elimina la identidad persistida.
func (r *SessionRepository) Clear() error {
	return r.store.delete(KeySessionUser)
}
