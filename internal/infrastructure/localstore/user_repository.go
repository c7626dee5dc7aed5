package localstore

import "github.com/jhoicas/userdesk-api/internal/domain/entity"

// UserRepository persiste la colección completa de usuarios bajo KeyUsers.
type UserRepository struct {
	store *Store
}

// NewUserRepository construye el repositorio de usuarios.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// LoadAll devuelve la colección persistida; found=false si la clave no existe
// o su contenido fue descartado por corrupto.
func (r *UserRepository) LoadAll() ([]entity.User, bool, error) {
	var users []entity.User
	found, err := r.store.get(KeyUsers, &users)
	if err != nil || !found {
		return nil, false, err
	}
	return users, true, nil
}

// SaveAll reemplaza la colección persistida.
func (r *UserRepository) SaveAll(users []entity.User) error {
	return r.store.put(KeyUsers, users)
}
