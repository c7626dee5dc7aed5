package repository

import "github.com/jhoicas/userdesk-api/internal/domain/entity"

// SessionRepository puerto para la identidad persistida de la sesión actual.
type SessionRepository interface {
	Load() (u entity.User, found bool, err error)
	Save(u entity.User) error
	Clear() error
}
