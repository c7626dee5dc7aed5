package repository

import "github.com/jhoicas/userdesk-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para la colección de usuarios (DIP).
// La colección se persiste completa en cada mutación: el almacén es un key/value
// local con la lista entera bajo una sola clave, no una tabla por registro.
type UserRepository interface {
	// LoadAll devuelve la colección persistida. found=false cuando la clave no
	// existe (o el contenido estaba corrupto y fue descartado).
	LoadAll() (users []entity.User, found bool, err error)
	SaveAll(users []entity.User) error
}
