package domain

import "errors"

// Errores centinela del dominio (sin dependencias externas). Las capas de
// aplicación los devuelven y la capa HTTP los mapea con errors.Is a códigos
// de respuesta.
var (
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrUnauthorized = errors.New("no autorizado")
)
