package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// From URL originalmente solicitada, para volver tras el login.
	From string `json:"from,omitempty"`
}

// ValidationResponse cuerpo de rechazo de formulario: el mapa de errores
// completo para pintarlos junto a cada campo.
type ValidationResponse struct {
	Code   string     `json:"code"`
	Errors FormErrors `json:"errors"`
}
