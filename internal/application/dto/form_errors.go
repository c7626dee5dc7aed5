package dto

// AddressErrors errores de una dirección, por campo. Un struct vacío significa
// que esa dirección no tiene errores.
type AddressErrors struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
}

// Empty reporta si la dirección no tiene ningún error.
func (a AddressErrors) Empty() bool {
	return a.Street == "" && a.City == "" && a.State == "" && a.ZipCode == ""
}

// FormErrors mapa de errores del formulario de perfil: por campo y, para las
// direcciones, por posición en la secuencia.
type FormErrors struct {
	FullName  string          `json:"fullName,omitempty"`
	Email     string          `json:"email,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	Role      string          `json:"role,omitempty"`
	Addresses []AddressErrors `json:"addresses,omitempty"`
}

// Valid reporta si el formulario puede aceptarse: sin errores de campo y sin
// ninguna dirección con errores. Una lista de direcciones vacía es válida aquí
// (la comprobación por dirección es vacua sobre una secuencia vacía).
func (e FormErrors) Valid() bool {
	if e.FullName != "" || e.Email != "" || e.Phone != "" || e.Role != "" {
		return false
	}
	for _, a := range e.Addresses {
		if !a.Empty() {
			return false
		}
	}
	return true
}
