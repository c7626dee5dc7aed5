// Package validation valida el formulario de perfil de usuario.
//
// Validate es una función pura: mismo input, mismo mapa de errores, sin efectos.
// Las reglas se evalúan todas, sin cortocircuito entre campos, para reportar
// simultáneamente cada violación.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/userdesk-api/internal/application/dto"
)

// Mode modo del formulario; el rol solo se exige en create/edit.
type Mode string

// Modos del formulario.
const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
	ModeView   Mode = "view"
)

// Options parámetros del llamador para Validate.
type Options struct {
	Mode Mode
	// RequireRole indica que el formulario incluye selección de rol.
	RequireRole bool
	// EmailInUse sonda externa de unicidad: devuelve un mensaje no vacío si el
	// email ya está tomado. Así se inyecta la detección de duplicados sin que
	// el validador deje de ser puro respecto de sus entradas.
	EmailInUse func(email string) string
}

// Mensajes de validación. Textos fijos del producto: se pintan junto al campo.
const (
	MsgFullNameRequired = "Full name is required"
	MsgEmailRequired    = "Email is required"
	MsgEmailInvalid     = "Invalid email format"
	MsgPhoneRequired    = "Phone number is required"
	MsgPhoneTooShort    = "Phone number must be at least 10 characters"
	MsgRoleRequired     = "Role is required"
	MsgStreetRequired   = "Street is required"
	MsgCityRequired     = "City is required"
	MsgStateRequired    = "State is required"
	MsgZipCodeRequired  = "Zip code is required"
)

// emailPattern local@dominio.tld: corridas sin espacios ni '@', una arroba y un punto.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate calcula el mapa de errores del formulario. Una lista de direcciones
// vacía no produce errores de dirección (la comprobación por índice es vacua).
func Validate(form dto.UserFormData, opts Options) dto.FormErrors {
	var errs dto.FormErrors

	if strings.TrimSpace(form.FullName) == "" {
		errs.FullName = MsgFullNameRequired
	}

	switch {
	case strings.TrimSpace(form.Email) == "":
		errs.Email = MsgEmailRequired
	case !emailPattern.MatchString(form.Email):
		errs.Email = MsgEmailInvalid
	case opts.EmailInUse != nil:
		if msg := opts.EmailInUse(form.Email); msg != "" {
			errs.Email = msg
		}
	}

	phone := strings.TrimSpace(form.Phone)
	switch {
	case phone == "":
		errs.Phone = MsgPhoneRequired
	case utf8.RuneCountInString(phone) < 10:
		errs.Phone = MsgPhoneTooShort
	}

	if opts.RequireRole && (opts.Mode == ModeCreate || opts.Mode == ModeEdit) && form.Role == "" {
		errs.Role = MsgRoleRequired
	}

	if len(form.Addresses) > 0 {
		errs.Addresses = make([]dto.AddressErrors, len(form.Addresses))
		for i, addr := range form.Addresses {
			if strings.TrimSpace(addr.Street) == "" {
				errs.Addresses[i].Street = MsgStreetRequired
			}
			if strings.TrimSpace(addr.City) == "" {
				errs.Addresses[i].City = MsgCityRequired
			}
			if strings.TrimSpace(addr.State) == "" {
				errs.Addresses[i].State = MsgStateRequired
			}
			if strings.TrimSpace(addr.ZipCode) == "" {
				errs.Addresses[i].ZipCode = MsgZipCodeRequired
			}
		}
	}

	return errs
}
