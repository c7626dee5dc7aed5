package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/userdesk-api/internal/application/dto"
	"github.com/jhoicas/userdesk-api/internal/application/usecase"
	"github.com/jhoicas/userdesk-api/internal/application/validation"
)

// ProfileHandler maneja el perfil del usuario autenticado.
type ProfileHandler struct {
	store *usecase.UserStore
}

// NewProfileHandler construye el handler de perfil.
func NewProfileHandler(store *usecase.UserStore) *ProfileHandler {
	return &ProfileHandler{store: store}
}

// Me godoc
// @Summary      Perfil propio
// @Tags         profile
// @Produce      json
// @Success      200  {object}  entity.User
// @Router       /api/me [get]
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	return c.JSON(CurrentUser(c))
}

// UpdateMe godoc
// @Summary      Editar perfil propio
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserFormData  true  "campos del perfil (sin rol)"
// @Success      200   {object}  entity.User
// @Failure      422   {object}  dto.ValidationResponse
// @Router       /api/me [put]
func (h *ProfileHandler) UpdateMe(c *fiber.Ctx) error {
	current := CurrentUser(c)

	var form dto.UserFormData
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// El perfil propio no expone selector de rol.
	form.Role = ""

	emailInUse := func(email string) string {
		if h.store.EmailExists(email, current.ID) {
			return emailExistsMsg
		}
		return ""
	}
	errs := validation.Validate(form, validation.Options{
		Mode:       validation.ModeEdit,
		EmailInUse: emailInUse,
	})
	if !errs.Valid() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationResponse{Code: "VALIDATION", Errors: errs})
	}

	if h.store.EmailExists(form.Email, current.ID) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: emailExistsMsg})
	}

	user, found, err := h.store.Update(current.ID, form)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if !found {
		// Las cuentas demo no forman parte de la colección de usuarios.
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "el perfil no está en la colección de usuarios"})
	}
	return c.JSON(user)
}
