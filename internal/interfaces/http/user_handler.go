package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/userdesk-api/internal/application/dto"
	"github.com/jhoicas/userdesk-api/internal/application/usecase"
	"github.com/jhoicas/userdesk-api/internal/application/validation"
	"github.com/jhoicas/userdesk-api/internal/domain"
	"github.com/jhoicas/userdesk-api/internal/domain/entity"
)

// emailExistsMsg mensaje que la sonda de unicidad devuelve al validador.
const emailExistsMsg = "Email already exists. Please use a different email address."

// UserHandler maneja el CRUD de usuarios.
type UserHandler struct {
	store *usecase.UserStore
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(store *usecase.UserStore) *UserHandler {
	return &UserHandler{store: store}
}

// emailInUse sonda de unicidad para el validador; excludeID permite editar un
// usuario sin que su propio email cuente como conflicto.
func (h *UserHandler) emailInUse(excludeID string) func(string) string {
	return func(email string) string {
		if h.store.EmailExists(email, excludeID) {
			return emailExistsMsg
		}
		return ""
	}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Produce      json
// @Success      200  {array}  entity.User
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.store.List())
}

// GetByID godoc
// @Summary      Obtener usuario por id
// @Tags         users
// @Produce      json
// @Success      200  {object}  entity.User
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	user, err := h.store.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(user)
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserFormData  true  "perfil con al menos una dirección"
// @Success      201   {object}  entity.User
// @Failure      422   {object}  dto.ValidationResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var form dto.UserFormData
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if form.Role != "" && !entity.ValidRole(form.Role) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rol desconocido"})
	}

	errs := validation.Validate(form, validation.Options{
		Mode:        validation.ModeCreate,
		RequireRole: true,
		EmailInUse:  h.emailInUse(""),
	})
	if !errs.Valid() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationResponse{Code: "VALIDATION", Errors: errs})
	}

	// Re-chequeo síncrono en el submit: cubre la carrera entre la validación
	// por tecla y el estado al momento de enviar.
	if h.store.EmailExists(form.Email, "") {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: emailExistsMsg})
	}

	user, err := h.store.Add(form)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserFormData  true  "campos a fusionar"
// @Success      200   {object}  entity.User
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var form dto.UserFormData
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if form.Role != "" && !entity.ValidRole(form.Role) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rol desconocido"})
	}

	errs := validation.Validate(form, validation.Options{
		Mode:        validation.ModeEdit,
		RequireRole: true,
		EmailInUse:  h.emailInUse(id),
	})
	if !errs.Valid() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationResponse{Code: "VALIDATION", Errors: errs})
	}

	if h.store.EmailExists(form.Email, id) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: emailExistsMsg})
	}

	user, found, err := h.store.Update(id, form)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if !found {
		// El almacén trata el id ausente como no-op; en HTTP sí lo reportamos.
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(user)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         users
// @Produce      json
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	found, err := h.store.Delete(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
