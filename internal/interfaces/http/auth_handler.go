package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/userdesk-api/internal/application/auth"
	"github.com/jhoicas/userdesk-api/internal/application/dto"
	"github.com/jhoicas/userdesk-api/internal/domain"
	"github.com/jhoicas/userdesk-api/pkg/config"
	"github.com/jhoicas/userdesk-api/pkg/jwt"
)

// AuthHandler maneja login y logout.
type AuthHandler struct {
	sessions *auth.SessionManager
	jwtCfg   config.JWTConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(sessions *auth.SessionManager, jwtCfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{sessions: sessions, jwtCfg: jwtCfg}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username es requerido"})
	}

	user, err := h.sessions.Login(in.Username, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	token, err := jwt.Generate(h.jwtCfg.Secret, user.ID, user.Role, h.jwtCfg.Issuer, h.jwtCfg.Expiration)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	return c.JSON(dto.LoginResponse{Token: token, User: user})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Logout()
	return c.SendStatus(fiber.StatusNoContent)
}
