package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/userdesk-api/internal/application/dto"
	"github.com/jhoicas/userdesk-api/internal/application/usecase"
)

// DashboardHandler maneja el resumen del dashboard.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve estadísticas del sistema y actividad reciente.
// GET /api/dashboard
//
// Las estadísticas se recalculan en el momento desde la colección de usuarios;
// las actividades salen del log persistido (máximo 10, la más nueva primero).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
