package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Lavadero-api/internal/application/reports"
	"github.com/rs/zerolog/log"
)

// DashboardHandler expone las estadísticas del panel (protegido).
type DashboardHandler struct {
	uc *reports.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *reports.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Estadísticas del panel
// @Description  Totales de vehículos, paquetes, servicios e ingresos, más los servicios recientes.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.GetStats(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("estadísticas del panel")
		return c.Status(fiber.StatusInternalServerError).JSON(internalErrorBody)
	}
	return c.JSON(out)
}
