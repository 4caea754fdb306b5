package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Lavadero-api/internal/application/dto"
	"github.com/jhoicas/Lavadero-api/internal/application/usecase"
	"github.com/jhoicas/Lavadero-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// CarHandler maneja las peticiones HTTP para Car (protegido).
type CarHandler struct {
	uc *usecase.CarUseCase
}

// NewCarHandler construye el handler.
func NewCarHandler(uc *usecase.CarUseCase) *CarHandler {
	return &CarHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar vehículo
// @Tags         cars
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCarRequest  true  "Datos del vehículo"
// @Success      201   {object}  dto.CarResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cars [post]
func (h *CarHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.PlateNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "plateNumber es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la placa ya está registrada"})
		}
		log.Error().Err(err).Msg("registrar vehículo")
		return c.Status(fiber.StatusInternalServerError).JSON(internalErrorBody)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar vehículos
// @Tags         cars
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CarResponse
// @Router       /api/cars [get]
func (h *CarHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		log.Error().Err(err).Msg("listar vehículos")
		return c.Status(fiber.StatusInternalServerError).JSON(internalErrorBody)
	}
	return c.JSON(out)
}
