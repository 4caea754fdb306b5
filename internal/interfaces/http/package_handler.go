package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Lavadero-api/internal/application/dto"
	"github.com/jhoicas/Lavadero-api/internal/application/usecase"
	"github.com/jhoicas/Lavadero-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// PackageHandler maneja las peticiones HTTP para WashPackage (protegido).
type PackageHandler struct {
	uc *usecase.PackageUseCase
}

// NewPackageHandler construye el handler.
func NewPackageHandler(uc *usecase.PackageUseCase) *PackageHandler {
	return &PackageHandler{uc: uc}
}

// Create godoc
// @Summary      Crear paquete de lavado
// @Tags         packages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePackageRequest  true  "Datos del paquete"
// @Success      201   {object}  dto.PackageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/packages [post]
func (h *PackageHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePackageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.PackageName == "" || in.PackagePrice == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "packageName y packagePrice son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "packagePrice no puede ser negativo"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el paquete ya existe"})
		}
		log.Error().Err(err).Msg("crear paquete")
		return c.Status(fiber.StatusInternalServerError).JSON(internalErrorBody)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar paquetes de lavado
// @Tags         packages
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PackageResponse
// @Router       /api/packages [get]
func (h *PackageHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		log.Error().Err(err).Msg("listar paquetes")
		return c.Status(fiber.StatusInternalServerError).JSON(internalErrorBody)
	}
	return c.JSON(out)
}
