package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Lavadero-api/internal/application/dto"
	"github.com/jhoicas/Lavadero-api/internal/application/reports"
	"github.com/jhoicas/Lavadero-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// ReportHandler expone el reporte diario de ingresos (protegido).
type ReportHandler struct {
	daily *reports.DailyReportUseCase
	pdf   *reports.PDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(daily *reports.DailyReportUseCase, pdf *reports.PDFUseCase) *ReportHandler {
	return &ReportHandler{daily: daily, pdf: pdf}
}

// Daily godoc
// @Summary      Reporte diario de ingresos
// @Description  Pagos del día indicado (o del día actual si no se envía fecha), con total y conteo.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Fecha en formato YYYY-MM-DD"
// @Success      200   {object}  dto.DailyReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/daily [get]
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	out, err := h.daily.Get(c.Context(), c.Query("date"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "fecha inválida, use YYYY-MM-DD"})
		}
		log.Error().Err(err).Msg("reporte diario")
		return c.Status(fiber.StatusInternalServerError).JSON(internalErrorBody)
	}
	return c.JSON(out)
}

// DailyPDF godoc
// @Summary      Descargar el reporte diario en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        date  query  string  false  "Fecha en formato YYYY-MM-DD"
// @Success      200   {file}    file
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/daily/pdf [get]
func (h *ReportHandler) DailyPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.DownloadDailyReportPDF(c.Context(), c.Query("date"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "fecha inválida, use YYYY-MM-DD"})
		}
		log.Error().Err(err).Msg("reporte diario pdf")
		return c.Status(fiber.StatusInternalServerError).JSON(internalErrorBody)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}
