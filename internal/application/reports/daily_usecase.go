// Package reports contiene los casos de uso de reportería: el reporte diario
// de ingresos y las estadísticas del dashboard.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Lavadero-api/internal/application/dto"
	"github.com/jhoicas/Lavadero-api/internal/domain"
	"github.com/jhoicas/Lavadero-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DateLayout formato de fecha aceptado en ?date= (ISO 8601 calendario).
const DateLayout = "2006-01-02"

// DailyReportUseCase calcula el reporte de ingresos de un día calendario.
//
// La ventana del día es [00:00:00.000, 23:59:59.999], cerrada en ambos
// extremos: un pago con timestamp exactamente a medianoche del día siguiente
// queda fuera; uno a las 23:59:59.999 del día consultado entra.
type DailyReportUseCase struct {
	reportRepo repository.ReportRepository
	now        func() time.Time // inyectable para tests
}

// NewDailyReportUseCase construye el caso de uso.
func NewDailyReportUseCase(reportRepo repository.ReportRepository) *DailyReportUseCase {
	return &DailyReportUseCase{reportRepo: reportRepo, now: time.Now}
}

// DayWindow devuelve los extremos cerrados de la ventana del día que contiene
// a t, en la zona horaria de t.
func DayWindow(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end = start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

// Get genera el reporte del día indicado. dateStr es opcional (YYYY-MM-DD);
// vacío significa "hoy" en hora local del servidor. Un día sin pagos produce
// totales en cero y reports=[], no un error.
func (uc *DailyReportUseCase) Get(ctx context.Context, dateStr string) (*dto.DailyReportResponse, error) {
	day := uc.now()
	if dateStr != "" {
		parsed, err := time.ParseInLocation(DateLayout, dateStr, day.Location())
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		day = parsed
	}
	start, end := DayWindow(day)

	payments, err := uc.reportRepo.FindPaymentsInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("reporte diario: pagos del día: %w", err)
	}

	total := decimal.Zero
	items := make([]dto.PaymentDetailResponse, 0, len(payments))
	for _, p := range payments {
		total = total.Add(p.Payment.AmountPaid)
		items = append(items, dto.FromPaymentJoined(p))
	}

	return &dto.DailyReportResponse{
		Date:         start.Format(DateLayout),
		TotalRevenue: total,
		Count:        len(payments),
		Reports:      items,
	}, nil
}
