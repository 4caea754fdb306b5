package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Lavadero-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el reporte diario y el dashboard.
type ReportRepo struct {
	db DB
}

// NewReportRepository construye el adaptador de reportería.
func NewReportRepository(db DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// FindPaymentsInRange devuelve los pagos con payment_date dentro de [start, end].
// BETWEEN es inclusivo en ambos extremos, que es exactamente la semántica de la
// ventana del día: 23:59:59.999 entra, la medianoche siguiente no.
func (r *ReportRepo) FindPaymentsInRange(ctx context.Context, start, end time.Time) ([]repository.PaymentJoined, error) {
	query := paymentJoinSelect + `
	WHERE pay.payment_date BETWEEN $1 AND $2
	ORDER BY pay.payment_date ASC`
	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("reports.FindPaymentsInRange: %w", err)
	}
	defer rows.Close()
	return scanPaymentJoined(rows)
}

// GetTotals devuelve los contadores globales del dashboard en una sola consulta.
// COALESCE protege el SUM cuando aún no hay pagos.
func (r *ReportRepo) GetTotals(ctx context.Context) (repository.StoreTotals, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM cars)                          AS total_cars,
	    (SELECT COUNT(*) FROM packages)                      AS total_packages,
	    (SELECT COUNT(*) FROM service_records)               AS total_services,
	    (SELECT COALESCE(SUM(amount_paid), 0) FROM payments) AS total_revenue`

	var totals repository.StoreTotals
	err := r.db.QueryRow(ctx, query).Scan(
		&totals.TotalCars, &totals.TotalPackages, &totals.TotalServices, &totals.TotalRevenue,
	)
	if err != nil {
		return repository.StoreTotals{}, fmt.Errorf("reports.GetTotals: %w", err)
	}
	return totals, nil
}

// GetRecentServices devuelve los `limit` servicios más recientes por created_at
// descendente, expandidos con carro y paquete.
func (r *ReportRepo) GetRecentServices(ctx context.Context, limit int) ([]repository.ServiceRecordJoined, error) {
	query := serviceJoinSelect + `
	ORDER BY s.created_at DESC
	LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.GetRecentServices: %w", err)
	}
	defer rows.Close()
	return scanServiceJoined(rows)
}
