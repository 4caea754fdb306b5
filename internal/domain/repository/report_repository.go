package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StoreTotals contadores globales para el dashboard.
// TotalRevenue es la suma de amount_paid sobre TODOS los pagos, sin acotar
// por fecha (agregación distinta a la del reporte diario).
type StoreTotals struct {
	TotalCars     int64
	TotalPackages int64
	TotalServices int64
	TotalRevenue  decimal.Decimal
}

// ReportRepository consultas de solo lectura para reportes y dashboard.
type ReportRepository interface {
	// FindPaymentsInRange devuelve los pagos cuyo payment_date cae dentro de
	// [start, end] — intervalo cerrado en ambos extremos — expandidos con
	// servicio, carro y paquete.
	FindPaymentsInRange(ctx context.Context, start, end time.Time) ([]PaymentJoined, error)
	// GetTotals devuelve los contadores globales del dashboard.
	GetTotals(ctx context.Context) (StoreTotals, error)
	// GetRecentServices devuelve los `limit` servicios más recientes por
	// created_at descendente, expandidos con carro y paquete.
	GetRecentServices(ctx context.Context, limit int) ([]ServiceRecordJoined, error)
}
