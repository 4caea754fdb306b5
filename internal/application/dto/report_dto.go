package dto

import "github.com/shopspring/decimal"

// DailyReportResponse respuesta de GET /api/reports/daily.
// Date es la fecha consultada en formato YYYY-MM-DD; Reports son los pagos
// del día expandidos. Un día sin pagos produce totalRevenue=0, count=0 y
// reports=[] — no es un error.
type DailyReportResponse struct {
	Date         string                  `json:"date"`
	TotalRevenue decimal.Decimal         `json:"totalRevenue"`
	Count        int                     `json:"count"`
	Reports      []PaymentDetailResponse `json:"reports"`
}

// DashboardStats contadores globales del negocio.
type DashboardStats struct {
	TotalCars     int64           `json:"totalCars"`
	TotalPackages int64           `json:"totalPackages"`
	TotalServices int64           `json:"totalServices"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
}

// DashboardStatsResponse respuesta de GET /api/dashboard/stats.
// RecentServices son los 5 servicios más recientes (created_at descendente).
type DashboardStatsResponse struct {
	Stats          DashboardStats          `json:"stats"`
	RecentServices []ServiceDetailResponse `json:"recentServices"`
}
