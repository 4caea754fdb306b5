package reports

import (
	"context"
	"fmt"

	"github.com/jhoicas/Lavadero-api/internal/application/dto"
	"github.com/jhoicas/Lavadero-api/internal/domain/repository"
)

const dashboardRecentServices = 5 // tamaño fijo del widget de actividad reciente

// DashboardUseCase genera las estadísticas globales del negocio.
//
// Fuente de datos: ReportRepository (consultas read-only). El totalRevenue
// del dashboard suma TODOS los pagos sin acotar por fecha — agregación
// distinta a la del reporte diario.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo}
}

// GetStats construye la respuesta del dashboard.
//
// Dos llamadas en paralelo:
//  1. GetTotals            → contadores y revenue acumulado
//  2. GetRecentServices(5) → actividad reciente (created_at descendente)
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	type totalsResult struct {
		totals repository.StoreTotals
		err    error
	}
	type recentResult struct {
		services []repository.ServiceRecordJoined
		err      error
	}

	totalsCh := make(chan totalsResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		totals, err := uc.reportRepo.GetTotals(ctx)
		totalsCh <- totalsResult{totals, err}
	}()
	go func() {
		services, err := uc.reportRepo.GetRecentServices(ctx, dashboardRecentServices)
		recentCh <- recentResult{services, err}
	}()

	totals := <-totalsCh
	recent := <-recentCh

	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: totales: %w", totals.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: servicios recientes: %w", recent.err)
	}

	recentItems := make([]dto.ServiceDetailResponse, 0, len(recent.services))
	for _, j := range recent.services {
		recentItems = append(recentItems, dto.FromServiceJoined(j))
	}

	return &dto.DashboardStatsResponse{
		Stats: dto.DashboardStats{
			TotalCars:     totals.totals.TotalCars,
			TotalPackages: totals.totals.TotalPackages,
			TotalServices: totals.totals.TotalServices,
			TotalRevenue:  totals.totals.TotalRevenue,
		},
		RecentServices: recentItems,
	}, nil
}
