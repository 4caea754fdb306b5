package reports

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Lavadero-api/internal/domain"
	"github.com/jhoicas/Lavadero-api/internal/domain/entity"
	"github.com/jhoicas/Lavadero-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de reportes
// ──────────────────────────────────────────────────────────────────────────────

// fakeReportRepo aplica el mismo filtro cerrado [start, end] que el SQL con
// BETWEEN: ambos extremos incluidos.
type fakeReportRepo struct {
	payments []repository.PaymentJoined
	totals   repository.StoreTotals
	recent   []repository.ServiceRecordJoined
}

func (r *fakeReportRepo) FindPaymentsInRange(_ context.Context, start, end time.Time) ([]repository.PaymentJoined, error) {
	var out []repository.PaymentJoined
	for _, p := range r.payments {
		d := p.Payment.PaymentDate
		if !d.Before(start) && !d.After(end) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeReportRepo) GetTotals(_ context.Context) (repository.StoreTotals, error) {
	return r.totals, nil
}

func (r *fakeReportRepo) GetRecentServices(_ context.Context, limit int) ([]repository.ServiceRecordJoined, error) {
	if len(r.recent) > limit {
		return r.recent[:limit], nil
	}
	return r.recent, nil
}

func paymentAt(id string, amount int64, at time.Time) repository.PaymentJoined {
	return repository.PaymentJoined{
		Payment: entity.Payment{
			ID:          id,
			AmountPaid:  decimal.NewFromInt(amount),
			PaymentDate: at,
		},
		Service: entity.ServiceRecord{ID: "svc-" + id},
		Car:     entity.Car{ID: "car-" + id, PlateNumber: "ABC-" + id},
		Package: entity.WashPackage{ID: "pkg-" + id, PackageName: "Basic Wash"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests DayWindow
// ──────────────────────────────────────────────────────────────────────────────

// La ventana del día va de 00:00:00.000 a 23:59:59.999, cerrada en ambos extremos.
func TestDayWindow_ExtremosCerrados(t *testing.T) {
	day := time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)
	start, end := DayWindow(day)

	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 5, 10, 23, 59, 59, 999_000_000, time.UTC), end)
	assert.True(t, end.Before(start.Add(24*time.Hour)),
		"la medianoche del día siguiente queda fuera de la ventana")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Get (reporte diario)
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: día con dos pagos suma los montos y los lista.
func TestDailyReport_SumaDelDia(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeReportRepo{payments: []repository.PaymentJoined{
		paymentAt("1", 5000, day.Add(9*time.Hour)),
		paymentAt("2", 7000, day.Add(17*time.Hour)),
		// Pago de otro día: no debe entrar.
		paymentAt("3", 15000, day.AddDate(0, 0, 1).Add(2*time.Hour)),
	}}
	uc := NewDailyReportUseCase(repo)

	out, err := uc.Get(context.Background(), "2024-05-10")
	require.NoError(t, err)

	assert.Equal(t, "2024-05-10", out.Date)
	assert.Equal(t, 2, out.Count)
	assert.True(t, out.TotalRevenue.Equal(decimal.NewFromInt(12000)),
		"5000 + 7000 = 12000, el pago del día siguiente queda fuera")
	require.Len(t, out.Reports, 2)
	assert.Equal(t, "1", out.Reports[0].ID)
}

// Caso 2: los bordes de la ventana — 23:59:59.999 entra, la medianoche
// siguiente no.
func TestDailyReport_BordesDeVentana(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeReportRepo{payments: []repository.PaymentJoined{
		paymentAt("inicio", 1000, day),
		paymentAt("cierre", 2000, day.Add(24*time.Hour-time.Millisecond)),
		paymentAt("siguiente", 4000, day.Add(24*time.Hour)),
	}}
	uc := NewDailyReportUseCase(repo)

	out, err := uc.Get(context.Background(), "2024-05-10")
	require.NoError(t, err)

	assert.Equal(t, 2, out.Count)
	assert.True(t, out.TotalRevenue.Equal(decimal.NewFromInt(3000)),
		"medianoche inicial y 23:59:59.999 entran; la medianoche siguiente no")
}

// Caso 3: día sin pagos devuelve ceros y lista vacía, no error.
func TestDailyReport_DiaVacio(t *testing.T) {
	uc := NewDailyReportUseCase(&fakeReportRepo{})

	out, err := uc.Get(context.Background(), "2024-05-10")
	require.NoError(t, err)

	assert.Equal(t, 0, out.Count)
	assert.True(t, out.TotalRevenue.IsZero())
	assert.NotNil(t, out.Reports, "reports debe serializar como [] y no como null")
	assert.Empty(t, out.Reports)
}

// Caso 4: sin ?date= se usa el día actual del servidor.
func TestDailyReport_FechaPorDefectoEsHoy(t *testing.T) {
	today := time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)
	repo := &fakeReportRepo{payments: []repository.PaymentJoined{
		paymentAt("1", 5000, today.Add(time.Hour)),
	}}
	uc := NewDailyReportUseCase(repo)
	uc.now = func() time.Time { return today }

	out, err := uc.Get(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "2024-05-10", out.Date)
	assert.Equal(t, 1, out.Count)
}

// Caso 5: fecha mal formada produce ErrInvalidInput.
func TestDailyReport_FechaInvalida(t *testing.T) {
	uc := NewDailyReportUseCase(&fakeReportRepo{})

	_, err := uc.Get(context.Background(), "10/05/2024")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
