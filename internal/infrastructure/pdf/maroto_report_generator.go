// Package pdf genera la versión imprimible del reporte diario de ingresos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte diario + fecha                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Ingresos totales | N° de pagos                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Hora | Placa | Conductor | Paquete | Monto           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Lavadero-api/internal/application/dto"
	"github.com/jhoicas/Lavadero-api/internal/application/reports"
)

var _ reports.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 91, Green: 33, Blue: 182}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateDailyReportPDF genera el PDF del reporte diario y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateDailyReportPDF(
	_ context.Context,
	report *dto.DailyReportResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte diario de ventas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(report.Reports) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha del reporte (der).
func headerRow(report *dto.DailyReportResponse) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Reporte diario de ventas", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+report.Date, props.Text{
				Size: 10, Top: 3, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

// summaryRow: ingresos totales y cantidad de pagos del día.
func summaryRow(report *dto.DailyReportResponse) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New("Ingresos totales: "+report.TotalRevenue.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 2,
			}),
		),
		col.New(6).Add(
			text.New(fmt.Sprintf("Pagos registrados: %d", report.Count), props.Text{
				Size: 11, Top: 2, Align: align.Right,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary,
		}))
	}
	return row.New(8).Add(
		header("Hora", 2),
		header("Placa", 2),
		header("Conductor", 3),
		header("Paquete", 3),
		header("Monto", 2),
	)
}

func tableDetailRows(items []dto.PaymentDetailResponse) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, p := range items {
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(p.PaymentDate.Format("15:04"), props.Text{Size: 8})),
			col.New(2).Add(text.New(p.Service.Car.PlateNumber, props.Text{Size: 8})),
			col.New(3).Add(text.New(p.Service.Car.DriverName, props.Text{Size: 8})),
			col.New(3).Add(text.New(p.Service.Package.PackageName, props.Text{Size: 8})),
			col.New(2).Add(text.New(p.AmountPaid.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
		))
	}
	return rows
}
