package reports

import (
	"context"

	"github.com/jhoicas/Lavadero-api/internal/application/dto"
)

// ReportPDFGenerator genera la representación imprimible del reporte diario.
// Lo implementa infrastructure/pdf; el uso de interfaz mantiene el use case
// libre de la librería de PDF.
type ReportPDFGenerator interface {
	GenerateDailyReportPDF(ctx context.Context, report *dto.DailyReportResponse) ([]byte, error)
}

// PDFUseCase genera el PDF del reporte diario (botón "Descargar" del SPA).
type PDFUseCase struct {
	daily     *DailyReportUseCase
	generator ReportPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(daily *DailyReportUseCase, generator ReportPDFGenerator) *PDFUseCase {
	return &PDFUseCase{daily: daily, generator: generator}
}

// DownloadDailyReportPDF calcula el reporte del día y lo renderiza a PDF.
// Retorna los bytes y el nombre de archivo sugerido.
func (uc *PDFUseCase) DownloadDailyReportPDF(ctx context.Context, dateStr string) (pdfBytes []byte, filename string, err error) {
	report, err := uc.daily.Get(ctx, dateStr)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateDailyReportPDF(ctx, report)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, "reporte-diario-" + report.Date + ".pdf", nil
}
