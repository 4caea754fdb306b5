package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Lavadero-api/internal/application/auth"
	"github.com/jhoicas/Lavadero-api/internal/application/dto"
	"github.com/jhoicas/Lavadero-api/internal/application/reports"
	"github.com/jhoicas/Lavadero-api/internal/application/usecase"
)

// internalErrorBody respuesta genérica para errores 500; el detalle
// queda en el log, nunca en el cliente.
var internalErrorBody = dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CarUC       *usecase.CarUseCase
	PackageUC   *usecase.PackageUseCase
	ServiceUC   *usecase.ServiceUseCase
	PaymentUC   *usecase.PaymentUseCase
	DailyReport *reports.DailyReportUseCase
	ReportPDF   *reports.PDFUseCase
	DashboardUC *reports.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Cars (protegido)
	cars := protected.Group("/cars")
	carHandler := NewCarHandler(deps.CarUC)
	cars.Post("/", carHandler.Create)
	cars.Get("/", carHandler.List)

	// Packages (protegido)
	packages := protected.Group("/packages")
	packageHandler := NewPackageHandler(deps.PackageUC)
	packages.Post("/", packageHandler.Create)
	packages.Get("/", packageHandler.List)

	// Services (protegido)
	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Post("/", serviceHandler.Create)
	services.Get("/", serviceHandler.List)
	services.Put("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Delete)

	// Payments (protegido)
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)

	// Reports (protegido)
	reportHandler := NewReportHandler(deps.DailyReport, deps.ReportPDF)
	protected.Get("/reports/daily", reportHandler.Daily)
	protected.Get("/reports/daily/pdf", reportHandler.DailyPDF)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/stats", dashboardHandler.Stats)
}
