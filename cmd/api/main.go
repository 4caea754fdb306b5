package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Lavadero-api/internal/application/auth"
	"github.com/jhoicas/Lavadero-api/internal/application/reports"
	"github.com/jhoicas/Lavadero-api/internal/application/usecase"
	"github.com/jhoicas/Lavadero-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Lavadero-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Lavadero-api/internal/interfaces/http"
	"github.com/jhoicas/Lavadero-api/internal/migrations"
	"github.com/jhoicas/Lavadero-api/pkg/config"
	"github.com/jhoicas/Lavadero-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := migrations.Run(cfg.DB.ConnectionString(), cfg.DB.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("migraciones de base de datos")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	carRepo := postgres.NewCarRepository(pool)
	packageRepo := postgres.NewPackageRepository(pool)
	serviceRepo := postgres.NewServiceRecordRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	carUC := usecase.NewCarUseCase(carRepo)
	packageUC := usecase.NewPackageUseCase(packageRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo, carRepo, packageRepo)
	paymentUC := usecase.NewPaymentUseCase(txRunner, paymentRepo)

	dailyReportUC := reports.NewDailyReportUseCase(reportRepo)
	dashboardUC := reports.NewDashboardUseCase(reportRepo)

	// PDF: versión descargable del reporte diario
	pdfGenerator := pdf.NewMarotoReportGenerator()
	reportPDFUC := reports.NewPDFUseCase(dailyReportUC, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Lavadero API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CarUC:       carUC,
		PackageUC:   packageUC,
		ServiceUC:   serviceUC,
		PaymentUC:   paymentUC,
		DailyReport: dailyReportUC,
		ReportPDF:   reportPDFUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
