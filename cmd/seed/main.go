package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Lavadero-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Lavadero-api/internal/migrations"
	"github.com/jhoicas/Lavadero-api/pkg/config"
	"github.com/jhoicas/Lavadero-api/pkg/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Siembra datos mínimos para un entorno de desarrollo: el usuario admin
// y los paquetes de lavado por defecto. Es idempotente: volver a
// ejecutarlo no duplica filas.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if err := migrations.Run(cfg.DB.ConnectionString(), cfg.DB.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("migraciones de base de datos")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash del password admin")
	}

	now := time.Now()
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (username) DO NOTHING`,
		uuid.NewString(), "admin", string(hash), now,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar usuario admin")
	}
	log.Info().Str("username", "admin").Msg("usuario admin listo")

	packages := []struct {
		name        string
		description string
		price       decimal.Decimal
	}{
		{"Basic Wash", "Lavado exterior básico", decimal.NewFromInt(5000)},
		{"Interior Clean", "Limpieza interior completa", decimal.NewFromInt(7000)},
		{"Full service", "Lavado exterior e interior con encerado", decimal.NewFromInt(15000)},
	}

	for _, p := range packages {
		_, err = pool.Exec(ctx, `
			INSERT INTO packages (id, package_name, package_description, package_price, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
			ON CONFLICT (package_name) DO NOTHING`,
			uuid.NewString(), p.name, p.description, p.price, now,
		)
		if err != nil {
			log.Fatal().Err(err).Str("package", p.name).Msg("sembrar paquete")
		}
		log.Info().Str("package", p.name).Msg("paquete listo")
	}

	log.Info().Msg("seed completado")
}
