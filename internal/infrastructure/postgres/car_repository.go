package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Lavadero-api/internal/domain"
	"github.com/jhoicas/Lavadero-api/internal/domain/entity"
	"github.com/jhoicas/Lavadero-api/internal/domain/repository"
)

var _ repository.CarRepository = (*CarRepo)(nil)

// CarRepo implementación del puerto CarRepository sobre PostgreSQL.
type CarRepo struct {
	db DB
}

// NewCarRepository construye el adaptador de persistencia para vehículos.
func NewCarRepository(db DB) *CarRepo {
	return &CarRepo{db: db}
}

// Create persiste un nuevo vehículo.
func (r *CarRepo) Create(car *entity.Car) error {
	query := `
		INSERT INTO cars (id, plate_number, car_type, car_size, driver_name, phone_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		car.ID, car.PlateNumber, car.CarType, car.CarSize, car.DriverName, car.PhoneNumber,
		car.CreatedAt, car.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert car: %w", err)
	}
	return nil
}

// GetByID obtiene un vehículo por ID.
func (r *CarRepo) GetByID(id string) (*entity.Car, error) {
	query := `
		SELECT id, plate_number, car_type, car_size, driver_name, phone_number, created_at, updated_at
		FROM cars WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByPlate obtiene un vehículo por placa. (nil, nil) si no existe.
func (r *CarRepo) GetByPlate(plateNumber string) (*entity.Car, error) {
	query := `
		SELECT id, plate_number, car_type, car_size, driver_name, phone_number, created_at, updated_at
		FROM cars WHERE plate_number = $1 LIMIT 1`
	return r.scanOne(query, plateNumber)
}

// List devuelve todos los vehículos ordenados por fecha de registro.
func (r *CarRepo) List() ([]*entity.Car, error) {
	query := `
		SELECT id, plate_number, car_type, car_size, driver_name, phone_number, created_at, updated_at
		FROM cars ORDER BY created_at DESC`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer rows.Close()
	var list []*entity.Car
	for rows.Next() {
		var c entity.Car
		if err := rows.Scan(&c.ID, &c.PlateNumber, &c.CarType, &c.CarSize, &c.DriverName, &c.PhoneNumber, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CarRepo) scanOne(query string, arg any) (*entity.Car, error) {
	var c entity.Car
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.PlateNumber, &c.CarType, &c.CarSize, &c.DriverName, &c.PhoneNumber,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get car: %w", err)
	}
	return &c, nil
}
