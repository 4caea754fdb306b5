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

var _ repository.ServiceRecordRepository = (*ServiceRecordRepo)(nil)

// ServiceRecordRepo implementación del puerto ServiceRecordRepository sobre PostgreSQL.
type ServiceRecordRepo struct {
	db DB
}

// NewServiceRecordRepository construye el adaptador de persistencia para servicios.
func NewServiceRecordRepository(db DB) *ServiceRecordRepo {
	return &ServiceRecordRepo{db: db}
}

// Create persiste un nuevo registro de servicio.
func (r *ServiceRecordRepo) Create(service *entity.ServiceRecord) error {
	query := `
		INSERT INTO service_records (id, service_date, car_id, package_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(context.Background(), query,
		service.ID, service.ServiceDate, service.CarID, service.PackageID,
		service.CreatedAt, service.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert service record: %w", err)
	}
	return nil
}

// GetByID obtiene un registro de servicio por ID. (nil, nil) si no existe.
func (r *ServiceRecordRepo) GetByID(id string) (*entity.ServiceRecord, error) {
	query := `
		SELECT id, service_date, car_id, package_id, created_at, updated_at
		FROM service_records WHERE id = $1`
	var s entity.ServiceRecord
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ServiceDate, &s.CarID, &s.PackageID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service record: %w", err)
	}
	return &s, nil
}

// List devuelve todos los servicios expandidos con carro y paquete
// (join read-side, más recientes primero).
func (r *ServiceRecordRepo) List() ([]repository.ServiceRecordJoined, error) {
	query := serviceJoinSelect + ` ORDER BY s.created_at DESC`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list service records: %w", err)
	}
	defer rows.Close()
	return scanServiceJoined(rows)
}

// Update actualiza fecha, carro y paquete de un servicio.
func (r *ServiceRecordRepo) Update(service *entity.ServiceRecord) error {
	query := `
		UPDATE service_records SET service_date = $2, car_id = $3, package_id = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		service.ID, service.ServiceDate, service.CarID, service.PackageID, service.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update service record: %w", err)
	}
	return nil
}

// Delete elimina un servicio por ID. Un servicio con pagos referenciándolo
// no puede borrarse (la FK de payments lo protege): devuelve ErrConflict.
func (r *ServiceRecordRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM service_records WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete service record: %w", err)
	}
	return nil
}

// serviceJoinSelect proyección compartida del join servicio + carro + paquete.
const serviceJoinSelect = `
	SELECT
	    s.id, s.service_date, s.car_id, s.package_id, s.created_at, s.updated_at,
	    c.id, c.plate_number, c.car_type, c.car_size, c.driver_name, c.phone_number, c.created_at, c.updated_at,
	    p.id, p.package_name, p.package_description, p.package_price, p.created_at, p.updated_at
	FROM service_records s
	JOIN cars     c ON c.id = s.car_id
	JOIN packages p ON p.id = s.package_id`

// scanServiceJoined mapea las filas del join a ServiceRecordJoined.
func scanServiceJoined(rows pgx.Rows) ([]repository.ServiceRecordJoined, error) {
	var list []repository.ServiceRecordJoined
	for rows.Next() {
		var j repository.ServiceRecordJoined
		if err := rows.Scan(
			&j.Service.ID, &j.Service.ServiceDate, &j.Service.CarID, &j.Service.PackageID,
			&j.Service.CreatedAt, &j.Service.UpdatedAt,
			&j.Car.ID, &j.Car.PlateNumber, &j.Car.CarType, &j.Car.CarSize,
			&j.Car.DriverName, &j.Car.PhoneNumber, &j.Car.CreatedAt, &j.Car.UpdatedAt,
			&j.Package.ID, &j.Package.PackageName, &j.Package.PackageDescription,
			&j.Package.PackagePrice, &j.Package.CreatedAt, &j.Package.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan service join: %w", err)
		}
		list = append(list, j)
	}
	return list, rows.Err()
}
