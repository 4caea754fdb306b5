package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Lavadero-api/internal/domain"
	"github.com/jhoicas/Lavadero-api/internal/domain/entity"
	"github.com/jhoicas/Lavadero-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación del puerto PaymentRepository sobre PostgreSQL.
type PaymentRepo struct {
	db DB
}

// NewPaymentRepository construye el adaptador de persistencia para pagos.
func NewPaymentRepository(db DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

// Create persiste un nuevo pago.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, service_record_id, amount_paid, payment_date, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(context.Background(), query,
		payment.ID, payment.ServiceRecordID, payment.AmountPaid, payment.PaymentDate, payment.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// List devuelve todos los pagos con el join de tres niveles, más recientes primero.
func (r *PaymentRepo) List() ([]repository.PaymentJoined, error) {
	query := paymentJoinSelect + ` ORDER BY pay.payment_date DESC`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	return scanPaymentJoined(rows)
}

// paymentJoinSelect proyección compartida del join pago → servicio → carro/paquete.
const paymentJoinSelect = `
	SELECT
	    pay.id, pay.service_record_id, pay.amount_paid, pay.payment_date, pay.created_at,
	    s.id, s.service_date, s.car_id, s.package_id, s.created_at, s.updated_at,
	    c.id, c.plate_number, c.car_type, c.car_size, c.driver_name, c.phone_number, c.created_at, c.updated_at,
	    p.id, p.package_name, p.package_description, p.package_price, p.created_at, p.updated_at
	FROM payments pay
	JOIN service_records s ON s.id = pay.service_record_id
	JOIN cars            c ON c.id = s.car_id
	JOIN packages        p ON p.id = s.package_id`

// scanPaymentJoined mapea las filas del join a PaymentJoined.
func scanPaymentJoined(rows pgx.Rows) ([]repository.PaymentJoined, error) {
	var list []repository.PaymentJoined
	for rows.Next() {
		var j repository.PaymentJoined
		if err := rows.Scan(
			&j.Payment.ID, &j.Payment.ServiceRecordID, &j.Payment.AmountPaid,
			&j.Payment.PaymentDate, &j.Payment.CreatedAt,
			&j.Service.ID, &j.Service.ServiceDate, &j.Service.CarID, &j.Service.PackageID,
			&j.Service.CreatedAt, &j.Service.UpdatedAt,
			&j.Car.ID, &j.Car.PlateNumber, &j.Car.CarType, &j.Car.CarSize,
			&j.Car.DriverName, &j.Car.PhoneNumber, &j.Car.CreatedAt, &j.Car.UpdatedAt,
			&j.Package.ID, &j.Package.PackageName, &j.Package.PackageDescription,
			&j.Package.PackagePrice, &j.Package.CreatedAt, &j.Package.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payment join: %w", err)
		}
		list = append(list, j)
	}
	return list, rows.Err()
}
