package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Lavadero-api/internal/application/usecase"
	"github.com/jhoicas/Lavadero-api/internal/domain/repository"
)

var _ usecase.PaymentTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunPayment inicia una transacción, ejecuta fn con repos atados a la tx y
// hace Commit o Rollback. El chequeo de existencia del servicio y el insert
// del pago quedan dentro de la misma transacción.
func (r *TxRunner) RunPayment(ctx context.Context, fn func(
	serviceRepo repository.ServiceRecordRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	serviceRepo := NewServiceRecordRepository(tx)
	paymentRepo := NewPaymentRepository(tx)

	if err := fn(serviceRepo, paymentRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
