package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Lavadero-api/internal/application/dto"
	"github.com/jhoicas/Lavadero-api/internal/domain"
	"github.com/jhoicas/Lavadero-api/internal/domain/entity"
	"github.com/jhoicas/Lavadero-api/internal/domain/repository"
)

// PaymentTxRunner ejecuta una función dentro de una transacción con los repos
// de servicios y pagos: la verificación del servicio referenciado y el insert
// del pago deben ser atómicos.
type PaymentTxRunner interface {
	RunPayment(ctx context.Context, fn func(
		serviceRepo repository.ServiceRecordRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}

// PaymentUseCase casos de uso para pagos: registro y listado.
type PaymentUseCase struct {
	txRunner    PaymentTxRunner
	paymentRepo repository.PaymentRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(txRunner PaymentTxRunner, paymentRepo repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{txRunner: txRunner, paymentRepo: paymentRepo}
}

// Create registra un pago. El servicio referenciado debe existir (ErrNotFound
// si no) y el monto debe venir en el cuerpo y no ser negativo. No se impone
// un pago único por servicio. PaymentDate por defecto now.
func (uc *PaymentUseCase) Create(ctx context.Context, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.AmountPaid == nil || in.AmountPaid.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	paymentDate := now
	if in.PaymentDate != nil {
		paymentDate = *in.PaymentDate
	}
	payment := &entity.Payment{
		ID:              uuid.New().String(),
		ServiceRecordID: in.ServiceRecordID,
		AmountPaid:      *in.AmountPaid,
		PaymentDate:     paymentDate,
		CreatedAt:       now,
	}
	err := uc.txRunner.RunPayment(ctx, func(
		serviceRepo repository.ServiceRecordRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		service, err := serviceRepo.GetByID(in.ServiceRecordID)
		if err != nil {
			return err
		}
		if service == nil {
			return domain.ErrNotFound
		}
		return paymentRepo.Create(payment)
	})
	if err != nil {
		return nil, err
	}
	return &dto.PaymentResponse{
		ID:              payment.ID,
		ServiceRecordID: payment.ServiceRecordID,
		AmountPaid:      payment.AmountPaid,
		PaymentDate:     payment.PaymentDate,
	}, nil
}

// List devuelve todos los pagos con el join de tres niveles
// (payment → service → car/package).
func (uc *PaymentUseCase) List() ([]dto.PaymentDetailResponse, error) {
	joined, err := uc.paymentRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentDetailResponse, 0, len(joined))
	for _, j := range joined {
		items = append(items, dto.FromPaymentJoined(j))
	}
	return items, nil
}
