package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest entrada para registrar un pago.
// AmountPaid es puntero para distinguir la clave ausente de un monto cero.
// PaymentDate es opcional; por defecto now.
type CreatePaymentRequest struct {
	ServiceRecordID string           `json:"serviceRecordId" validate:"required,uuid"`
	AmountPaid      *decimal.Decimal `json:"amountPaid" validate:"required"`
	PaymentDate     *time.Time       `json:"paymentDate"`
}

// PaymentResponse salida plana de un pago.
type PaymentResponse struct {
	ID              string          `json:"id"`
	ServiceRecordID string          `json:"serviceRecordId"`
	AmountPaid      decimal.Decimal `json:"amountPaid"`
	PaymentDate     time.Time       `json:"paymentDate"`
}

// PaymentDetailResponse pago expandido con su servicio, carro y paquete
// (join de tres niveles para listados y reportes).
type PaymentDetailResponse struct {
	ID          string                `json:"id"`
	AmountPaid  decimal.Decimal       `json:"amountPaid"`
	PaymentDate time.Time             `json:"paymentDate"`
	Service     ServiceDetailResponse `json:"service"`
}
