package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment representa un cobro asociado a un ServiceRecord.
// No se impone unicidad payment↔service a nivel de datos; el agregador
// suma lo que exista.
type Payment struct {
	ID              string
	ServiceRecordID string
	AmountPaid      decimal.Decimal
	PaymentDate     time.Time
	CreatedAt       time.Time
}
