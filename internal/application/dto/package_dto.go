package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePackageRequest entrada para crear un paquete de lavado.
// PackagePrice es puntero para distinguir la clave ausente de un precio cero.
type CreatePackageRequest struct {
	PackageName        string           `json:"packageName" validate:"required"`
	PackageDescription string           `json:"packageDescription"`
	PackagePrice       *decimal.Decimal `json:"packagePrice" validate:"required"`
}

// PackageResponse salida de un paquete de lavado.
type PackageResponse struct {
	ID                 string          `json:"id"`
	PackageName        string          `json:"packageName"`
	PackageDescription string          `json:"packageDescription"`
	PackagePrice       decimal.Decimal `json:"packagePrice"`
	CreatedAt          time.Time       `json:"createdAt"`
}
