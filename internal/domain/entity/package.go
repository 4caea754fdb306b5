package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WashPackage representa un paquete de lavado ofrecido (nombre único + precio).
// El identificador "package" está reservado en Go, de ahí el prefijo.
type WashPackage struct {
	ID                 string
	PackageName        string
	PackageDescription string
	PackagePrice       decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
