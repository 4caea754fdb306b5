package repository

import "github.com/jhoicas/Lavadero-api/internal/domain/entity"

// PaymentJoined es un pago expandido con su servicio, carro y paquete
// (join de tres niveles: payment → service_record → car/package).
type PaymentJoined struct {
	Payment entity.Payment
	Service entity.ServiceRecord
	Car     entity.Car
	Package entity.WashPackage
}

// PaymentRepository define el puerto de persistencia para Payment.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	// List devuelve todos los pagos con el join de tres niveles.
	List() ([]PaymentJoined, error)
}
