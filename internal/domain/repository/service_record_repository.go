package repository

import "github.com/jhoicas/Lavadero-api/internal/domain/entity"

// ServiceRecordJoined es un registro de servicio expandido con su carro y
// paquete (composición read-side; el join lo hace la consulta, no una
// relación perezosa).
type ServiceRecordJoined struct {
	Service entity.ServiceRecord
	Car     entity.Car
	Package entity.WashPackage
}

// ServiceRecordRepository define el puerto de persistencia para ServiceRecord.
type ServiceRecordRepository interface {
	Create(service *entity.ServiceRecord) error
	GetByID(id string) (*entity.ServiceRecord, error)
	// List devuelve todos los servicios expandidos con carro y paquete.
	List() ([]ServiceRecordJoined, error)
	Update(service *entity.ServiceRecord) error
	Delete(id string) error
}
