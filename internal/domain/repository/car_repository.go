package repository

import "github.com/jhoicas/Lavadero-api/internal/domain/entity"

// CarRepository define el puerto de persistencia para Car.
type CarRepository interface {
	Create(car *entity.Car) error
	GetByID(id string) (*entity.Car, error)
	// GetByPlate retorna (nil, nil) si la placa no está registrada.
	GetByPlate(plateNumber string) (*entity.Car, error)
	List() ([]*entity.Car, error)
}
