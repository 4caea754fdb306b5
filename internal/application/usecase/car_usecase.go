package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Lavadero-api/internal/application/dto"
	"github.com/jhoicas/Lavadero-api/internal/domain"
	"github.com/jhoicas/Lavadero-api/internal/domain/entity"
	"github.com/jhoicas/Lavadero-api/internal/domain/repository"
)

// CarUseCase casos de uso para vehículos: registro y listado.
type CarUseCase struct {
	repo repository.CarRepository
}

// NewCarUseCase construye el caso de uso.
func NewCarUseCase(repo repository.CarRepository) *CarUseCase {
	return &CarUseCase{repo: repo}
}

// Create registra un vehículo. Devuelve ErrDuplicate si la placa ya existe.
func (uc *CarUseCase) Create(in dto.CreateCarRequest) (*dto.CarResponse, error) {
	existing, err := uc.repo.GetByPlate(in.PlateNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	car := &entity.Car{
		ID:          uuid.New().String(),
		PlateNumber: in.PlateNumber,
		CarType:     in.CarType,
		CarSize:     in.CarSize,
		DriverName:  in.DriverName,
		PhoneNumber: in.PhoneNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(car); err != nil {
		return nil, err
	}
	out := dto.FromCar(car)
	return &out, nil
}

// List devuelve todos los vehículos registrados.
func (uc *CarUseCase) List() ([]dto.CarResponse, error) {
	cars, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CarResponse, 0, len(cars))
	for _, c := range cars {
		items = append(items, dto.FromCar(c))
	}
	return items, nil
}
