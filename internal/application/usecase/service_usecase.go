package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Lavadero-api/internal/application/dto"
	"github.com/jhoicas/Lavadero-api/internal/domain"
	"github.com/jhoicas/Lavadero-api/internal/domain/entity"
	"github.com/jhoicas/Lavadero-api/internal/domain/repository"
)

// ServiceUseCase casos de uso CRUD para registros de servicio (lavados).
type ServiceUseCase struct {
	serviceRepo repository.ServiceRecordRepository
	carRepo     repository.CarRepository
	packageRepo repository.PackageRepository
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(
	serviceRepo repository.ServiceRecordRepository,
	carRepo repository.CarRepository,
	packageRepo repository.PackageRepository,
) *ServiceUseCase {
	return &ServiceUseCase{serviceRepo: serviceRepo, carRepo: carRepo, packageRepo: packageRepo}
}

// Create crea un registro de servicio. El carro y el paquete referenciados
// deben existir; si alguno falta devuelve ErrNotFound. ServiceDate por
// defecto es now.
func (uc *ServiceUseCase) Create(in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	car, err := uc.carRepo.GetByID(in.CarID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrNotFound
	}
	pkg, err := uc.packageRepo.GetByID(in.PackageID)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	serviceDate := now
	if in.ServiceDate != nil {
		serviceDate = *in.ServiceDate
	}
	service := &entity.ServiceRecord{
		ID:          uuid.New().String(),
		ServiceDate: serviceDate,
		CarID:       in.CarID,
		PackageID:   in.PackageID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.serviceRepo.Create(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// List devuelve todos los servicios expandidos con carro y paquete.
func (uc *ServiceUseCase) List() ([]dto.ServiceDetailResponse, error) {
	joined, err := uc.serviceRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ServiceDetailResponse, 0, len(joined))
	for _, j := range joined {
		items = append(items, dto.FromServiceJoined(j))
	}
	return items, nil
}

// Update actualiza un registro de servicio. Campos nil se conservan.
// Devuelve ErrNotFound si el servicio, o un carro/paquete nuevo, no existe.
func (uc *ServiceUseCase) Update(id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	if in.CarID != nil {
		car, err := uc.carRepo.GetByID(*in.CarID)
		if err != nil {
			return nil, err
		}
		if car == nil {
			return nil, domain.ErrNotFound
		}
		service.CarID = *in.CarID
	}
	if in.PackageID != nil {
		pkg, err := uc.packageRepo.GetByID(*in.PackageID)
		if err != nil {
			return nil, err
		}
		if pkg == nil {
			return nil, domain.ErrNotFound
		}
		service.PackageID = *in.PackageID
	}
	if in.ServiceDate != nil {
		service.ServiceDate = *in.ServiceDate
	}
	service.UpdatedAt = time.Now()
	if err := uc.serviceRepo.Update(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// Delete elimina un registro de servicio. Devuelve ErrNotFound si no existe.
func (uc *ServiceUseCase) Delete(id string) error {
	service, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if service == nil {
		return domain.ErrNotFound
	}
	return uc.serviceRepo.Delete(id)
}

func toServiceResponse(s *entity.ServiceRecord) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:          s.ID,
		ServiceDate: s.ServiceDate,
		CarID:       s.CarID,
		PackageID:   s.PackageID,
		CreatedAt:   s.CreatedAt,
	}
}
