package dto

import (
	"github.com/jhoicas/Lavadero-api/internal/domain/entity"
	"github.com/jhoicas/Lavadero-api/internal/domain/repository"
)

// Mappers entidad → DTO compartidos entre use cases (los joins read-side
// producen las mismas proyecciones en listados, reportes y dashboard).

// FromCar proyecta un Car.
func FromCar(c *entity.Car) CarResponse {
	return CarResponse{
		ID:          c.ID,
		PlateNumber: c.PlateNumber,
		CarType:     c.CarType,
		CarSize:     c.CarSize,
		DriverName:  c.DriverName,
		PhoneNumber: c.PhoneNumber,
		CreatedAt:   c.CreatedAt,
	}
}

// FromPackage proyecta un WashPackage.
func FromPackage(p *entity.WashPackage) PackageResponse {
	return PackageResponse{
		ID:                 p.ID,
		PackageName:        p.PackageName,
		PackageDescription: p.PackageDescription,
		PackagePrice:       p.PackagePrice,
		CreatedAt:          p.CreatedAt,
	}
}

// FromServiceJoined proyecta un servicio expandido con carro y paquete.
func FromServiceJoined(j repository.ServiceRecordJoined) ServiceDetailResponse {
	return ServiceDetailResponse{
		ID:          j.Service.ID,
		ServiceDate: j.Service.ServiceDate,
		Car:         FromCar(&j.Car),
		Package:     FromPackage(&j.Package),
		CreatedAt:   j.Service.CreatedAt,
	}
}

// FromPaymentJoined proyecta un pago con el join de tres niveles.
func FromPaymentJoined(j repository.PaymentJoined) PaymentDetailResponse {
	return PaymentDetailResponse{
		ID:          j.Payment.ID,
		AmountPaid:  j.Payment.AmountPaid,
		PaymentDate: j.Payment.PaymentDate,
		Service: ServiceDetailResponse{
			ID:          j.Service.ID,
			ServiceDate: j.Service.ServiceDate,
			Car:         FromCar(&j.Car),
			Package:     FromPackage(&j.Package),
			CreatedAt:   j.Service.CreatedAt,
		},
	}
}
