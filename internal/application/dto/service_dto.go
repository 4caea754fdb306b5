package dto

import "time"

// CreateServiceRequest entrada para crear un registro de servicio.
// ServiceDate es opcional; por defecto now.
type CreateServiceRequest struct {
	ServiceDate *time.Time `json:"serviceDate"`
	CarID       string     `json:"carId" validate:"required,uuid"`
	PackageID   string     `json:"packageId" validate:"required,uuid"`
}

// UpdateServiceRequest entrada para actualizar un registro de servicio.
// Campos nil se dejan como están.
type UpdateServiceRequest struct {
	ServiceDate *time.Time `json:"serviceDate"`
	CarID       *string    `json:"carId" validate:"omitempty,uuid"`
	PackageID   *string    `json:"packageId" validate:"omitempty,uuid"`
}

// ServiceResponse salida plana de un registro de servicio (sin expandir).
type ServiceResponse struct {
	ID          string    `json:"id"`
	ServiceDate time.Time `json:"serviceDate"`
	CarID       string    `json:"carId"`
	PackageID   string    `json:"packageId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ServiceDetailResponse registro de servicio expandido con carro y paquete
// (composición read-side para listados y dashboard).
type ServiceDetailResponse struct {
	ID          string          `json:"id"`
	ServiceDate time.Time       `json:"serviceDate"`
	Car         CarResponse     `json:"car"`
	Package     PackageResponse `json:"package"`
	CreatedAt   time.Time       `json:"createdAt"`
}
