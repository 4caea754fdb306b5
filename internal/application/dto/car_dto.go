package dto

import "time"

// CreateCarRequest entrada para registrar un vehículo.
type CreateCarRequest struct {
	PlateNumber string `json:"plateNumber" validate:"required"`
	CarType     string `json:"carType" validate:"required"`
	CarSize     string `json:"carSize" validate:"required"`
	DriverName  string `json:"driverName" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

// CarResponse salida de un vehículo.
type CarResponse struct {
	ID          string    `json:"id"`
	PlateNumber string    `json:"plateNumber"`
	CarType     string    `json:"carType"`
	CarSize     string    `json:"carSize"`
	DriverName  string    `json:"driverName"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
}
