package entity

import "time"

// Car representa un vehículo registrado en el lavadero. PlateNumber es único.
type Car struct {
	ID          string
	PlateNumber string
	CarType     string // sedan, SUV, camioneta...
	CarSize     string // small, medium, large
	DriverName  string
	PhoneNumber string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
