package entity

import "time"

// ServiceRecord representa un lavado realizado: vincula exactamente un Car
// con un WashPackage en una fecha. Las referencias deben existir al crear.
type ServiceRecord struct {
	ID          string
	ServiceDate time.Time
	CarID       string
	PackageID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
