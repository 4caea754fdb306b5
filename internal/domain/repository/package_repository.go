package repository

import "github.com/jhoicas/Lavadero-api/internal/domain/entity"

// PackageRepository define el puerto de persistencia para WashPackage.
type PackageRepository interface {
	Create(pkg *entity.WashPackage) error
	GetByID(id string) (*entity.WashPackage, error)
	// GetByName retorna (nil, nil) si no existe un paquete con ese nombre.
	GetByName(packageName string) (*entity.WashPackage, error)
	List() ([]*entity.WashPackage, error)
}
