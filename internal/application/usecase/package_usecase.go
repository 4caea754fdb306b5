package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Lavadero-api/internal/application/dto"
	"github.com/jhoicas/Lavadero-api/internal/domain"
	"github.com/jhoicas/Lavadero-api/internal/domain/entity"
	"github.com/jhoicas/Lavadero-api/internal/domain/repository"
)

// PackageUseCase casos de uso para paquetes de lavado: creación y listado.
type PackageUseCase struct {
	repo repository.PackageRepository
}

// NewPackageUseCase construye el caso de uso.
func NewPackageUseCase(repo repository.PackageRepository) *PackageUseCase {
	return &PackageUseCase{repo: repo}
}

// Create crea un paquete. Devuelve ErrDuplicate si el nombre ya existe y
// ErrInvalidInput si el precio falta o es negativo.
func (uc *PackageUseCase) Create(in dto.CreatePackageRequest) (*dto.PackageResponse, error) {
	if in.PackagePrice == nil || in.PackagePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(in.PackageName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	pkg := &entity.WashPackage{
		ID:                 uuid.New().String(),
		PackageName:        in.PackageName,
		PackageDescription: in.PackageDescription,
		PackagePrice:       *in.PackagePrice,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(pkg); err != nil {
		return nil, err
	}
	out := dto.FromPackage(pkg)
	return &out, nil
}

// List devuelve todos los paquetes.
func (uc *PackageUseCase) List() ([]dto.PackageResponse, error) {
	pkgs, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PackageResponse, 0, len(pkgs))
	for _, p := range pkgs {
		items = append(items, dto.FromPackage(p))
	}
	return items, nil
}
