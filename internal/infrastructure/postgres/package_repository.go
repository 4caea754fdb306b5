package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Lavadero-api/internal/domain"
	"github.com/jhoicas/Lavadero-api/internal/domain/entity"
	"github.com/jhoicas/Lavadero-api/internal/domain/repository"
)

var _ repository.PackageRepository = (*PackageRepo)(nil)

// PackageRepo implementación del puerto PackageRepository sobre PostgreSQL.
type PackageRepo struct {
	db DB
}

// NewPackageRepository construye el adaptador de persistencia para paquetes de lavado.
func NewPackageRepository(db DB) *PackageRepo {
	return &PackageRepo{db: db}
}

// Create persiste un nuevo paquete.
func (r *PackageRepo) Create(pkg *entity.WashPackage) error {
	query := `
		INSERT INTO packages (id, package_name, package_description, package_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(context.Background(), query,
		pkg.ID, pkg.PackageName, pkg.PackageDescription, pkg.PackagePrice,
		pkg.CreatedAt, pkg.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert package: %w", err)
	}
	return nil
}

// GetByID obtiene un paquete por ID.
func (r *PackageRepo) GetByID(id string) (*entity.WashPackage, error) {
	query := `
		SELECT id, package_name, package_description, package_price, created_at, updated_at
		FROM packages WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByName obtiene un paquete por nombre. (nil, nil) si no existe.
func (r *PackageRepo) GetByName(packageName string) (*entity.WashPackage, error) {
	query := `
		SELECT id, package_name, package_description, package_price, created_at, updated_at
		FROM packages WHERE package_name = $1 LIMIT 1`
	return r.scanOne(query, packageName)
}

// List devuelve todos los paquetes.
func (r *PackageRepo) List() ([]*entity.WashPackage, error) {
	query := `
		SELECT id, package_name, package_description, package_price, created_at, updated_at
		FROM packages ORDER BY created_at DESC`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()
	var list []*entity.WashPackage
	for rows.Next() {
		var p entity.WashPackage
		if err := rows.Scan(&p.ID, &p.PackageName, &p.PackageDescription, &p.PackagePrice, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *PackageRepo) scanOne(query string, arg any) (*entity.WashPackage, error) {
	var p entity.WashPackage
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.PackageName, &p.PackageDescription, &p.PackagePrice,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get package: %w", err)
	}
	return &p, nil
}
