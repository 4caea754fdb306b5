package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Lavadero-api/internal/application/dto"
	"github.com/jhoicas/Lavadero-api/internal/application/usecase"
	"github.com/jhoicas/Lavadero-api/internal/domain"
	"github.com/jhoicas/Lavadero-api/internal/domain/entity"
	"github.com/jhoicas/Lavadero-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los repositorios
// ──────────────────────────────────────────────────────────────────────────────

type fakeCarRepo struct {
	cars map[string]*entity.Car
}

func newFakeCarRepo() *fakeCarRepo { return &fakeCarRepo{cars: make(map[string]*entity.Car)} }

func (r *fakeCarRepo) Create(car *entity.Car) error { r.cars[car.ID] = car; return nil }
func (r *fakeCarRepo) GetByID(id string) (*entity.Car, error) {
	return r.cars[id], nil
}
func (r *fakeCarRepo) GetByPlate(plate string) (*entity.Car, error) {
	for _, c := range r.cars {
		if c.PlateNumber == plate {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCarRepo) List() ([]*entity.Car, error) {
	out := make([]*entity.Car, 0, len(r.cars))
	for _, c := range r.cars {
		out = append(out, c)
	}
	return out, nil
}

type fakePackageRepo struct {
	pkgs map[string]*entity.WashPackage
}

func newFakePackageRepo() *fakePackageRepo {
	return &fakePackageRepo{pkgs: make(map[string]*entity.WashPackage)}
}

func (r *fakePackageRepo) Create(pkg *entity.WashPackage) error { r.pkgs[pkg.ID] = pkg; return nil }
func (r *fakePackageRepo) GetByID(id string) (*entity.WashPackage, error) {
	return r.pkgs[id], nil
}
func (r *fakePackageRepo) GetByName(name string) (*entity.WashPackage, error) {
	for _, p := range r.pkgs {
		if p.PackageName == name {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakePackageRepo) List() ([]*entity.WashPackage, error) {
	out := make([]*entity.WashPackage, 0, len(r.pkgs))
	for _, p := range r.pkgs {
		out = append(out, p)
	}
	return out, nil
}

type fakeServiceRepo struct {
	services map[string]*entity.ServiceRecord
	cars     *fakeCarRepo
	pkgs     *fakePackageRepo
}

func newFakeServiceRepo(cars *fakeCarRepo, pkgs *fakePackageRepo) *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[string]*entity.ServiceRecord), cars: cars, pkgs: pkgs}
}

func (r *fakeServiceRepo) Create(s *entity.ServiceRecord) error { r.services[s.ID] = s; return nil }
func (r *fakeServiceRepo) GetByID(id string) (*entity.ServiceRecord, error) {
	return r.services[id], nil
}
func (r *fakeServiceRepo) List() ([]repository.ServiceRecordJoined, error) {
	out := make([]repository.ServiceRecordJoined, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, repository.ServiceRecordJoined{
			Service: *s,
			Car:     *r.cars.cars[s.CarID],
			Package: *r.pkgs.pkgs[s.PackageID],
		})
	}
	return out, nil
}
func (r *fakeServiceRepo) Update(s *entity.ServiceRecord) error { r.services[s.ID] = s; return nil }
func (r *fakeServiceRepo) Delete(id string) error               { delete(r.services, id); return nil }

type fakePaymentRepo struct {
	payments []*entity.Payment
	services *fakeServiceRepo
}

func (r *fakePaymentRepo) Create(p *entity.Payment) error {
	r.payments = append(r.payments, p)
	return nil
}
func (r *fakePaymentRepo) List() ([]repository.PaymentJoined, error) {
	out := make([]repository.PaymentJoined, 0, len(r.payments))
	for _, p := range r.payments {
		s := r.services.services[p.ServiceRecordID]
		out = append(out, repository.PaymentJoined{
			Payment: *p,
			Service: *s,
			Car:     *r.services.cars.cars[s.CarID],
			Package: *r.services.pkgs.pkgs[s.PackageID],
		})
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes, sin
// transacción real.
type fakeTxRunner struct {
	services *fakeServiceRepo
	payments *fakePaymentRepo
}

func (r *fakeTxRunner) RunPayment(_ context.Context, fn func(
	serviceRepo repository.ServiceRecordRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	return fn(r.services, r.payments)
}

// dec devuelve un puntero a decimal, como llega de un cuerpo JSON con la clave presente.
func dec(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

// seedCarAndPackage registra un carro y un paquete y devuelve sus IDs.
func seedCarAndPackage(t *testing.T, cars *fakeCarRepo, pkgs *fakePackageRepo) (carID, pkgID string) {
	t.Helper()
	car := &entity.Car{ID: "car-1", PlateNumber: "ABC-123", DriverName: "Juan"}
	require.NoError(t, cars.Create(car))
	pkg := &entity.WashPackage{ID: "pkg-1", PackageName: "Basic Wash", PackagePrice: decimal.NewFromInt(5000)}
	require.NoError(t, pkgs.Create(pkg))
	return car.ID, pkg.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CarUseCase
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: crear y listar un vehículo.
func TestCarUseCase_CreateYList(t *testing.T) {
	uc := usecase.NewCarUseCase(newFakeCarRepo())

	out, err := uc.Create(dto.CreateCarRequest{
		PlateNumber: "ABC-123",
		CarType:     "sedan",
		CarSize:     "medium",
		DriverName:  "Juan",
		PhoneNumber: "3001234567",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "ABC-123", out.PlateNumber)

	list, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

// Caso 2: placa duplicada produce ErrDuplicate.
func TestCarUseCase_PlacaDuplicada(t *testing.T) {
	uc := usecase.NewCarUseCase(newFakeCarRepo())

	_, err := uc.Create(dto.CreateCarRequest{PlateNumber: "ABC-123"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateCarRequest{PlateNumber: "ABC-123"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests PackageUseCase
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: el precio negativo se rechaza antes de tocar el repositorio.
func TestPackageUseCase_PrecioNegativo(t *testing.T) {
	uc := usecase.NewPackageUseCase(newFakePackageRepo())

	_, err := uc.Create(dto.CreatePackageRequest{
		PackageName:  "Basic Wash",
		PackagePrice: dec(-100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso 2: un cuerpo sin packagePrice se rechaza; el cero implícito del JSON
// no debe convertirse en un paquete gratis.
func TestPackageUseCase_PrecioAusente(t *testing.T) {
	repo := newFakePackageRepo()
	uc := usecase.NewPackageUseCase(repo)

	_, err := uc.Create(dto.CreatePackageRequest{PackageName: "Basic Wash"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.pkgs, "nada debe persistirse")
}

// Caso 3: nombre duplicado produce ErrDuplicate.
func TestPackageUseCase_NombreDuplicado(t *testing.T) {
	uc := usecase.NewPackageUseCase(newFakePackageRepo())

	_, err := uc.Create(dto.CreatePackageRequest{
		PackageName:  "Basic Wash",
		PackagePrice: dec(5000),
	})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreatePackageRequest{
		PackageName:  "Basic Wash",
		PackagePrice: dec(6000),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ServiceUseCase
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: crear un servicio exige que el carro y el paquete existan.
func TestServiceUseCase_ReferenciasDebenExistir(t *testing.T) {
	cars := newFakeCarRepo()
	pkgs := newFakePackageRepo()
	services := newFakeServiceRepo(cars, pkgs)
	uc := usecase.NewServiceUseCase(services, cars, pkgs)

	_, err := uc.Create(dto.CreateServiceRequest{CarID: "no-existe", PackageID: "tampoco"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	carID, pkgID := seedCarAndPackage(t, cars, pkgs)
	out, err := uc.Create(dto.CreateServiceRequest{CarID: carID, PackageID: pkgID})
	require.NoError(t, err)
	assert.Equal(t, carID, out.CarID)
	assert.False(t, out.ServiceDate.IsZero(), "sin serviceDate explícito se usa now")
}

// Caso 2: update parcial conserva los campos no enviados.
func TestServiceUseCase_UpdateParcial(t *testing.T) {
	cars := newFakeCarRepo()
	pkgs := newFakePackageRepo()
	services := newFakeServiceRepo(cars, pkgs)
	uc := usecase.NewServiceUseCase(services, cars, pkgs)

	carID, pkgID := seedCarAndPackage(t, cars, pkgs)
	created, err := uc.Create(dto.CreateServiceRequest{CarID: carID, PackageID: pkgID})
	require.NoError(t, err)

	newDate := time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)
	updated, err := uc.Update(created.ID, dto.UpdateServiceRequest{ServiceDate: &newDate})
	require.NoError(t, err)

	assert.Equal(t, newDate, updated.ServiceDate)
	assert.Equal(t, carID, updated.CarID, "los campos no enviados se conservan")
	assert.Equal(t, pkgID, updated.PackageID)
}

// Caso 3: update y delete sobre un ID inexistente producen ErrNotFound.
func TestServiceUseCase_NoExiste(t *testing.T) {
	cars := newFakeCarRepo()
	pkgs := newFakePackageRepo()
	services := newFakeServiceRepo(cars, pkgs)
	uc := usecase.NewServiceUseCase(services, cars, pkgs)

	_, err := uc.Update("no-existe", dto.UpdateServiceRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests PaymentUseCase
// ──────────────────────────────────────────────────────────────────────────────

func buildPaymentUC(t *testing.T) (*usecase.PaymentUseCase, *usecase.ServiceUseCase, string, string) {
	t.Helper()
	cars := newFakeCarRepo()
	pkgs := newFakePackageRepo()
	services := newFakeServiceRepo(cars, pkgs)
	payments := &fakePaymentRepo{services: services}
	runner := &fakeTxRunner{services: services, payments: payments}

	carID, pkgID := seedCarAndPackage(t, cars, pkgs)
	return usecase.NewPaymentUseCase(runner, payments),
		usecase.NewServiceUseCase(services, cars, pkgs),
		carID, pkgID
}

// Caso 1: registrar un pago contra un servicio existente.
func TestPaymentUseCase_Create(t *testing.T) {
	paymentUC, serviceUC, carID, pkgID := buildPaymentUC(t)

	svc, err := serviceUC.Create(dto.CreateServiceRequest{CarID: carID, PackageID: pkgID})
	require.NoError(t, err)

	out, err := paymentUC.Create(context.Background(), dto.CreatePaymentRequest{
		ServiceRecordID: svc.ID,
		AmountPaid:      dec(5000),
	})
	require.NoError(t, err)
	assert.Equal(t, svc.ID, out.ServiceRecordID)
	assert.False(t, out.PaymentDate.IsZero(), "sin paymentDate explícito se usa now")

	list, err := paymentUC.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ABC-123", list[0].Service.Car.PlateNumber,
		"el listado expande el join de tres niveles")
}

// Caso 2: pago contra un servicio inexistente produce ErrNotFound.
func TestPaymentUseCase_ServicioInexistente(t *testing.T) {
	paymentUC, _, _, _ := buildPaymentUC(t)

	_, err := paymentUC.Create(context.Background(), dto.CreatePaymentRequest{
		ServiceRecordID: "no-existe",
		AmountPaid:      dec(5000),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso 3: monto negativo se rechaza.
func TestPaymentUseCase_MontoNegativo(t *testing.T) {
	paymentUC, _, _, _ := buildPaymentUC(t)

	_, err := paymentUC.Create(context.Background(), dto.CreatePaymentRequest{
		ServiceRecordID: "cualquiera",
		AmountPaid:      dec(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso 4: un cuerpo sin amountPaid se rechaza; el cero implícito del JSON no
// debe persistirse como un pago de monto 0.
func TestPaymentUseCase_MontoAusente(t *testing.T) {
	paymentUC, serviceUC, carID, pkgID := buildPaymentUC(t)

	svc, err := serviceUC.Create(dto.CreateServiceRequest{CarID: carID, PackageID: pkgID})
	require.NoError(t, err)

	_, err = paymentUC.Create(context.Background(), dto.CreatePaymentRequest{
		ServiceRecordID: svc.ID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := paymentUC.List()
	require.NoError(t, err)
	assert.Empty(t, list, "nada debe persistirse")
}

// Caso 5: no se impone un pago único por servicio — un segundo pago sobre el
// mismo servicio es válido.
func TestPaymentUseCase_VariosPagosMismoServicio(t *testing.T) {
	paymentUC, serviceUC, carID, pkgID := buildPaymentUC(t)

	svc, err := serviceUC.Create(dto.CreateServiceRequest{CarID: carID, PackageID: pkgID})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = paymentUC.Create(context.Background(), dto.CreatePaymentRequest{
			ServiceRecordID: svc.ID,
			AmountPaid:      dec(2500),
		})
		require.NoError(t, err)
	}

	list, err := paymentUC.List()
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
