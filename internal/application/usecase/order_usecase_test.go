package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firesafepro/extintores-api/internal/application/dto"
	"github.com/firesafepro/extintores-api/internal/application/usecase"
	"github.com/firesafepro/extintores-api/internal/domain"
	"github.com/firesafepro/extintores-api/internal/domain/entity"
	"github.com/firesafepro/extintores-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error { f.customers[c.ID] = c; return nil }
func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return f.customers[id], nil
}
func (f *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) { return nil, nil }
func (f *fakeCustomerRepo) ListByCompany(companyID string) ([]*entity.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) Update(c *entity.Customer) error { f.customers[c.ID] = c; return nil }
func (f *fakeCustomerRepo) Delete(id string) error          { delete(f.customers, id); return nil }

type fakeExtinguisherRepo struct {
	exts map[string]*entity.FireExtinguisher
}

func (f *fakeExtinguisherRepo) Create(e *entity.FireExtinguisher) error { f.exts[e.ID] = e; return nil }
func (f *fakeExtinguisherRepo) GetByID(id string) (*entity.FireExtinguisher, error) {
	return f.exts[id], nil
}
func (f *fakeExtinguisherRepo) GetByProductID(productID string) (*entity.FireExtinguisher, error) {
	for _, e := range f.exts {
		if e.ProductID == productID {
			return e, nil
		}
	}
	return nil, nil
}
func (f *fakeExtinguisherRepo) List(limit, offset int) ([]*entity.FireExtinguisher, error) {
	return nil, nil
}
func (f *fakeExtinguisherRepo) ListByCustomer(customerID string) ([]*entity.FireExtinguisher, error) {
	return nil, nil
}
func (f *fakeExtinguisherRepo) Update(e *entity.FireExtinguisher) error { f.exts[e.ID] = e; return nil }
func (f *fakeExtinguisherRepo) Delete(id string) error                  { delete(f.exts, id); return nil }

type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func (f *fakeOrderRepo) Create(o *entity.Order) error { f.orders[o.ID] = o; return nil }
func (f *fakeOrderRepo) CreateItems(items []entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	if o, ok := f.orders[items[0].OrderID]; ok {
		o.Items = items
	}
	return nil
}
func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) { return f.orders[id], nil }
func (f *fakeOrderRepo) ListByCustomer(customerID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}
func (f *fakeOrderRepo) UpdateStatus(id, status string) error {
	o, ok := f.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}
func (f *fakeOrderRepo) Delete(id string) error { delete(f.orders, id); return nil }

// fakeTxRunner ejecuta el callback directamente sobre los fakes, sin transacción.
type fakeTxRunner struct {
	orderRepo *fakeOrderRepo
	extRepo   *fakeExtinguisherRepo
}

func (f *fakeTxRunner) RunOrder(_ context.Context, fn func(
	orderRepo repository.OrderRepository,
	extRepo repository.ExtinguisherRepository,
) error) error {
	return fn(f.orderRepo, f.extRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

func newOrderFixture() (*usecase.OrderUseCase, *fakeOrderRepo, string, string, string) {
	customerID := uuid.NewString()
	extA := uuid.NewString()
	extB := uuid.NewString()

	customerRepo := &fakeCustomerRepo{customers: map[string]*entity.Customer{
		customerID: {ID: customerID, Name: "Hotel Centro", AccountStatus: entity.AccountActive},
	}}
	extRepo := &fakeExtinguisherRepo{exts: map[string]*entity.FireExtinguisher{
		extA: {ID: extA, ProductID: "PWD-6", Name: "Polvo ABC 6kg", Type: entity.TypePowder},
		extB: {ID: extB, ProductID: "CO2-5", Name: "CO2 5kg", Type: entity.TypeCO2},
	}}
	orderRepo := &fakeOrderRepo{orders: map[string]*entity.Order{}}
	txRunner := &fakeTxRunner{orderRepo: orderRepo, extRepo: extRepo}

	uc := usecase.NewOrderUseCase(orderRepo, customerRepo, txRunner)
	return uc, orderRepo, customerID, extA, extB
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

// El total del pedido siempre es la suma de cantidad × precio unitario de las
// líneas, sin importar lo que mande el cliente.
func TestOrderCreate_CalculaTotalDeLasLineas(t *testing.T) {
	uc, _, customerID, extA, extB := newOrderFixture()

	out, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: customerID,
		Items: []dto.CreateOrderItemRequest{
			{FireExtinguisherID: extA, Quantity: 3, UnitPrice: decimal.NewFromInt(50)},
			{FireExtinguisherID: extB, Quantity: 2, UnitPrice: decimal.NewFromFloat(75.50)},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	// 3×50 + 2×75.50 = 301
	assert.True(t, decimal.NewFromInt(301).Equal(out.TotalAmount),
		"total esperado 301, obtenido %s", out.TotalAmount)
	assert.Equal(t, entity.OrderPending, out.Status, "todo pedido nace pendiente")
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Polvo ABC 6kg", out.Items[0].ExtinguisherName)
	assert.True(t, decimal.NewFromInt(150).Equal(out.Items[0].LineTotal))
}

func TestOrderCreate_SinLineas_Rechazado(t *testing.T) {
	uc, _, customerID, _, _ := newOrderFixture()

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{CustomerID: customerID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderCreate_CantidadInvalida_Rechazado(t *testing.T) {
	uc, _, customerID, extA, _ := newOrderFixture()

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: customerID,
		Items: []dto.CreateOrderItemRequest{
			{FireExtinguisherID: extA, Quantity: 0, UnitPrice: decimal.NewFromInt(50)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderCreate_ClienteInexistente_NotFound(t *testing.T) {
	uc, _, _, extA, _ := newOrderFixture()

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: uuid.NewString(),
		Items: []dto.CreateOrderItemRequest{
			{FireExtinguisherID: extA, Quantity: 1, UnitPrice: decimal.NewFromInt(50)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderCreate_ExtintorInexistente_Rechazado(t *testing.T) {
	uc, orderRepo, customerID, _, _ := newOrderFixture()

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: customerID,
		Items: []dto.CreateOrderItemRequest{
			{FireExtinguisherID: uuid.NewString(), Quantity: 1, UnitPrice: decimal.NewFromInt(50)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, orderRepo.orders, "un pedido rechazado no debe quedar persistido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests UpdateStatus
// ──────────────────────────────────────────────────────────────────────────────

func createPendingOrder(t *testing.T, uc *usecase.OrderUseCase, customerID, extID string) string {
	t.Helper()
	out, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: customerID,
		Items: []dto.CreateOrderItemRequest{
			{FireExtinguisherID: extID, Quantity: 1, UnitPrice: decimal.NewFromInt(100)},
		},
	})
	require.NoError(t, err)
	return out.ID
}

func TestOrderUpdateStatus_PendienteACompletado(t *testing.T) {
	uc, _, customerID, extA, _ := newOrderFixture()
	orderID := createPendingOrder(t, uc, customerID, extA)

	out, err := uc.UpdateStatus(orderID, dto.UpdateOrderStatusRequest{Status: entity.OrderCompleted})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, out.Status)
	assert.WithinDuration(t, time.Now(), out.UpdatedAt, time.Second)
}

func TestOrderUpdateStatus_PendienteACancelado(t *testing.T) {
	uc, _, customerID, extA, _ := newOrderFixture()
	orderID := createPendingOrder(t, uc, customerID, extA)

	out, err := uc.UpdateStatus(orderID, dto.UpdateOrderStatusRequest{Status: entity.OrderCancelled})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, out.Status)
}

// Un pedido cerrado (completado o cancelado) no vuelve a cambiar de estado.
func TestOrderUpdateStatus_PedidoCerrado_Conflicto(t *testing.T) {
	uc, _, customerID, extA, _ := newOrderFixture()
	orderID := createPendingOrder(t, uc, customerID, extA)

	_, err := uc.UpdateStatus(orderID, dto.UpdateOrderStatusRequest{Status: entity.OrderCompleted})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(orderID, dto.UpdateOrderStatusRequest{Status: entity.OrderCancelled})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestOrderUpdateStatus_EstadoInvalido_Rechazado(t *testing.T) {
	uc, _, customerID, extA, _ := newOrderFixture()
	orderID := createPendingOrder(t, uc, customerID, extA)

	_, err := uc.UpdateStatus(orderID, dto.UpdateOrderStatusRequest{Status: "pending"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderUpdateStatus_PedidoInexistente_NotFound(t *testing.T) {
	uc, _, _, _, _ := newOrderFixture()

	_, err := uc.UpdateStatus(uuid.NewString(), dto.UpdateOrderStatusRequest{Status: entity.OrderCompleted})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
