package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/firesafepro/extintores-api/internal/application/dto"
	"github.com/firesafepro/extintores-api/internal/domain"
	"github.com/firesafepro/extintores-api/internal/domain/entity"
	"github.com/firesafepro/extintores-api/internal/domain/repository"
)

// OrderUseCase casos de uso de pedidos. La creación valida cada producto del
// catálogo y calcula el total como la suma de las líneas; el request nunca
// aporta el total (invariante total = Σ cantidad × precio unitario).
type OrderUseCase struct {
	repo         repository.OrderRepository
	customerRepo repository.CustomerRepository
	txRunner     OrderTxRunner
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, customerRepo repository.CustomerRepository, txRunner OrderTxRunner) *OrderUseCase {
	return &OrderUseCase{repo: repo, customerRepo: customerRepo, txRunner: txRunner}
}

// Create crea un pedido con sus líneas en una transacción.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 || item.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	order := &entity.Order{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		OrderDate:  now,
		Status:     entity.OrderPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		extRepo repository.ExtinguisherRepository,
	) error {
		total := decimal.Zero
		items := make([]entity.OrderItem, 0, len(in.Items))
		for _, reqItem := range in.Items {
			ext, err := extRepo.GetByID(reqItem.FireExtinguisherID)
			if err != nil {
				return err
			}
			if ext == nil {
				return domain.ErrInvalidInput
			}
			item := entity.OrderItem{
				ID:                 uuid.New().String(),
				OrderID:            order.ID,
				FireExtinguisherID: ext.ID,
				Quantity:           reqItem.Quantity,
				UnitPrice:          reqItem.UnitPrice,
				ExtinguisherName:   ext.Name,
				ExtinguisherType:   ext.Type,
			}
			total = total.Add(item.LineTotal())
			items = append(items, item)
		}
		order.TotalAmount = total
		order.Items = items

		if err := orderRepo.Create(order); err != nil {
			return err
		}
		return orderRepo.CreateItems(items)
	})
	if err != nil {
		return nil, err
	}
	return entityToOrderResponse(order), nil
}

// GetByID obtiene un pedido con sus líneas.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return entityToOrderResponse(order), nil
}

// ListByCustomer lista los pedidos de un cliente con sus líneas.
func (uc *OrderUseCase) ListByCustomer(customerID string) (*dto.OrderListResponse, error) {
	orders, err := uc.repo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *entityToOrderResponse(o))
	}
	return &dto.OrderListResponse{Items: items}, nil
}

// UpdateStatus cambia el estado de un pedido. Solo se admite la transición
// pending → completed|cancelled; un pedido cerrado no vuelve a cambiar.
func (uc *OrderUseCase) UpdateStatus(id string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if in.Status != entity.OrderCompleted && in.Status != entity.OrderCancelled {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status != entity.OrderPending {
		return nil, domain.ErrConflict
	}
	if err := uc.repo.UpdateStatus(id, in.Status); err != nil {
		return nil, err
	}
	order.Status = in.Status
	order.UpdatedAt = time.Now()
	return entityToOrderResponse(order), nil
}

func entityToOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ID:                 it.ID,
			FireExtinguisherID: it.FireExtinguisherID,
			ExtinguisherName:   it.ExtinguisherName,
			ExtinguisherType:   it.ExtinguisherType,
			Quantity:           it.Quantity,
			UnitPrice:          it.UnitPrice,
			LineTotal:          it.LineTotal(),
		})
	}
	return &dto.OrderResponse{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		OrderDate:   o.OrderDate,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		Items:       items,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
