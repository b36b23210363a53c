package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderItemRequest una línea del pedido a crear.
type CreateOrderItemRequest struct {
	FireExtinguisherID string          `json:"fire_extinguisher_id" validate:"required"`
	Quantity           int             `json:"quantity" validate:"required,min=1"`
	UnitPrice          decimal.Decimal `json:"unit_price" validate:"required"`
}

// CreateOrderRequest entrada para crear un pedido. El total no se acepta del
// cliente: siempre se calcula como la suma de las líneas.
type CreateOrderRequest struct {
	CustomerID string                   `json:"customer_id" validate:"required"`
	Items      []CreateOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest entrada para cambiar el estado de un pedido.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled"`
}

// OrderItemResponse una línea del pedido con el producto resuelto.
type OrderItemResponse struct {
	ID                 string          `json:"id"`
	FireExtinguisherID string          `json:"fire_extinguisher_id"`
	ExtinguisherName   string          `json:"extinguisher_name"`
	ExtinguisherType   string          `json:"extinguisher_type"`
	Quantity           int             `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	LineTotal          decimal.Decimal `json:"line_total"`
}

// OrderResponse salida de un pedido con sus líneas.
type OrderResponse struct {
	ID          string              `json:"id"`
	CustomerID  string              `json:"customer_id"`
	OrderDate   time.Time           `json:"order_date"`
	Status      string              `json:"status"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// OrderListResponse pedidos de un cliente.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
}
