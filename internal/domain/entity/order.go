package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Order.
const (
	OrderPending   = "pending"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// Order representa un pedido de extintores de un cliente.
// TotalAmount siempre es la suma de Quantity × UnitPrice de sus líneas;
// se calcula al crear el pedido, nunca se acepta del request.
type Order struct {
	ID          string
	CustomerID  string
	OrderDate   time.Time
	Status      string // pending, completed, cancelled
	TotalAmount decimal.Decimal
	Items       []OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderItem es una línea del pedido: un extintor con cantidad y precio unitario.
// ExtinguisherName y ExtinguisherType se resuelven por JOIN al leer (solo lectura).
type OrderItem struct {
	ID                 string
	OrderID            string
	FireExtinguisherID string
	Quantity           int
	UnitPrice          decimal.Decimal
	ExtinguisherName   string
	ExtinguisherType   string
}

// LineTotal devuelve Quantity × UnitPrice de la línea.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
