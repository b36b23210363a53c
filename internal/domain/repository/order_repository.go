package repository

import "github.com/firesafepro/extintores-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus líneas.
// Las líneas son inmutables después de la creación; solo cambia el estado.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItems(items []entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	ListByCustomer(customerID string) ([]*entity.Order, error)
	UpdateStatus(id, status string) error
	Delete(id string) error
}
