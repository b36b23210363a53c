package repository

import "github.com/firesafepro/extintores-api/internal/domain/entity"

// ExtinguisherRepository define el puerto de persistencia para el catálogo de extintores.
// ListByCustomer resuelve la asociación cliente→extintor a través de las líneas
// de pedido del cliente, sin repetidos por producto.
type ExtinguisherRepository interface {
	Create(ext *entity.FireExtinguisher) error
	GetByID(id string) (*entity.FireExtinguisher, error)
	GetByProductID(productID string) (*entity.FireExtinguisher, error)
	List(limit, offset int) ([]*entity.FireExtinguisher, error)
	ListByCustomer(customerID string) ([]*entity.FireExtinguisher, error)
	Update(ext *entity.FireExtinguisher) error
	Delete(id string) error
}
