package usecase

import (
	"context"

	"github.com/firesafepro/extintores-api/internal/domain/repository"
)

// CustomerTxRunner ejecuta la creación de cliente y sus direcciones dentro de
// una transacción: o se persisten todas las direcciones y el cliente, o nada.
type CustomerTxRunner interface {
	RunCustomer(ctx context.Context, fn func(
		addressRepo repository.AddressRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}

// OrderTxRunner ejecuta la creación de un pedido y sus líneas dentro de una
// transacción, con acceso al catálogo para validar los productos referenciados.
type OrderTxRunner interface {
	RunOrder(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		extRepo repository.ExtinguisherRepository,
	) error) error
}
