package repository

import "github.com/firesafepro/extintores-api/internal/domain/entity"

// AddressRepository define el puerto de persistencia para Address.
type AddressRepository interface {
	Create(address *entity.Address) error
	GetByID(id string) (*entity.Address, error)
	List(limit, offset int) ([]*entity.Address, error)
	Update(address *entity.Address) error
	Delete(id string) error
}
