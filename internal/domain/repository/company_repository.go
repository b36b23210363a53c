package repository

import "github.com/firesafepro/extintores-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company,
// incluida la membresía de clientes (tabla de unión company_customers).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByName(name string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
	Update(company *entity.Company) error
	Delete(id string) error

	AddCustomer(companyID, customerID string) error
	RemoveCustomer(companyID, customerID string) error
}
