package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/firesafepro/extintores-api/internal/application/dto"
	"github.com/firesafepro/extintores-api/internal/domain"
	"github.com/firesafepro/extintores-api/internal/domain/entity"
	"github.com/firesafepro/extintores-api/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes. La creación es transaccional:
// la dirección principal (obligatoria) y las opcionales se persisten junto
// con el cliente vía CustomerTxRunner.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	txRunner CustomerTxRunner
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, txRunner CustomerTxRunner) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, txRunner: txRunner}
}

// Create crea el cliente y sus direcciones en una transacción.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.ContactEmail == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Address.Street == "" || in.Address.City == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:            uuid.New().String(),
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		ContactEmail:  in.ContactEmail,
		ContactPhone:  in.ContactPhone,
		AccountStatus: entity.AccountActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := uc.txRunner.RunCustomer(ctx, func(
		addressRepo repository.AddressRepository,
		customerRepo repository.CustomerRepository,
	) error {
		primary := addressFromRequest(in.Address, now)
		if err := addressRepo.Create(primary); err != nil {
			return err
		}
		customer.AddressID = primary.ID

		if in.BillingAddress != nil {
			billing := addressFromRequest(*in.BillingAddress, now)
			if err := addressRepo.Create(billing); err != nil {
				return err
			}
			customer.BillingAddressID = &billing.ID
		}
		if in.ShippingAddress != nil {
			shipping := addressFromRequest(*in.ShippingAddress, now)
			if err := addressRepo.Create(shipping); err != nil {
				return err
			}
			customer.ShippingAddressID = &shipping.ID
		}
		return customerRepo.Create(customer)
	})
	if err != nil {
		return nil, err
	}
	return entityToCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return entityToCustomerResponse(customer), nil
}

// List lista clientes con paginación.
func (uc *CustomerUseCase) List(limit, offset int) (*dto.CustomerListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListByCompany lista los clientes asociados a una empresa.
func (uc *CustomerUseCase) ListByCompany(companyID string) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCustomerResponse(c))
	}
	return items, nil
}

// Update actualiza los campos presentes del request.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.ContactPerson != nil {
		customer.ContactPerson = *in.ContactPerson
	}
	if in.ContactEmail != nil {
		customer.ContactEmail = *in.ContactEmail
	}
	if in.ContactPhone != nil {
		customer.ContactPhone = *in.ContactPhone
	}
	if in.AccountStatus != nil {
		customer.AccountStatus = *in.AccountStatus
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return entityToCustomerResponse(customer), nil
}

// Delete elimina un cliente por ID.
func (uc *CustomerUseCase) Delete(id string) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func addressFromRequest(in dto.AddressRequest, now time.Time) *entity.Address {
	return &entity.Address{
		ID:         uuid.New().String(),
		Street:     in.Street,
		City:       in.City,
		State:      in.State,
		PostalCode: in.PostalCode,
		Country:    in.Country,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func entityToCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:                c.ID,
		Name:              c.Name,
		ContactPerson:     c.ContactPerson,
		ContactEmail:      c.ContactEmail,
		ContactPhone:      c.ContactPhone,
		AddressID:         c.AddressID,
		BillingAddressID:  c.BillingAddressID,
		ShippingAddressID: c.ShippingAddressID,
		AccountStatus:     c.AccountStatus,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
