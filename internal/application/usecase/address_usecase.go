package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/firesafepro/extintores-api/internal/application/dto"
	"github.com/firesafepro/extintores-api/internal/domain"
	"github.com/firesafepro/extintores-api/internal/domain/entity"
	"github.com/firesafepro/extintores-api/internal/domain/repository"
)

// AddressUseCase casos de uso para direcciones sueltas.
type AddressUseCase struct {
	repo repository.AddressRepository
}

// NewAddressUseCase construye el caso de uso.
func NewAddressUseCase(repo repository.AddressRepository) *AddressUseCase {
	return &AddressUseCase{repo: repo}
}

// Create crea una dirección.
func (uc *AddressUseCase) Create(in dto.AddressRequest) (*dto.AddressResponse, error) {
	if in.Street == "" || in.City == "" || in.Country == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	address := &entity.Address{
		ID:         uuid.New().String(),
		Street:     in.Street,
		City:       in.City,
		State:      in.State,
		PostalCode: in.PostalCode,
		Country:    in.Country,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(address); err != nil {
		return nil, err
	}
	return entityToAddressResponse(address), nil
}

// GetByID obtiene una dirección por ID.
func (uc *AddressUseCase) GetByID(id string) (*dto.AddressResponse, error) {
	address, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, nil
	}
	return entityToAddressResponse(address), nil
}

// List lista direcciones con paginación.
func (uc *AddressUseCase) List(limit, offset int) ([]dto.AddressResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AddressResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *entityToAddressResponse(a))
	}
	return items, nil
}

// Update reemplaza los campos de una dirección existente.
func (uc *AddressUseCase) Update(id string, in dto.AddressRequest) (*dto.AddressResponse, error) {
	address, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, domain.ErrNotFound
	}
	address.Street = in.Street
	address.City = in.City
	address.State = in.State
	address.PostalCode = in.PostalCode
	address.Country = in.Country
	address.UpdatedAt = time.Now()
	if err := uc.repo.Update(address); err != nil {
		return nil, err
	}
	return entityToAddressResponse(address), nil
}

// Delete elimina una dirección por ID.
func (uc *AddressUseCase) Delete(id string) error {
	address, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if address == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func entityToAddressResponse(a *entity.Address) *dto.AddressResponse {
	if a == nil {
		return nil
	}
	return &dto.AddressResponse{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
