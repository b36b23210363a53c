package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/firesafepro/extintores-api/internal/application/dto"
	"github.com/firesafepro/extintores-api/internal/domain"
	"github.com/firesafepro/extintores-api/internal/domain/entity"
	"github.com/firesafepro/extintores-api/internal/domain/repository"
)

// validExtinguisherTypes tipos aceptados al dar de alta un producto.
var validExtinguisherTypes = map[string]bool{
	entity.TypeWater:       true,
	entity.TypeWaterMist:   true,
	entity.TypeFoam:        true,
	entity.TypeCO2:         true,
	entity.TypePowder:      true,
	entity.TypeWetChemical: true,
}

// ExtinguisherUseCase casos de uso del catálogo de extintores.
// El orden de fechas (fabricación <= inspección <= vencimiento) se valida aquí,
// en la frontera de escritura, para que las derivaciones de calendario y
// reportes puedan asumir datos bien formados.
type ExtinguisherUseCase struct {
	repo repository.ExtinguisherRepository
}

// NewExtinguisherUseCase construye el caso de uso.
func NewExtinguisherUseCase(repo repository.ExtinguisherRepository) *ExtinguisherUseCase {
	return &ExtinguisherUseCase{repo: repo}
}

// Create da de alta un producto. Devuelve ErrDuplicate si el SKU ya existe y
// ErrInvalidInput si el tipo es desconocido o las fechas están desordenadas.
func (uc *ExtinguisherUseCase) Create(in dto.CreateExtinguisherRequest) (*dto.ExtinguisherResponse, error) {
	if in.ProductID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if !validExtinguisherTypes[in.Type] {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByProductID(in.ProductID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	ext := &entity.FireExtinguisher{
		ID:                  uuid.New().String(),
		ProductID:           in.ProductID,
		Name:                in.Name,
		Description:         in.Description,
		Type:                in.Type,
		FireClass:           in.FireClass,
		Capacity:            in.Capacity,
		InspectionDate:      in.InspectionDate,
		ExpiryDate:          in.ExpiryDate,
		ManufactureDate:     in.ManufactureDate,
		Inventory:           in.Inventory,
		Certification:       in.Certification,
		StandardsCompliance: in.StandardsCompliance,
		BatchNumber:         in.BatchNumber,
		WarrantyMonths:      in.WarrantyMonths,
		Discount:            in.Discount,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if !ext.ValidDates() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Create(ext); err != nil {
		return nil, err
	}
	return entityToExtinguisherResponse(ext), nil
}

// GetByID obtiene un producto por ID.
func (uc *ExtinguisherUseCase) GetByID(id string) (*dto.ExtinguisherResponse, error) {
	ext, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ext == nil {
		return nil, nil
	}
	return entityToExtinguisherResponse(ext), nil
}

// List lista el catálogo con paginación.
func (uc *ExtinguisherUseCase) List(limit, offset int) (*dto.ExtinguisherListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExtinguisherResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *entityToExtinguisherResponse(e))
	}
	return &dto.ExtinguisherListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza los campos presentes del request, revalidando el orden de fechas.
func (uc *ExtinguisherUseCase) Update(id string, in dto.UpdateExtinguisherRequest) (*dto.ExtinguisherResponse, error) {
	ext, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ext == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		ext.Name = *in.Name
	}
	if in.Description != nil {
		ext.Description = *in.Description
	}
	if in.Inventory != nil {
		ext.Inventory = *in.Inventory
	}
	if in.InspectionDate != nil {
		ext.InspectionDate = *in.InspectionDate
	}
	if in.ExpiryDate != nil {
		ext.ExpiryDate = *in.ExpiryDate
	}
	if in.Discount != nil {
		ext.Discount = *in.Discount
	}
	if in.BatchNumber != nil {
		ext.BatchNumber = *in.BatchNumber
	}
	if !ext.ValidDates() {
		return nil, domain.ErrInvalidInput
	}
	ext.UpdatedAt = time.Now()
	if err := uc.repo.Update(ext); err != nil {
		return nil, err
	}
	return entityToExtinguisherResponse(ext), nil
}

// Delete elimina un producto por ID.
func (uc *ExtinguisherUseCase) Delete(id string) error {
	ext, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if ext == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func entityToExtinguisherResponse(e *entity.FireExtinguisher) *dto.ExtinguisherResponse {
	if e == nil {
		return nil
	}
	return &dto.ExtinguisherResponse{
		ID:                  e.ID,
		ProductID:           e.ProductID,
		Name:                e.Name,
		Description:         e.Description,
		Type:                e.Type,
		FireClass:           e.FireClass,
		Capacity:            e.Capacity,
		InspectionDate:      e.InspectionDate,
		ExpiryDate:          e.ExpiryDate,
		ManufactureDate:     e.ManufactureDate,
		Inventory:           e.Inventory,
		Certification:       e.Certification,
		StandardsCompliance: e.StandardsCompliance,
		BatchNumber:         e.BatchNumber,
		WarrantyMonths:      e.WarrantyMonths,
		Discount:            e.Discount,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}
