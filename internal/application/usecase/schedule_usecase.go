package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/firesafepro/extintores-api/internal/application/dto"
	"github.com/firesafepro/extintores-api/internal/domain"
	"github.com/firesafepro/extintores-api/internal/domain/entity"
	"github.com/firesafepro/extintores-api/internal/domain/repository"
)

// ScheduleUseCase casos de uso para agendas de servicio.
type ScheduleUseCase struct {
	repo         repository.ScheduleRepository
	customerRepo repository.CustomerRepository
	extRepo      repository.ExtinguisherRepository
}

// NewScheduleUseCase construye el caso de uso.
func NewScheduleUseCase(
	repo repository.ScheduleRepository,
	customerRepo repository.CustomerRepository,
	extRepo repository.ExtinguisherRepository,
) *ScheduleUseCase {
	return &ScheduleUseCase{repo: repo, customerRepo: customerRepo, extRepo: extRepo}
}

// Create agenda el servicio de un extintor para un cliente.
// Devuelve ErrInvalidInput si el próximo servicio es anterior al último.
func (uc *ScheduleUseCase) Create(in dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	if in.CustomerID == "" || in.FireExtinguisherID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.NextServiceDue.Before(in.LastServiceDate) {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	ext, err := uc.extRepo.GetByID(in.FireExtinguisherID)
	if err != nil {
		return nil, err
	}
	if ext == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	schedule := &entity.ServiceSchedule{
		ID:                 uuid.New().String(),
		CustomerID:         in.CustomerID,
		FireExtinguisherID: in.FireExtinguisherID,
		LastServiceDate:    in.LastServiceDate,
		NextServiceDue:     in.NextServiceDue,
		ExtinguisherName:   ext.Name,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(schedule); err != nil {
		return nil, err
	}
	return entityToScheduleResponse(schedule), nil
}

// GetByID obtiene una agenda por ID.
func (uc *ScheduleUseCase) GetByID(id string) (*dto.ScheduleResponse, error) {
	schedule, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, nil
	}
	return entityToScheduleResponse(schedule), nil
}

// ListByCustomer lista las agendas de un cliente.
func (uc *ScheduleUseCase) ListByCustomer(customerID string) (*dto.ScheduleListResponse, error) {
	list, err := uc.repo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ScheduleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *entityToScheduleResponse(s))
	}
	return &dto.ScheduleListResponse{Items: items}, nil
}

// Update actualiza las fechas presentes del request.
func (uc *ScheduleUseCase) Update(id string, in dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	schedule, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, domain.ErrNotFound
	}
	if in.LastServiceDate != nil {
		schedule.LastServiceDate = *in.LastServiceDate
	}
	if in.NextServiceDue != nil {
		schedule.NextServiceDue = *in.NextServiceDue
	}
	if schedule.NextServiceDue.Before(schedule.LastServiceDate) {
		return nil, domain.ErrInvalidInput
	}
	schedule.UpdatedAt = time.Now()
	if err := uc.repo.Update(schedule); err != nil {
		return nil, err
	}
	return entityToScheduleResponse(schedule), nil
}

// Delete elimina una agenda por ID.
func (uc *ScheduleUseCase) Delete(id string) error {
	schedule, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if schedule == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func entityToScheduleResponse(s *entity.ServiceSchedule) *dto.ScheduleResponse {
	if s == nil {
		return nil
	}
	return &dto.ScheduleResponse{
		ID:                 s.ID,
		CustomerID:         s.CustomerID,
		FireExtinguisherID: s.FireExtinguisherID,
		ExtinguisherName:   s.ExtinguisherName,
		LastServiceDate:    s.LastServiceDate,
		NextServiceDue:     s.NextServiceDue,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}
