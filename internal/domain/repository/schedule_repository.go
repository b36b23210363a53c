package repository

import "github.com/firesafepro/extintores-api/internal/domain/entity"

// ScheduleRepository define el puerto de persistencia para ServiceSchedule.
type ScheduleRepository interface {
	Create(schedule *entity.ServiceSchedule) error
	GetByID(id string) (*entity.ServiceSchedule, error)
	ListByCustomer(customerID string) ([]*entity.ServiceSchedule, error)
	Update(schedule *entity.ServiceSchedule) error
	Delete(id string) error
}
