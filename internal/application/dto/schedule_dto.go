package dto

import "time"

// CreateScheduleRequest entrada para agendar el servicio de un extintor.
type CreateScheduleRequest struct {
	CustomerID         string    `json:"customer_id" validate:"required"`
	FireExtinguisherID string    `json:"fire_extinguisher_id" validate:"required"`
	LastServiceDate    time.Time `json:"last_service_date" validate:"required"`
	NextServiceDue     time.Time `json:"next_service_due" validate:"required"`
}

// UpdateScheduleRequest entrada para actualizar una agenda (campos opcionales).
type UpdateScheduleRequest struct {
	LastServiceDate *time.Time `json:"last_service_date"`
	NextServiceDue  *time.Time `json:"next_service_due"`
}

// ScheduleResponse salida de una agenda de servicio.
type ScheduleResponse struct {
	ID                 string    `json:"id"`
	CustomerID         string    `json:"customer_id"`
	FireExtinguisherID string    `json:"fire_extinguisher_id"`
	ExtinguisherName   string    `json:"extinguisher_name"`
	LastServiceDate    time.Time `json:"last_service_date"`
	NextServiceDue     time.Time `json:"next_service_due"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ScheduleListResponse agendas de un cliente.
type ScheduleListResponse struct {
	Items []ScheduleResponse `json:"items"`
}
