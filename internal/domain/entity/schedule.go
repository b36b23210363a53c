package entity

import "time"

// ServiceSchedule vincula un cliente con un extintor y sus fechas de mantenimiento.
// ExtinguisherName se resuelve por JOIN al leer (solo lectura).
type ServiceSchedule struct {
	ID                 string
	CustomerID         string
	FireExtinguisherID string
	LastServiceDate    time.Time
	NextServiceDue     time.Time
	ExtinguisherName   string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
