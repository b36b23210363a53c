package dto

import "time"

// CalendarEventResponse un evento del calendario de mantenimiento.
// Las fechas pueden estar en el pasado: el feed no filtra por "hoy".
type CalendarEventResponse struct {
	Type         string    `json:"type"`
	Date         time.Time `json:"date"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name,omitempty"`
	Description  string    `json:"description"`
}

// CalendarResponse feed de eventos ordenado ascendente por fecha.
type CalendarResponse struct {
	Events []CalendarEventResponse `json:"events"`
}
