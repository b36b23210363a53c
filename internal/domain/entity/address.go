package entity

import "time"

// Address dirección postal de un cliente: principal, de facturación o de envío.
type Address struct {
	ID         string
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
