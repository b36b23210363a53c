package entity

import "time"

// Estados de cuenta válidos para Customer.
const (
	AccountActive   = "active"
	AccountInactive = "inactive"
)

// Customer representa un cliente final (el dueño de los extintores).
// Siempre tiene una dirección principal; las de facturación y envío son opcionales.
// Puede pertenecer a una o varias empresas (company_customers).
type Customer struct {
	ID                string
	Name              string
	ContactPerson     string
	ContactEmail      string
	ContactPhone      string
	AddressID         string
	BillingAddressID  *string
	ShippingAddressID *string
	AccountStatus     string // active, inactive
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
