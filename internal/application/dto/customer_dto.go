package dto

import "time"

// CreateCustomerRequest entrada para crear un cliente. La dirección principal es
// obligatoria y se crea en la misma transacción; facturación y envío son opcionales.
type CreateCustomerRequest struct {
	Name            string          `json:"name" validate:"required,min=1,max=255"`
	ContactPerson   string          `json:"contact_person"`
	ContactEmail    string          `json:"contact_email" validate:"required,email"`
	ContactPhone    string          `json:"contact_phone"`
	Address         AddressRequest  `json:"address" validate:"required"`
	BillingAddress  *AddressRequest `json:"billing_address"`
	ShippingAddress *AddressRequest `json:"shipping_address"`
}

// UpdateCustomerRequest entrada para actualizar un cliente (campos opcionales).
type UpdateCustomerRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=255"`
	ContactPerson *string `json:"contact_person"`
	ContactEmail  *string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone  *string `json:"contact_phone"`
	AccountStatus *string `json:"account_status" validate:"omitempty,oneof=active inactive"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	ContactPerson     string    `json:"contact_person"`
	ContactEmail      string    `json:"contact_email"`
	ContactPhone      string    `json:"contact_phone"`
	AddressID         string    `json:"address_id"`
	BillingAddressID  *string   `json:"billing_address_id,omitempty"`
	ShippingAddressID *string   `json:"shipping_address_id,omitempty"`
	AccountStatus     string    `json:"account_status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
