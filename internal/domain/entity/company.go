package entity

import "time"

// Estados válidos de una empresa.
const (
	CompanyActive    = "active"
	CompanySuspended = "suspended"
	CompanyInactive  = "inactive"
)

// Company representa una empresa de mantenimiento contra incendios (tenant del sistema).
// Los clientes se asocian vía la tabla de unión company_customers (muchos a muchos).
type Company struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
