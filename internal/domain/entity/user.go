package entity

import "time"

// Roles válidos para User.
const (
	RoleSystemAdmin  = "system_admin"
	RoleCompanyAdmin = "company_admin"
	RoleCompanyUser  = "company_user"
)

// User representa un usuario del sistema (pertenece a una Company).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // system_admin, company_admin, company_user
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
