package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExtinguisherRequest entrada para dar de alta un producto del catálogo.
// Las fechas deben cumplir manufacture_date <= inspection_date <= expiry_date.
type CreateExtinguisherRequest struct {
	ProductID           string          `json:"product_id" validate:"required"`
	Name                string          `json:"name" validate:"required,min=1,max=255"`
	Description         string          `json:"description"`
	Type                string          `json:"type" validate:"required"`
	FireClass           string          `json:"fire_class" validate:"required"`
	Capacity            int             `json:"capacity" validate:"min=0"`
	InspectionDate      time.Time       `json:"inspection_date" validate:"required"`
	ExpiryDate          time.Time       `json:"expiry_date" validate:"required"`
	ManufactureDate     time.Time       `json:"manufacture_date" validate:"required"`
	Inventory           int             `json:"inventory" validate:"min=0"`
	Certification       string          `json:"certification"`
	StandardsCompliance string          `json:"standards_compliance"`
	BatchNumber         string          `json:"batch_number"`
	WarrantyMonths      int             `json:"warranty_months" validate:"min=0"`
	Discount            decimal.Decimal `json:"discount"`
}

// UpdateExtinguisherRequest entrada para actualizar un producto (campos opcionales).
type UpdateExtinguisherRequest struct {
	Name            *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Description     *string          `json:"description"`
	Inventory       *int             `json:"inventory" validate:"omitempty,min=0"`
	InspectionDate  *time.Time       `json:"inspection_date"`
	ExpiryDate      *time.Time       `json:"expiry_date"`
	Discount        *decimal.Decimal `json:"discount"`
	BatchNumber     *string          `json:"batch_number"`
}

// ExtinguisherResponse salida de un producto del catálogo.
type ExtinguisherResponse struct {
	ID                  string          `json:"id"`
	ProductID           string          `json:"product_id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	Type                string          `json:"type"`
	FireClass           string          `json:"fire_class"`
	Capacity            int             `json:"capacity"`
	InspectionDate      time.Time       `json:"inspection_date"`
	ExpiryDate          time.Time       `json:"expiry_date"`
	ManufactureDate     time.Time       `json:"manufacture_date"`
	Inventory           int             `json:"inventory"`
	Certification       string          `json:"certification"`
	StandardsCompliance string          `json:"standards_compliance"`
	BatchNumber         string          `json:"batch_number"`
	WarrantyMonths      int             `json:"warranty_months"`
	Discount            decimal.Decimal `json:"discount"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// ExtinguisherListResponse lista paginada del catálogo.
type ExtinguisherListResponse struct {
	Items []ExtinguisherResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
