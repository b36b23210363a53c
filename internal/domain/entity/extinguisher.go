package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de extintor según agente (coinciden con el CHECK de fire_extinguishers.type).
const (
	TypeWater       = "Water"
	TypeWaterMist   = "Water Mist"
	TypeFoam        = "Foam"
	TypeCO2         = "CO2"
	TypePowder      = "Powder"
	TypeWetChemical = "Wet Chemical"
)

// Clases de fuego que puede combatir un extintor.
const (
	FireClassA          = "Class A"
	FireClassB          = "Class B"
	FireClassC          = "Class C"
	FireClassD          = "Class D"
	FireClassF          = "Class F"
	FireClassElectrical = "Electrical Fires"
)

// FireExtinguisher representa un producto del catálogo de extintores.
// El catálogo es global: no está acotado a una empresa ni a un cliente.
// Invariante de fechas: ManufactureDate <= InspectionDate <= ExpiryDate
// (se valida en el caso de uso al crear/actualizar, nunca en las derivaciones).
type FireExtinguisher struct {
	ID                  string
	ProductID           string // SKU único del catálogo
	Name                string
	Description         string
	Type                string // ver constantes Type*
	FireClass           string // ver constantes FireClass*
	Capacity            int    // kg o litros según agente
	InspectionDate      time.Time
	ExpiryDate          time.Time
	ManufactureDate     time.Time
	Inventory           int
	Certification       string // CE Marking, UL, EN3, NFPA, ...
	StandardsCompliance string // EN3, NFPA_10, ISO_11602, ...
	BatchNumber         string
	WarrantyMonths      int
	Discount            decimal.Decimal // porcentaje 0..100
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ValidDates verifica el invariante de orden de fechas del producto.
func (e *FireExtinguisher) ValidDates() bool {
	return !e.ManufactureDate.After(e.InspectionDate) && !e.InspectionDate.After(e.ExpiryDate)
}
