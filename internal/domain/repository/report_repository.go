package repository

import "github.com/firesafepro/extintores-api/internal/domain/entity"

// ReportRepository agrupa las consultas de solo lectura para reportes de catálogo.
type ReportRepository interface {
	// ListCatalog devuelve el catálogo completo de extintores.
	ListCatalog() ([]*entity.FireExtinguisher, error)
	// SumItemQuantitiesByExtinguisher suma las cantidades de líneas de pedido
	// agrupadas por extintor, sobre todas las órdenes de todos los clientes.
	SumItemQuantitiesByExtinguisher() (map[string]int, error)
}
