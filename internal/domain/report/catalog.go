// Package report contiene los cálculos de reporte sobre pedidos y catálogo:
// conteo de extintores por tipo de un cliente y proyección de ventas por año.
// Son funciones puras sobre datos ya cargados; la capa de aplicación se encarga
// de traerlos de la base.
package report

import (
	"time"

	"github.com/firesafepro/extintores-api/internal/domain/entity"
)

// TotalExtinguishersByType acumula, por tipo de extintor, las cantidades de
// todas las líneas de todos los pedidos del cliente. Los tipos sin compras no
// aparecen en el mapa (nunca con valor cero). Un historial vacío devuelve un
// mapa vacío, no nil.
func TotalExtinguishersByType(orders []*entity.Order) map[string]int {
	counts := make(map[string]int)
	for _, order := range orders {
		for _, item := range order.Items {
			counts[item.ExtinguisherType] += item.Quantity
		}
	}
	return counts
}

// ProjectedSalesForYear suma las cantidades vendidas de los extintores del
// catálogo cuyo ExpiryDate cae dentro del año indicado, ambos extremos
// inclusive (1 de enero a 31 de diciembre). soldByProduct mapea ID de extintor
// a unidades vendidas en todas las órdenes de todos los clientes; los productos
// sin ventas aportan 0.
//
// Es un reporte global de catálogo: no está acotado a un cliente ni a una empresa.
func ProjectedSalesForYear(year int, catalog []*entity.FireExtinguisher, soldByProduct map[string]int) int {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	total := 0
	for _, ext := range catalog {
		if ext.ExpiryDate.Before(start) || ext.ExpiryDate.After(end) {
			continue
		}
		total += soldByProduct[ext.ID]
	}
	return total
}
