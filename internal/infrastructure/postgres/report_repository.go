package postgres

import (
	"context"
	"fmt"

	"github.com/firesafepro/extintores-api/internal/domain/entity"
	"github.com/firesafepro/extintores-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los reportes de catálogo.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// ListCatalog devuelve el catálogo completo de extintores.
func (r *ReportRepo) ListCatalog() ([]*entity.FireExtinguisher, error) {
	query := `SELECT ` + extinguisherColumns + ` FROM fire_extinguishers ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	defer rows.Close()
	return scanExtinguishers(rows)
}

// SumItemQuantitiesByExtinguisher suma las cantidades de líneas de pedido
// agrupadas por extintor, sobre todo el historial de pedidos.
func (r *ReportRepo) SumItemQuantitiesByExtinguisher() (map[string]int, error) {
	query := `
		SELECT oi.fire_extinguisher_id, COALESCE(SUM(oi.quantity), 0)
		FROM order_items oi
		GROUP BY oi.fire_extinguisher_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("sum item quantities: %w", err)
	}
	defer rows.Close()
	totals := make(map[string]int)
	for rows.Next() {
		var id string
		var qty int
		if err := rows.Scan(&id, &qty); err != nil {
			return nil, fmt.Errorf("scan quantity row: %w", err)
		}
		totals[id] = qty
	}
	return totals, rows.Err()
}
