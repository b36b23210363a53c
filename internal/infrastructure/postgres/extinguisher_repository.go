package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/firesafepro/extintores-api/internal/domain"
	"github.com/firesafepro/extintores-api/internal/domain/entity"
	"github.com/firesafepro/extintores-api/internal/domain/repository"
)

var _ repository.ExtinguisherRepository = (*ExtinguisherRepo)(nil)

// ExtinguisherRepo implementación de ExtinguisherRepository (usable con pool o tx).
type ExtinguisherRepo struct {
	q Querier
}

// NewExtinguisherRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExtinguisherRepository(q Querier) *ExtinguisherRepo {
	return &ExtinguisherRepo{q: q}
}

const extinguisherColumns = `id, product_id, name, description, type, fire_class, capacity,
	inspection_date, expiry_date, manufacture_date, inventory, certification,
	standards_compliance, batch_number, warranty_months, discount, created_at, updated_at`

// Create persiste un nuevo producto del catálogo.
func (r *ExtinguisherRepo) Create(ext *entity.FireExtinguisher) error {
	query := `
		INSERT INTO fire_extinguishers (id, product_id, name, description, type, fire_class, capacity,
			inspection_date, expiry_date, manufacture_date, inventory, certification,
			standards_compliance, batch_number, warranty_months, discount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		ext.ID, ext.ProductID, ext.Name, ext.Description, ext.Type, ext.FireClass, ext.Capacity,
		ext.InspectionDate, ext.ExpiryDate, ext.ManufactureDate, ext.Inventory, ext.Certification,
		ext.StandardsCompliance, ext.BatchNumber, ext.WarrantyMonths, ext.Discount,
		ext.CreatedAt, ext.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert fire_extinguisher: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ExtinguisherRepo) GetByID(id string) (*entity.FireExtinguisher, error) {
	return r.getByField("id", id)
}

// GetByProductID obtiene un producto por su SKU.
func (r *ExtinguisherRepo) GetByProductID(productID string) (*entity.FireExtinguisher, error) {
	return r.getByField("product_id", productID)
}

func (r *ExtinguisherRepo) getByField(field, value string) (*entity.FireExtinguisher, error) {
	query := fmt.Sprintf(`SELECT %s FROM fire_extinguishers WHERE %s = $1`, extinguisherColumns, field)
	var e entity.FireExtinguisher
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&e.ID, &e.ProductID, &e.Name, &e.Description, &e.Type, &e.FireClass, &e.Capacity,
		&e.InspectionDate, &e.ExpiryDate, &e.ManufactureDate, &e.Inventory, &e.Certification,
		&e.StandardsCompliance, &e.BatchNumber, &e.WarrantyMonths, &e.Discount,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fire_extinguisher by %s: %w", field, err)
	}
	return &e, nil
}

// List lista el catálogo con paginación.
func (r *ExtinguisherRepo) List(limit, offset int) ([]*entity.FireExtinguisher, error) {
	query := `SELECT ` + extinguisherColumns + ` FROM fire_extinguishers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list fire_extinguishers: %w", err)
	}
	defer rows.Close()
	return scanExtinguishers(rows)
}

// ListByCustomer devuelve los extintores que aparecen en las líneas de pedido
// del cliente, sin repetidos por producto.
func (r *ExtinguisherRepo) ListByCustomer(customerID string) ([]*entity.FireExtinguisher, error) {
	query := `
		SELECT DISTINCT fe.id, fe.product_id, fe.name, fe.description, fe.type, fe.fire_class, fe.capacity,
			fe.inspection_date, fe.expiry_date, fe.manufacture_date, fe.inventory, fe.certification,
			fe.standards_compliance, fe.batch_number, fe.warranty_months, fe.discount, fe.created_at, fe.updated_at
		FROM fire_extinguishers fe
		JOIN order_items oi ON oi.fire_extinguisher_id = fe.id
		JOIN orders o ON o.id = oi.order_id
		WHERE o.customer_id = $1
		ORDER BY fe.name`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list fire_extinguishers by customer: %w", err)
	}
	defer rows.Close()
	return scanExtinguishers(rows)
}

func scanExtinguishers(rows pgx.Rows) ([]*entity.FireExtinguisher, error) {
	var list []*entity.FireExtinguisher
	for rows.Next() {
		var e entity.FireExtinguisher
		if err := rows.Scan(
			&e.ID, &e.ProductID, &e.Name, &e.Description, &e.Type, &e.FireClass, &e.Capacity,
			&e.InspectionDate, &e.ExpiryDate, &e.ManufactureDate, &e.Inventory, &e.Certification,
			&e.StandardsCompliance, &e.BatchNumber, &e.WarrantyMonths, &e.Discount,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan fire_extinguisher: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza un producto del catálogo.
func (r *ExtinguisherRepo) Update(ext *entity.FireExtinguisher) error {
	query := `
		UPDATE fire_extinguishers SET product_id = $2, name = $3, description = $4, type = $5,
			fire_class = $6, capacity = $7, inspection_date = $8, expiry_date = $9, manufacture_date = $10,
			inventory = $11, certification = $12, standards_compliance = $13, batch_number = $14,
			warranty_months = $15, discount = $16, updated_at = $17
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ext.ID, ext.ProductID, ext.Name, ext.Description, ext.Type,
		ext.FireClass, ext.Capacity, ext.InspectionDate, ext.ExpiryDate, ext.ManufactureDate,
		ext.Inventory, ext.Certification, ext.StandardsCompliance, ext.BatchNumber,
		ext.WarrantyMonths, ext.Discount, ext.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update fire_extinguisher: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ExtinguisherRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM fire_extinguishers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete fire_extinguisher: %w", err)
	}
	return nil
}
