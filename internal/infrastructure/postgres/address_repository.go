package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/firesafepro/extintores-api/internal/domain/entity"
	"github.com/firesafepro/extintores-api/internal/domain/repository"
)

var _ repository.AddressRepository = (*AddressRepo)(nil)

// AddressRepo implementación de AddressRepository (usable con pool o tx).
type AddressRepo struct {
	q Querier
}

// NewAddressRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAddressRepository(q Querier) *AddressRepo {
	return &AddressRepo{q: q}
}

// Create persiste una nueva dirección.
func (r *AddressRepo) Create(address *entity.Address) error {
	query := `
		INSERT INTO addresses (id, street, city, state, postal_code, country, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		address.ID, address.Street, address.City, address.State, address.PostalCode, address.Country,
		address.CreatedAt, address.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert address: %w", err)
	}
	return nil
}

// GetByID obtiene una dirección por ID.
func (r *AddressRepo) GetByID(id string) (*entity.Address, error) {
	query := `
		SELECT id, street, city, state, postal_code, country, created_at, updated_at
		FROM addresses WHERE id = $1`
	var a entity.Address
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Street, &a.City, &a.State, &a.PostalCode, &a.Country, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get address: %w", err)
	}
	return &a, nil
}

// List lista direcciones con paginación.
func (r *AddressRepo) List(limit, offset int) ([]*entity.Address, error) {
	query := `
		SELECT id, street, city, state, postal_code, country, created_at, updated_at
		FROM addresses ORDER BY city, street LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Address
	for rows.Next() {
		var a entity.Address
		if err := rows.Scan(&a.ID, &a.Street, &a.City, &a.State, &a.PostalCode, &a.Country, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza una dirección.
func (r *AddressRepo) Update(address *entity.Address) error {
	query := `
		UPDATE addresses SET street = $2, city = $3, state = $4, postal_code = $5, country = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		address.ID, address.Street, address.City, address.State, address.PostalCode, address.Country, address.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	return nil
}

// Delete elimina una dirección por ID.
func (r *AddressRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	return nil
}
