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

var _ repository.ScheduleRepository = (*ScheduleRepo)(nil)

// ScheduleRepo implementación de ScheduleRepository (usable con pool o tx).
type ScheduleRepo struct {
	q Querier
}

// NewScheduleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewScheduleRepository(q Querier) *ScheduleRepo {
	return &ScheduleRepo{q: q}
}

// Create persiste un nuevo programa de servicio.
func (r *ScheduleRepo) Create(schedule *entity.ServiceSchedule) error {
	query := `
		INSERT INTO service_schedules (id, customer_id, fire_extinguisher_id,
			last_service_date, next_service_due, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		schedule.ID, schedule.CustomerID, schedule.FireExtinguisherID,
		schedule.LastServiceDate, schedule.NextServiceDue, schedule.CreatedAt, schedule.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert service_schedule: %w", err)
	}
	return nil
}

// GetByID obtiene un programa por ID con el nombre del extintor resuelto por JOIN.
func (r *ScheduleRepo) GetByID(id string) (*entity.ServiceSchedule, error) {
	query := `
		SELECT ss.id, ss.customer_id, ss.fire_extinguisher_id,
			ss.last_service_date, ss.next_service_due, fe.name, ss.created_at, ss.updated_at
		FROM service_schedules ss
		JOIN fire_extinguishers fe ON fe.id = ss.fire_extinguisher_id
		WHERE ss.id = $1`
	var s entity.ServiceSchedule
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CustomerID, &s.FireExtinguisherID,
		&s.LastServiceDate, &s.NextServiceDue, &s.ExtinguisherName, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service_schedule: %w", err)
	}
	return &s, nil
}

// ListByCustomer lista los programas de un cliente, ordenados por fecha de
// creación ascendente (el orden de alta es el desempate del calendario).
func (r *ScheduleRepo) ListByCustomer(customerID string) ([]*entity.ServiceSchedule, error) {
	query := `
		SELECT ss.id, ss.customer_id, ss.fire_extinguisher_id,
			ss.last_service_date, ss.next_service_due, fe.name, ss.created_at, ss.updated_at
		FROM service_schedules ss
		JOIN fire_extinguishers fe ON fe.id = ss.fire_extinguisher_id
		WHERE ss.customer_id = $1
		ORDER BY ss.created_at, ss.id`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list service_schedules by customer: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServiceSchedule
	for rows.Next() {
		var s entity.ServiceSchedule
		if err := rows.Scan(
			&s.ID, &s.CustomerID, &s.FireExtinguisherID,
			&s.LastServiceDate, &s.NextServiceDue, &s.ExtinguisherName, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan service_schedule: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza las fechas de servicio de un programa.
func (r *ScheduleRepo) Update(schedule *entity.ServiceSchedule) error {
	query := `
		UPDATE service_schedules SET last_service_date = $2, next_service_due = $3, updated_at = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		schedule.ID, schedule.LastServiceDate, schedule.NextServiceDue, schedule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service_schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un programa por ID.
func (r *ScheduleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM service_schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service_schedule: %w", err)
	}
	return nil
}
