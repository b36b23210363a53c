// Package calendar contiene los casos de uso del calendario de mantenimiento:
// cargan el snapshot de datos de cada cliente y delegan la derivación en el
// paquete de dominio homónimo.
package calendar

import (
	"context"
	"fmt"

	"github.com/firesafepro/extintores-api/internal/application/dto"
	"github.com/firesafepro/extintores-api/internal/domain"
	domaincal "github.com/firesafepro/extintores-api/internal/domain/calendar"
	"github.com/firesafepro/extintores-api/internal/domain/repository"
)

// CalendarUseCase deriva el feed de eventos de un cliente o de una empresa.
//
// La derivación en sí es pura (dominio); este caso de uso solo resuelve las
// consultas de datos y, para el rollup por empresa, paraleliza la carga de
// snapshots por cliente. El orden final no depende del orden de terminación
// de las goroutines: los resultados se recogen por índice y el sort del
// dominio es estable.
type CalendarUseCase struct {
	companyRepo  repository.CompanyRepository
	customerRepo repository.CustomerRepository
	scheduleRepo repository.ScheduleRepository
	extRepo      repository.ExtinguisherRepository
}

// NewCalendarUseCase construye el caso de uso.
func NewCalendarUseCase(
	companyRepo repository.CompanyRepository,
	customerRepo repository.CustomerRepository,
	scheduleRepo repository.ScheduleRepository,
	extRepo repository.ExtinguisherRepository,
) *CalendarUseCase {
	return &CalendarUseCase{
		companyRepo:  companyRepo,
		customerRepo: customerRepo,
		scheduleRepo: scheduleRepo,
		extRepo:      extRepo,
	}
}

// CustomerCalendar deriva los eventos de un cliente.
// Devuelve domain.ErrNotFound si el cliente no existe.
func (uc *CalendarUseCase) CustomerCalendar(ctx context.Context, customerID string) (*dto.CalendarResponse, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	snap, err := uc.loadSnapshot(customerID)
	if err != nil {
		return nil, err
	}
	snap.Customer = customer
	return toCalendarResponse(domaincal.CustomerEvents(snap)), nil
}

// CompanyCalendar deriva el feed combinado de todos los clientes de la empresa.
// La carga de snapshots se paraleliza por cliente; el resultado es determinista.
func (uc *CalendarUseCase) CompanyCalendar(ctx context.Context, companyID string) (*dto.CalendarResponse, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	customers, err := uc.customerRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}

	type result struct {
		idx  int
		snap domaincal.CustomerSnapshot
		err  error
	}
	snaps := make([]domaincal.CustomerSnapshot, len(customers))
	ch := make(chan result, len(customers))
	for i := range customers {
		go func(idx int) {
			snap, err := uc.loadSnapshot(customers[idx].ID)
			snap.Customer = customers[idx]
			ch <- result{idx: idx, snap: snap, err: err}
		}(i)
	}
	for range customers {
		r := <-ch
		if r.err != nil {
			return nil, fmt.Errorf("calendario empresa %s: %w", companyID, r.err)
		}
		snaps[r.idx] = r.snap
	}

	return toCalendarResponse(domaincal.CompanyEvents(snaps)), nil
}

// loadSnapshot trae las agendas y los extintores asociados al cliente.
func (uc *CalendarUseCase) loadSnapshot(customerID string) (domaincal.CustomerSnapshot, error) {
	var snap domaincal.CustomerSnapshot

	schedules, err := uc.scheduleRepo.ListByCustomer(customerID)
	if err != nil {
		return snap, fmt.Errorf("agendas del cliente %s: %w", customerID, err)
	}
	extinguishers, err := uc.extRepo.ListByCustomer(customerID)
	if err != nil {
		return snap, fmt.Errorf("extintores del cliente %s: %w", customerID, err)
	}
	snap.Schedules = schedules
	snap.Extinguishers = extinguishers
	return snap, nil
}

func toCalendarResponse(events []domaincal.Event) *dto.CalendarResponse {
	out := make([]dto.CalendarEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, dto.CalendarEventResponse{
			Type:         ev.Type,
			Date:         ev.Date,
			CustomerID:   ev.CustomerID,
			CustomerName: ev.CustomerName,
			Description:  ev.Description,
		})
	}
	return &dto.CalendarResponse{Events: out}
}
