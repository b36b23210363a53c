// Package calendar deriva los eventos de mantenimiento de un cliente o de una
// empresa completa: servicios programados, inspecciones y vencimientos, cada uno
// con su recordatorio 30 días antes.
//
// Todas las funciones son proyecciones puras sobre datos ya cargados: no tocan
// la base de datos, no filtran por "hoy" (los eventos pasados se conservan) y no
// deduplican filas repetidas del origen. Quien consume la lista decide qué
// ventana mostrar.
package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/firesafepro/extintores-api/internal/domain/entity"
)

// Tipos de evento del calendario.
const (
	EventService            = "Service"
	EventServiceReminder    = "Service Reminder"
	EventInspection         = "Inspection"
	EventInspectionReminder = "Inspection Reminder"
	EventExpiry             = "Expiry"
	EventExpiryReminder     = "Expiry Reminder"
)

// reminderLeadDays días de anticipación de cada recordatorio respecto a su evento primario.
const reminderLeadDays = 30

// Event es un registro transitorio del calendario; nunca se persiste.
// CustomerName solo se rellena en el rollup por empresa.
type Event struct {
	Type         string
	Date         time.Time
	CustomerID   string
	CustomerName string
	Description  string
}

// CustomerSnapshot agrupa los datos ya cargados de un cliente que necesita la
// derivación: sus agendas de servicio y los extintores asociados. La asociación
// cliente→extintor es la de sus líneas de pedido, sin repetidos por producto
// (misma fuente que el conteo por tipo).
type CustomerSnapshot struct {
	Customer      *entity.Customer
	Schedules     []*entity.ServiceSchedule
	Extinguishers []*entity.FireExtinguisher
}

// CustomerEvents deriva la lista de eventos de un cliente, ordenada ascendente
// por fecha. El orden de generación (servicios, inspecciones, vencimientos) es
// el desempate entre eventos con la misma fecha: el sort es estable.
//
// Por cada agenda de servicio se emiten dos eventos (Service y su recordatorio);
// por cada extinguisher, cuatro (Inspection, Expiry y sus recordatorios). Total:
// 2×|agendas| + 4×|extintores|.
func CustomerEvents(snap CustomerSnapshot) []Event {
	customerID := ""
	if snap.Customer != nil {
		customerID = snap.Customer.ID
	}
	events := make([]Event, 0, 2*len(snap.Schedules)+4*len(snap.Extinguishers))

	// 1. Servicios programados
	for _, s := range snap.Schedules {
		events = append(events,
			Event{
				Type:        EventService,
				Date:        s.NextServiceDue,
				CustomerID:  customerID,
				Description: fmt.Sprintf("Service for %s", s.ExtinguisherName),
			},
			Event{
				Type:        EventServiceReminder,
				Date:        reminderDate(s.NextServiceDue),
				CustomerID:  customerID,
				Description: fmt.Sprintf("Upcoming service reminder for %s", s.ExtinguisherName),
			},
		)
	}

	// 2. Inspecciones
	for _, e := range snap.Extinguishers {
		events = append(events,
			Event{
				Type:        EventInspection,
				Date:        e.InspectionDate,
				CustomerID:  customerID,
				Description: fmt.Sprintf("Inspection for %s", e.Name),
			},
			Event{
				Type:        EventInspectionReminder,
				Date:        reminderDate(e.InspectionDate),
				CustomerID:  customerID,
				Description: fmt.Sprintf("Upcoming inspection reminder for %s", e.Name),
			},
		)
	}

	// 3. Vencimientos
	for _, e := range snap.Extinguishers {
		events = append(events,
			Event{
				Type:        EventExpiry,
				Date:        e.ExpiryDate,
				CustomerID:  customerID,
				Description: fmt.Sprintf("Expiry for %s", e.Name),
			},
			Event{
				Type:        EventExpiryReminder,
				Date:        reminderDate(e.ExpiryDate),
				CustomerID:  customerID,
				Description: fmt.Sprintf("Upcoming expiry reminder for %s", e.Name),
			},
		)
	}

	sortByDate(events)
	return events
}

// CompanyEvents concatena los eventos de todos los clientes de una empresa en
// un único feed ordenado por fecha. Cada evento queda etiquetado con el nombre
// del cliente. La concatenación respeta el orden de entrada de los snapshots,
// que junto con el sort estable hace el resultado determinista aunque la
// derivación por cliente se haya paralelizado aguas arriba.
func CompanyEvents(snaps []CustomerSnapshot) []Event {
	var all []Event
	for _, snap := range snaps {
		name := ""
		if snap.Customer != nil {
			name = snap.Customer.Name
		}
		for _, ev := range CustomerEvents(snap) {
			ev.CustomerName = name
			all = append(all, ev)
		}
	}
	sortByDate(all)
	return all
}

// reminderDate devuelve la fecha del recordatorio: exactamente 30 días antes.
func reminderDate(d time.Time) time.Time {
	return d.AddDate(0, 0, -reminderLeadDays)
}

func sortByDate(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
}
