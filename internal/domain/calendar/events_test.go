package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firesafepro/extintores-api/internal/domain/calendar"
	"github.com/firesafepro/extintores-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testCustomer(id, name string) *entity.Customer {
	return &entity.Customer{ID: id, Name: name, AccountStatus: entity.AccountActive}
}

func testSchedule(customerID, extName string, due time.Time) *entity.ServiceSchedule {
	return &entity.ServiceSchedule{
		CustomerID:       customerID,
		ExtinguisherName: extName,
		LastServiceDate:  due.AddDate(-1, 0, 0),
		NextServiceDue:   due,
	}
}

func testExtinguisher(name string, inspection, expiry time.Time) *entity.FireExtinguisher {
	return &entity.FireExtinguisher{
		Name:            name,
		Type:            entity.TypeCO2,
		InspectionDate:  inspection,
		ExpiryDate:      expiry,
		ManufactureDate: inspection.AddDate(-2, 0, 0),
	}
}

// assertSortedByDate verifica que cada par adyacente es no decreciente por fecha.
func assertSortedByDate(t *testing.T, events []calendar.Event) {
	t.Helper()
	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].Date.Before(events[i-1].Date),
			"evento %d (%s) no puede ser anterior al evento %d (%s)",
			i, events[i].Date, i-1, events[i-1].Date)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CustomerEvents
// ──────────────────────────────────────────────────────────────────────────────

// Un cliente sin agendas ni extintores no produce eventos.
func TestCustomerEvents_SinDatos(t *testing.T) {
	events := calendar.CustomerEvents(calendar.CustomerSnapshot{
		Customer: testCustomer("c1", "ACME"),
	})
	assert.Empty(t, events)
}

// La cantidad de eventos es siempre 2×|agendas| + 4×|extintores|:
// cada agenda aporta servicio + recordatorio, cada extintor aporta
// inspección, vencimiento y sus dos recordatorios.
func TestCustomerEvents_ConteoPorFuente(t *testing.T) {
	cases := []struct {
		name          string
		schedules     int
		extinguishers int
	}{
		{"solo agendas", 3, 0},
		{"solo extintores", 0, 2},
		{"mixto", 2, 5},
		{"uno y uno", 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := calendar.CustomerSnapshot{Customer: testCustomer("c1", "ACME")}
			for i := 0; i < tc.schedules; i++ {
				snap.Schedules = append(snap.Schedules,
					testSchedule("c1", "PQS 10lb", day(2025, time.June, 10+i)))
			}
			for i := 0; i < tc.extinguishers; i++ {
				snap.Extinguishers = append(snap.Extinguishers,
					testExtinguisher("CO2 5kg", day(2025, time.March, 1+i), day(2026, time.March, 1+i)))
			}

			events := calendar.CustomerEvents(snap)
			assert.Len(t, events, 2*tc.schedules+4*tc.extinguishers)
			assertSortedByDate(t, events)
		})
	}
}

// Cada recordatorio cae exactamente 30 días antes de su evento primario.
func TestCustomerEvents_RecordatorioTreintaDias(t *testing.T) {
	snap := calendar.CustomerSnapshot{
		Customer:  testCustomer("c1", "ACME"),
		Schedules: []*entity.ServiceSchedule{testSchedule("c1", "Foam 9L", day(2025, time.July, 20))},
		Extinguishers: []*entity.FireExtinguisher{
			testExtinguisher("Water Mist 6L", day(2025, time.April, 15), day(2027, time.January, 3)),
		},
	}

	events := calendar.CustomerEvents(snap)
	require.Len(t, events, 6)

	byType := make(map[string]time.Time, len(events))
	for _, ev := range events {
		byType[ev.Type] = ev.Date
	}
	pairs := map[string]string{
		calendar.EventServiceReminder:    calendar.EventService,
		calendar.EventInspectionReminder: calendar.EventInspection,
		calendar.EventExpiryReminder:     calendar.EventExpiry,
	}
	for reminder, primary := range pairs {
		assert.Equal(t, byType[primary].AddDate(0, 0, -30), byType[reminder],
			"%s debe caer 30 días antes de %s", reminder, primary)
	}
}

// Escenario de referencia: una agenda con servicio el 2025-06-15 y un extintor
// con inspección 2025-03-01 y vencimiento 2026-01-10. Se esperan exactamente
// 6 eventos en este orden de fechas.
func TestCustomerEvents_EscenarioCompleto(t *testing.T) {
	snap := calendar.CustomerSnapshot{
		Customer: testCustomer("c1", "ACME"),
		Schedules: []*entity.ServiceSchedule{
			testSchedule("c1", "PQS 20lb", day(2025, time.June, 15)),
		},
		Extinguishers: []*entity.FireExtinguisher{
			testExtinguisher("PQS 20lb", day(2025, time.March, 1), day(2026, time.January, 10)),
		},
	}

	events := calendar.CustomerEvents(snap)
	require.Len(t, events, 6)

	expected := []struct {
		evType string
		date   time.Time
	}{
		{calendar.EventInspectionReminder, day(2025, time.January, 30)},
		{calendar.EventInspection, day(2025, time.March, 1)},
		{calendar.EventServiceReminder, day(2025, time.May, 16)},
		{calendar.EventService, day(2025, time.June, 15)},
		{calendar.EventExpiryReminder, day(2025, time.December, 11)},
		{calendar.EventExpiry, day(2026, time.January, 10)},
	}
	for i, want := range expected {
		assert.Equal(t, want.evType, events[i].Type, "posición %d", i)
		assert.True(t, want.date.Equal(events[i].Date),
			"posición %d: se esperaba %s y llegó %s", i, want.date, events[i].Date)
		assert.Equal(t, "c1", events[i].CustomerID)
	}
}

// Los eventos con fecha pasada se conservan: la derivación no filtra por "hoy".
func TestCustomerEvents_NoFiltraPasado(t *testing.T) {
	past := day(2019, time.February, 1)
	snap := calendar.CustomerSnapshot{
		Customer:  testCustomer("c1", "ACME"),
		Schedules: []*entity.ServiceSchedule{testSchedule("c1", "CO2 5kg", past)},
	}

	events := calendar.CustomerEvents(snap)
	require.Len(t, events, 2)
	assert.True(t, events[1].Date.Equal(past))
	assert.True(t, events[0].Date.Equal(past.AddDate(0, 0, -30)))
}

// Empates de fecha: el desempate es el orden de generación
// (servicios → inspecciones → vencimientos), porque el sort es estable.
func TestCustomerEvents_EmpateDeFechas(t *testing.T) {
	same := day(2025, time.September, 1)
	snap := calendar.CustomerSnapshot{
		Customer:  testCustomer("c1", "ACME"),
		Schedules: []*entity.ServiceSchedule{testSchedule("c1", "Foam 9L", same)},
		Extinguishers: []*entity.FireExtinguisher{
			testExtinguisher("Foam 9L", same, same.AddDate(1, 0, 0)),
		},
	}

	events := calendar.CustomerEvents(snap)
	require.Len(t, events, 6)

	// Posiciones 2..3: Service e Inspection comparten fecha; Service se generó antes.
	assert.Equal(t, calendar.EventService, events[2].Type)
	assert.Equal(t, calendar.EventInspection, events[3].Type)
}

// Las descripciones nombran al extintor afectado.
func TestCustomerEvents_Descripciones(t *testing.T) {
	snap := calendar.CustomerSnapshot{
		Customer:  testCustomer("c1", "ACME"),
		Schedules: []*entity.ServiceSchedule{testSchedule("c1", "CO2 5kg", day(2025, time.May, 2))},
		Extinguishers: []*entity.FireExtinguisher{
			testExtinguisher("Water 9L", day(2025, time.June, 2), day(2026, time.June, 2)),
		},
	}

	events := calendar.CustomerEvents(snap)
	descriptions := make(map[string]string, len(events))
	for _, ev := range events {
		descriptions[ev.Type] = ev.Description
	}

	assert.Equal(t, "Service for CO2 5kg", descriptions[calendar.EventService])
	assert.Equal(t, "Upcoming service reminder for CO2 5kg", descriptions[calendar.EventServiceReminder])
	assert.Equal(t, "Inspection for Water 9L", descriptions[calendar.EventInspection])
	assert.Equal(t, "Upcoming inspection reminder for Water 9L", descriptions[calendar.EventInspectionReminder])
	assert.Equal(t, "Expiry for Water 9L", descriptions[calendar.EventExpiry])
	assert.Equal(t, "Upcoming expiry reminder for Water 9L", descriptions[calendar.EventExpiryReminder])
}

// ──────────────────────────────────────────────────────────────────────────────
// CompanyEvents (rollup)
// ──────────────────────────────────────────────────────────────────────────────

// El rollup concatena los eventos de todos los clientes: el largo es N+M,
// la lista queda ordenada y cada evento lleva el nombre de su cliente.
func TestCompanyEvents_Rollup(t *testing.T) {
	snapA := calendar.CustomerSnapshot{
		Customer: testCustomer("c1", "Hotel Andino"),
		Schedules: []*entity.ServiceSchedule{
			testSchedule("c1", "PQS 10lb", day(2025, time.April, 10)),
		},
	}
	snapB := calendar.CustomerSnapshot{
		Customer: testCustomer("c2", "Clínica Norte"),
		Extinguishers: []*entity.FireExtinguisher{
			testExtinguisher("CO2 5kg", day(2025, time.February, 5), day(2026, time.August, 20)),
		},
	}

	eventsA := calendar.CustomerEvents(snapA)
	eventsB := calendar.CustomerEvents(snapB)
	all := calendar.CompanyEvents([]calendar.CustomerSnapshot{snapA, snapB})

	require.Len(t, all, len(eventsA)+len(eventsB))
	assertSortedByDate(t, all)

	for _, ev := range all {
		switch ev.CustomerID {
		case "c1":
			assert.Equal(t, "Hotel Andino", ev.CustomerName)
		case "c2":
			assert.Equal(t, "Clínica Norte", ev.CustomerName)
		default:
			t.Fatalf("customer_id inesperado: %q", ev.CustomerID)
		}
	}
}

// Una empresa sin clientes produce un feed vacío.
func TestCompanyEvents_SinClientes(t *testing.T) {
	assert.Empty(t, calendar.CompanyEvents(nil))
}

// Si el origen trae filas duplicadas, el rollup las refleja tal cual:
// la deduplicación no es responsabilidad de la derivación.
func TestCompanyEvents_NoDeduplica(t *testing.T) {
	sched := testSchedule("c1", "PQS 10lb", day(2025, time.April, 10))
	snap := calendar.CustomerSnapshot{
		Customer:  testCustomer("c1", "ACME"),
		Schedules: []*entity.ServiceSchedule{sched, sched},
	}

	all := calendar.CompanyEvents([]calendar.CustomerSnapshot{snap})
	assert.Len(t, all, 4)
}
