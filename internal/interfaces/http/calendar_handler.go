package http

import (
	"github.com/gofiber/fiber/v2"

	appcalendar "github.com/firesafepro/extintores-api/internal/application/calendar"
	"github.com/firesafepro/extintores-api/internal/application/dto"
	"github.com/firesafepro/extintores-api/internal/domain"
)

// CalendarHandler expone los feeds de calendario de mantenimiento.
type CalendarHandler struct {
	uc *appcalendar.CalendarUseCase
}

// NewCalendarHandler construye el handler.
func NewCalendarHandler(uc *appcalendar.CalendarUseCase) *CalendarHandler {
	return &CalendarHandler{uc: uc}
}

// CustomerCalendar GET /api/customers/:id/calendar
//
// Devuelve el feed completo de eventos (servicios, inspecciones, vencimientos
// y sus recordatorios a 30 días) ordenado ascendente por fecha. No filtra
// eventos pasados.
func (h *CalendarHandler) CustomerCalendar(c *fiber.Ctx) error {
	feed, err := h.uc.CustomerCalendar(c.UserContext(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(feed)
}

// CompanyCalendar GET /api/companies/:id/calendar
//
// Consolida los calendarios de todos los clientes de la empresa; cada evento
// lleva customer_name para distinguir su origen.
func (h *CalendarHandler) CompanyCalendar(c *fiber.Ctx) error {
	feed, err := h.uc.CompanyCalendar(c.UserContext(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(feed)
}
