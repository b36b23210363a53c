package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/firesafepro/extintores-api/internal/application/dto"
	appreport "github.com/firesafepro/extintores-api/internal/application/report"
	"github.com/firesafepro/extintores-api/internal/domain"
)

// ReportHandler expone los reportes agregados del catálogo.
type ReportHandler struct {
	uc *appreport.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *appreport.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ExtinguisherTotals GET /api/customers/:id/extinguisher-totals
//
// Conteo de unidades compradas por tipo de extintor sobre todo el historial
// de pedidos del cliente.
func (h *ReportHandler) ExtinguisherTotals(c *fiber.Ctx) error {
	totals, err := h.uc.ExtinguisherTotals(c.UserContext(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(totals)
}

// ProjectedSales GET /api/reports/projected-sales?year=YYYY
//
// Proyección de reposición: unidades vendidas de los productos cuyo
// vencimiento cae dentro del año consultado. Sin year se usa el año actual.
func (h *ReportHandler) ProjectedSales(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Query("year", strconv.Itoa(time.Now().Year())))
	if err != nil || year < 1970 || year > 9999 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "year debe ser un año válido"})
	}
	out, err := h.uc.ProjectedSales(c.UserContext(), year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
