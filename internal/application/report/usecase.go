// Package report contiene los casos de uso de reportes: conteo de extintores
// por tipo de un cliente y proyección de ventas de reposición por año.
package report

import (
	"context"
	"fmt"

	"github.com/firesafepro/extintores-api/internal/application/dto"
	"github.com/firesafepro/extintores-api/internal/domain"
	"github.com/firesafepro/extintores-api/internal/domain/entity"
	domainreport "github.com/firesafepro/extintores-api/internal/domain/report"
	"github.com/firesafepro/extintores-api/internal/domain/repository"
)

// ReportUseCase carga los datos y delega los cálculos en el dominio.
type ReportUseCase struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	reportRepo   repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	reportRepo repository.ReportRepository,
) *ReportUseCase {
	return &ReportUseCase{customerRepo: customerRepo, orderRepo: orderRepo, reportRepo: reportRepo}
}

// ExtinguisherTotals devuelve el conteo de extintores por tipo de un cliente,
// acumulado sobre todas las líneas de todos sus pedidos.
// Devuelve domain.ErrNotFound si el cliente no existe.
func (uc *ReportUseCase) ExtinguisherTotals(ctx context.Context, customerID string) (*dto.ExtinguisherTotalsResponse, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	orders, err := uc.orderRepo.ListByCustomer(customerID)
	if err != nil {
		return nil, fmt.Errorf("pedidos del cliente %s: %w", customerID, err)
	}
	return &dto.ExtinguisherTotalsResponse{
		CustomerID: customerID,
		Totals:     domainreport.TotalExtinguishersByType(orders),
	}, nil
}

// ProjectedSales calcula la proyección de ventas para un año: unidades vendidas
// de los extintores del catálogo que vencen dentro de ese año. Es un reporte
// global, no acotado a un cliente ni a una empresa.
//
// Las dos consultas (catálogo y ventas por producto) se lanzan en paralelo.
func (uc *ReportUseCase) ProjectedSales(ctx context.Context, year int) (*dto.ProjectedSalesResponse, error) {
	if year <= 0 {
		return nil, domain.ErrInvalidInput
	}

	type catalogResult struct {
		catalog []*entity.FireExtinguisher
		err     error
	}
	type soldResult struct {
		sold map[string]int
		err  error
	}

	catalogCh := make(chan catalogResult, 1)
	soldCh := make(chan soldResult, 1)

	go func() {
		catalog, err := uc.reportRepo.ListCatalog()
		catalogCh <- catalogResult{catalog: catalog, err: err}
	}()
	go func() {
		sold, err := uc.reportRepo.SumItemQuantitiesByExtinguisher()
		soldCh <- soldResult{sold: sold, err: err}
	}()

	cat := <-catalogCh
	sold := <-soldCh

	if cat.err != nil {
		return nil, fmt.Errorf("reporte: catálogo: %w", cat.err)
	}
	if sold.err != nil {
		return nil, fmt.Errorf("reporte: ventas por producto: %w", sold.err)
	}

	return &dto.ProjectedSalesResponse{
		Year:           year,
		ProjectedSales: domainreport.ProjectedSalesForYear(year, cat.catalog, sold.sold),
	}, nil
}
