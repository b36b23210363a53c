package usecase

import (
	"context"
	"fmt"

	"github.com/firesafepro/extintores-api/internal/domain"
	"github.com/firesafepro/extintores-api/internal/domain/entity"
	"github.com/firesafepro/extintores-api/internal/domain/repository"
)

// OrderPDFGenerator es el puerto de generación del resumen PDF de un pedido.
// La implementación vive en infrastructure/pdf.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.Order, customer *entity.Customer) ([]byte, error)
}

// OrderPDFUseCase genera el resumen imprimible (PDF) de un pedido.
type OrderPDFUseCase struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	generator    OrderPDFGenerator
}

// NewOrderPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewOrderPDFUseCase(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	generator OrderPDFGenerator,
) *OrderPDFUseCase {
	return &OrderPDFUseCase{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		generator:    generator,
	}
}

// DownloadOrderPDF recupera el pedido con sus líneas y su cliente, y genera el
// resumen en PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si el pedido no existe.
func (uc *OrderPDFUseCase) DownloadOrderPDF(ctx context.Context, orderID string) (pdfBytes []byte, filename string, err error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener pedido: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}

	customer, err := uc.customerRepo.GetByID(order.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err = uc.generator.GenerateOrderPDF(ctx, order, customer)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("pedido_%s.pdf", order.ID)
	return pdfBytes, filename, nil
}
