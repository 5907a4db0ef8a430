package receipt

import (
	"context"
	"fmt"

	"github.com/tu-usuario/pdv-estoque/internal/domain"
	"github.com/tu-usuario/pdv-estoque/internal/domain/entity"
	"github.com/tu-usuario/pdv-estoque/internal/domain/repository"
)

// ReceiptUseCase genera el recibo PDF de una venta.
type ReceiptUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	generator    SalePDFGenerator
}

// NewReceiptUseCase construye el caso de uso inyectando sus dependencias.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	generator SalePDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		generator:    generator,
	}
}

// DownloadSalePDF recupera la venta con su cliente y las descripciones vigentes
// del catálogo, y genera el recibo.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la venta no existe o es de otro usuario.
func (uc *ReceiptUseCase) DownloadSalePDF(
	ctx context.Context,
	userID, saleID string,
) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener venta: %w", err)
	}
	if sale == nil || sale.UserID != userID {
		return nil, "", domain.ErrNotFound
	}

	// Cliente opcional: sin cliente es venta de mostrador
	var customer *entity.Customer
	if sale.CustomerID != "" {
		customer, err = uc.customerRepo.GetByID(sale.CustomerID)
		if err != nil {
			return nil, "", fmt.Errorf("recibo: obtener cliente: %w", err)
		}
	}

	// Descripción vigente del catálogo; un producto ya eliminado sale con su código
	lines := make([]SaleLineForPDF, 0, len(sale.Items))
	for _, it := range sale.Items {
		description := it.ProductCode
		if product, pErr := uc.productRepo.GetByUserAndCode(userID, it.ProductCode); pErr == nil && product != nil {
			description = product.Description
		}
		lines = append(lines, SaleLineForPDF{SaleItem: it, Description: description})
	}

	pdfBytes, err = uc.generator.GenerateSalePDF(ctx, sale, customer, lines)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("venta_%s_%s.pdf", sale.OccurredAt.Format("20060102"), sale.ID[:8])
	return pdfBytes, filename, nil
}
