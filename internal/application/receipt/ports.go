package receipt

import (
	"context"

	"github.com/tu-usuario/pdv-estoque/internal/domain/entity"
)

// SaleLineForPDF línea de producto enriquecida con la descripción del catálogo
// al momento de generar el recibo.
type SaleLineForPDF struct {
	entity.SaleItem
	Description string
}

// SalePDFGenerator genera el recibo gráfico de una venta.
type SalePDFGenerator interface {
	GenerateSalePDF(
		ctx context.Context,
		sale *entity.Sale,
		customer *entity.Customer, // nil = venta de mostrador
		lines []SaleLineForPDF,
	) ([]byte, error)
}
