package ledger

import (
	"context"

	"github.com/tu-usuario/pdv-estoque/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Cada operación del motor de stock (crear,
// editar o borrar una entrada o una venta) corre completa dentro de una
// transacción: la reversión y la reaplicación de un edit comitean o se
// revierten juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		entryRepo repository.StockEntryRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
