package ledger

import (
	"github.com/tu-usuario/pdv-estoque/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SaleTotal calcula el total de una venta (servicio de dominio, sin efectos):
//
//	Total = (Σ precio*cantidad de productos + Σ valor*cantidad de servicios) * (1 - descuento/100)
//
// Usa los precios congelados en las líneas, nunca el catálogo actual. El resultado
// se redondea a 2 decimales y se persiste tal cual al guardar la venta.
func SaleTotal(items []entity.SaleItem, services []entity.ServiceItem, discountPercent decimal.Decimal) decimal.Decimal {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.UnitPrice.Mul(it.Quantity))
	}
	for _, s := range services {
		subtotal = subtotal.Add(s.UnitValue.Mul(decimal.NewFromInt(s.Quantity)))
	}
	discount := subtotal.Mul(discountPercent.Div(hundred))
	return subtotal.Sub(discount).Round(2)
}
