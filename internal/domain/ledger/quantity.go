package ledger

import (
	"github.com/tu-usuario/pdv-estoque/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	minWhole      = decimal.NewFromInt(1)
	minFractional = decimal.NewFromFloat(0.1)
	maxTenths     = decimal.NewFromFloat(0.9)
)

// NormalizeQuantity aplica la convención de cantidades de las líneas de venta.
// No fraccionado: se trunca al entero, mínimo 1.
// Fraccionado: una sola cifra decimal con el décimo tope en .9
// (1.0–1.9, 2.0–2.9, ...), mínimo 0.1. 3.97 se normaliza a 3.9.
// Devuelve ErrInvalidQuantity si la cantidad queda por debajo del mínimo.
func NormalizeQuantity(q decimal.Decimal, fractional bool) (decimal.Decimal, error) {
	if !fractional {
		q = q.Floor()
		if q.LessThan(minWhole) {
			return decimal.Zero, domain.ErrInvalidQuantity
		}
		return q, nil
	}
	whole := q.Floor()
	frac := q.Sub(whole).Round(1)
	if frac.GreaterThan(maxTenths) {
		frac = maxTenths
	}
	q = whole.Add(frac).Round(1)
	if q.LessThan(minFractional) {
		return decimal.Zero, domain.ErrInvalidQuantity
	}
	return q, nil
}

// GroupQuantitiesByCode acumula la demanda por código de producto dentro de una
// misma venta, para validar stock contra el total pedido y no línea por línea.
func GroupQuantitiesByCode(items []Line) map[string]decimal.Decimal {
	grouped := make(map[string]decimal.Decimal, len(items))
	for _, it := range items {
		grouped[it.ProductCode] = grouped[it.ProductCode].Add(it.Quantity)
	}
	return grouped
}

// Line es la vista mínima de una línea de venta que necesita el motor. El flag
// Fractional viene de la entrada y se conserva tal cual: una línea fraccionada
// con cantidad entera (2.0) sigue siendo fraccionada para el recibo.
type Line struct {
	ProductCode string
	Quantity    decimal.Decimal
	Fractional  bool
}
