package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pdv-estoque/internal/domain"
	"github.com/tu-usuario/pdv-estoque/internal/domain/entity"
	"github.com/tu-usuario/pdv-estoque/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// NormalizeQuantity — convención de cantidades fraccionadas
//
// Las cantidades fraccionadas se expresan como "unidades enteras más un resto
// en décimos" con tope en .9: 1.0–1.9, 2.0–2.9, etc. Nunca 3.97.
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeQuantity_EnteroTrunca(t *testing.T) {
	q, err := ledger.NormalizeQuantity(decimal.NewFromFloat(3.7), false)
	require.NoError(t, err)
	assert.True(t, q.Equal(decimal.NewFromInt(3)), "no fraccionado debe truncar al entero, obtuvo %s", q)
}

func TestNormalizeQuantity_EnteroMinimoUno(t *testing.T) {
	_, err := ledger.NormalizeQuantity(decimal.NewFromFloat(0.4), false)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = ledger.NormalizeQuantity(decimal.Zero, false)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestNormalizeQuantity_FraccionadoTopeDecimos(t *testing.T) {
	// 3.97 → 3.9: el resto decimal nunca supera .9
	q, err := ledger.NormalizeQuantity(decimal.NewFromFloat(3.97), true)
	require.NoError(t, err)
	assert.True(t, q.Equal(decimal.NewFromFloat(3.9)), "3.97 debe normalizar a 3.9, obtuvo %s", q)
}

func TestNormalizeQuantity_FraccionadoUnDecimal(t *testing.T) {
	q, err := ledger.NormalizeQuantity(decimal.NewFromFloat(2.34), true)
	require.NoError(t, err)
	assert.True(t, q.Equal(decimal.NewFromFloat(2.3)), "2.34 debe redondear a 2.3, obtuvo %s", q)
}

func TestNormalizeQuantity_FraccionadoExactoSeConserva(t *testing.T) {
	q, err := ledger.NormalizeQuantity(decimal.NewFromFloat(1.5), true)
	require.NoError(t, err)
	assert.True(t, q.Equal(decimal.NewFromFloat(1.5)))
}

func TestNormalizeQuantity_FraccionadoMinimo(t *testing.T) {
	_, err := ledger.NormalizeQuantity(decimal.NewFromFloat(0.04), true)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// SaleTotal — (productos + servicios) * (1 - descuento/100)
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleTotal_VectorConDescuento(t *testing.T) {
	// [{precio:100, cant:2}] + [{valor:50, cant:1}] con 10% ⇒ (200+50)*0.9 = 225.00
	items := []entity.SaleItem{
		{ProductCode: "P-001", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(100)},
	}
	services := []entity.ServiceItem{
		{Description: "Mano de obra", UnitValue: decimal.NewFromInt(50), Quantity: 1},
	}

	total := ledger.SaleTotal(items, services, decimal.NewFromInt(10))
	assert.True(t, total.Equal(decimal.NewFromInt(225)), "total esperado 225.00, obtuvo %s", total)
}

func TestSaleTotal_SinDescuento(t *testing.T) {
	items := []entity.SaleItem{
		{ProductCode: "P-001", Quantity: decimal.NewFromFloat(1.5), UnitPrice: decimal.NewFromInt(10)},
	}
	total := ledger.SaleTotal(items, nil, decimal.Zero)
	assert.True(t, total.Equal(decimal.NewFromInt(15)))
}

func TestSaleTotal_SoloServicios(t *testing.T) {
	services := []entity.ServiceItem{
		{Description: "Instalación", UnitValue: decimal.NewFromFloat(80.5), Quantity: 2},
	}
	total := ledger.SaleTotal(nil, services, decimal.Zero)
	assert.True(t, total.Equal(decimal.NewFromInt(161)))
}

func TestSaleTotal_Determinista(t *testing.T) {
	items := []entity.SaleItem{
		{ProductCode: "A", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromFloat(19.99)},
	}
	t1 := ledger.SaleTotal(items, nil, decimal.NewFromInt(5))
	t2 := ledger.SaleTotal(items, nil, decimal.NewFromInt(5))
	assert.True(t, t1.Equal(t2), "el mismo input siempre produce el mismo total")
}

func TestSaleTotal_DescuentoTotal(t *testing.T) {
	items := []entity.SaleItem{
		{ProductCode: "A", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(99)},
	}
	total := ledger.SaleTotal(items, nil, decimal.NewFromInt(100))
	assert.True(t, total.IsZero(), "100%% de descuento deja el total en cero")
}

// ──────────────────────────────────────────────────────────────────────────────
// GroupQuantitiesByCode — demanda acumulada por producto dentro de una venta
// ──────────────────────────────────────────────────────────────────────────────

func TestGroupQuantitiesByCode_AcumulaPorCodigo(t *testing.T) {
	lines := []ledger.Line{
		{ProductCode: "P-001", Quantity: decimal.NewFromInt(2)},
		{ProductCode: "P-002", Quantity: decimal.NewFromInt(1)},
		{ProductCode: "P-001", Quantity: decimal.NewFromInt(3)},
	}
	grouped := ledger.GroupQuantitiesByCode(lines)

	require.Len(t, grouped, 2)
	assert.True(t, grouped["P-001"].Equal(decimal.NewFromInt(5)))
	assert.True(t, grouped["P-002"].Equal(decimal.NewFromInt(1)))
}
