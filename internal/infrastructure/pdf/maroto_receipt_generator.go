// Package pdf implementa la generación del recibo de venta con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Recibo de venta  │  N° + Fecha + Estado            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + documento + teléfono (o mostrador)       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA PRODUCTOS: Cant | Descripción | P.Unit | Subtotal    │
//	│  TABLA SERVICIOS: Cant | Descripción | Valor  | Subtotal    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / TOTAL                      │
//	│  OBSERVACIONES                                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appreceipt "github.com/tu-usuario/pdv-estoque/internal/application/receipt"
	"github.com/tu-usuario/pdv-estoque/internal/domain/entity"
	domledger "github.com/tu-usuario/pdv-estoque/internal/domain/ledger"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 15, Green: 95, Blue: 70}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var statusLabels = map[string]string{
	entity.SaleStatusPaid:  "Pago",
	entity.SaleStatusOpen:  "Em Aberto",
	entity.SaleStatusQuote: "Orçamento",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa receipt.SalePDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateSalePDF genera el recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateSalePDF(
	_ context.Context,
	sale *entity.Sale,
	customer *entity.Customer,
	lines []appreceipt.SaleLineForPDF,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de venta", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(sale, customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(lines) > 0 {
		m.AddRows(tableHeaderRow("Productos", "Precio Unit."))
		for _, r := range productRows(lines) {
			m.AddRows(r)
		}
	}
	if len(sale.Services) > 0 {
		m.AddRows(tableHeaderRow("Servicios", "Valor Unit."))
		for _, r := range serviceRows(sale.Services) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(sale))

	if sale.Notes != "" {
		m.AddRows(notesRow(sale.Notes))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y número + fecha + estado (der).
func headerRow(sale *entity.Sale) core.Row {
	status := statusLabels[sale.Status]
	if status == "" {
		status = sale.Status
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New("RECIBO DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+sale.ID[:8], props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+sale.OccurredAt.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Estado: "+status, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 9, Color: colorPrimary,
			}),
		),
	)
}

// customerRow: datos del cliente, o la leyenda de mostrador.
func customerRow(sale *entity.Sale, customer *entity.Customer) core.Row {
	if customer == nil {
		return row.New(10).Add(col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("Venta de mostrador", props.Text{Size: 9, Top: 6, Color: colorGray}),
		))
	}
	contact := fmt.Sprintf("%s: %s   |   Tel: %s",
		nonEmpty(customer.TaxIDKind, "Doc"),
		nonEmpty(customer.TaxID, "—"),
		nonEmpty(customer.Phone, "—"),
	)
	detail := contact
	if sale.Vehicle != "" {
		detail += "   |   Vehículo: " + sale.Vehicle
	}
	return row.New(14).Add(col.New(12).Add(
		text.New("CLIENTE", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
		text.New(customer.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		text.New(detail, props.Text{Size: 8, Top: 12, Color: colorGray}),
	))
}

// tableHeaderRow: cabecera de una tabla de líneas.
func tableHeaderRow(section, priceLabel string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h(section, 5, align.Left),
		h(priceLabel, 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// productRows: una fila por línea de producto, con cantidad fraccionada si aplica.
func productRows(lines []appreceipt.SaleLineForPDF) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		subtotal := l.Quantity.Mul(l.UnitPrice)
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				formatQuantity(l.Quantity, l.Fractional),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+l.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"R$ "+subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// serviceRows: una fila por servicio.
func serviceRows(services []entity.ServiceItem) []core.Row {
	result := make([]core.Row, 0, len(services))
	for _, s := range services {
		subtotal := s.UnitValue.Mul(decimal.NewFromInt(s.Quantity))
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", s.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				s.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+s.UnitValue.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"R$ "+subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: subtotal, descuento y total a pagar.
func totalsRow(sale *entity.Sale) core.Row {
	subtotal := domledger.SaleTotal(sale.Items, sale.Services, decimal.Zero)
	discount := subtotal.Sub(sale.Total)

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(24).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:"),
			label(fmt.Sprintf("Descuento (%s%%):", sale.DiscountPercent.StringFixed(0))),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2,
			}),
		),
		col.New(4).Add(
			value("R$ "+subtotal.StringFixed(2)),
			value("R$ "+discount.StringFixed(2)),
			text.New("R$ "+sale.Total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1,
			}),
		),
	)
}

// notesRow: observaciones al pie.
func notesRow(notes string) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("OBSERVACIONES", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
		text.New(notes, props.Text{Size: 8, Top: 8, Color: colorGray}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatQuantity muestra cantidades fraccionadas con un decimal y enteras sin.
// Ej: 3.9 fraccionada → "3.9", 4 entera → "4".
func formatQuantity(q decimal.Decimal, fractional bool) string {
	if fractional {
		return q.StringFixed(1)
	}
	return q.StringFixed(0)
}
