package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	SaleStatusPaid  = "PAID"
	SaleStatusOpen  = "OPEN"
	SaleStatusQuote = "QUOTE"
)

// SaleItem es una línea de producto dentro de una venta. UnitPrice es el precio
// del producto congelado al momento de guardar la venta: cambios posteriores del
// catálogo nunca lo alteran. Fractional indica que la cantidad usa el esquema
// "unidades enteras + décimos" (1.0–1.9, 2.0–2.9, ...).
type SaleItem struct {
	ProductCode string          `json:"product_code"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Fractional  bool            `json:"fractional"`
}

// ServiceItem es un ítem facturable que no afecta stock (mano de obra, etc.).
type ServiceItem struct {
	Description string          `json:"description"`
	UnitValue   decimal.Decimal `json:"unit_value"`
	Quantity    int64           `json:"quantity"`
}

// Sale representa una salida de mercadería (venta). CustomerID vacío significa
// venta de mostrador, sin cliente asociado. Total se calcula al guardar y se
// persiste tal cual; nunca se recalcula en lecturas.
type Sale struct {
	ID              string
	UserID          string
	CustomerID      string // vacío = venta de mostrador
	Items           []SaleItem
	Services        []ServiceItem
	Vehicle         string
	Notes           string
	Status          string // PAID | OPEN | QUOTE
	DiscountPercent decimal.Decimal // 0–100
	Total           decimal.Decimal // foto al momento de guardar
	OccurredAt      time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
