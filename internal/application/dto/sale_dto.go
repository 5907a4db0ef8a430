package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de producto de una venta. El precio unitario NO viene del
// cliente: se congela desde el catálogo al guardar.
type SaleItemRequest struct {
	ProductCode string          `json:"product_code"`
	Quantity    decimal.Decimal `json:"quantity"`
	Fractional  bool            `json:"fractional"`
}

// ServiceItemRequest ítem de servicio (no afecta stock).
type ServiceItemRequest struct {
	Description string          `json:"description"`
	UnitValue   decimal.Decimal `json:"unit_value"`
	Quantity    int64           `json:"quantity"`
}

// SaleRequest entrada para crear o editar una venta.
type SaleRequest struct {
	CustomerID      string               `json:"customer_id"` // vacío = venta de mostrador
	Items           []SaleItemRequest    `json:"items"`
	Services        []ServiceItemRequest `json:"services"`
	Vehicle         string               `json:"vehicle"`
	Notes           string               `json:"notes"`
	Status          string               `json:"status"` // PAID | OPEN | QUOTE
	DiscountPercent decimal.Decimal      `json:"discount_percent"`
}

// SaleItemResponse línea de producto con el precio congelado.
type SaleItemResponse struct {
	ProductCode string          `json:"product_code"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Fractional  bool            `json:"fractional"`
}

// ServiceItemResponse ítem de servicio.
type ServiceItemResponse struct {
	Description string          `json:"description"`
	UnitValue   decimal.Decimal `json:"unit_value"`
	Quantity    int64           `json:"quantity"`
}

// SaleResponse salida de una venta con su total persistido.
type SaleResponse struct {
	ID              string                `json:"id"`
	CustomerID      string                `json:"customer_id,omitempty"`
	Items           []SaleItemResponse    `json:"items"`
	Services        []ServiceItemResponse `json:"services"`
	Vehicle         string                `json:"vehicle,omitempty"`
	Notes           string                `json:"notes,omitempty"`
	Status          string                `json:"status"`
	DiscountPercent decimal.Decimal       `json:"discount_percent"`
	Total           decimal.Decimal       `json:"total"`
	OccurredAt      time.Time             `json:"occurred_at"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
