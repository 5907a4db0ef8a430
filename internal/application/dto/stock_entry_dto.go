package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntryRequest entrada para crear o editar una entrada de stock.
type StockEntryRequest struct {
	ProductCode string          `json:"product_code"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// StockEntryResponse salida de una entrada de stock, enriquecida con los datos
// del producto que usan las tablas (descripción y unidad al momento de listar).
type StockEntryResponse struct {
	ID                 string          `json:"id"`
	ProductCode        string          `json:"product_code"`
	ProductDescription string          `json:"product_description,omitempty"`
	ProductUnit        string          `json:"product_unit,omitempty"`
	Quantity           decimal.Decimal `json:"quantity"`
	OccurredAt         time.Time       `json:"occurred_at"`
}

// StockEntryListResponse lista paginada de entradas.
type StockEntryListResponse struct {
	Items []StockEntryResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
