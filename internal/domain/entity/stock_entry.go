package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry representa una entrada de mercadería (movimiento de stock positivo).
// Referencia al producto por Code, no por ID. OccurredAt se conserva al editar.
type StockEntry struct {
	ID          string
	UserID      string
	ProductCode string
	Quantity    decimal.Decimal // siempre > 0
	OccurredAt  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
