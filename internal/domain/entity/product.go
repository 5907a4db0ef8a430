package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario con su ubicación física en el local.
// Stock solo lo modifica el motor de stock (entradas y ventas); el resto de campos
// se editan desde el catálogo. Category, Unit y las tres partes de la ubicación son
// texto libre copiado de las listas de referencia, no claves foráneas.
type Product struct {
	ID          string
	UserID      string
	Code        string // código único por usuario, clave visible usada por los movimientos
	Description string
	Category    string
	Unit        string
	Aisle       string // corredor
	Shelf       string // prateleira
	Section     string // sessão
	Stock       decimal.Decimal // cantidad en mano
	Price       decimal.Decimal // precio de venta vigente
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
