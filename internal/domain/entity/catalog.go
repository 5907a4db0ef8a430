package entity

import "time"

// Tipos de ubicación física dentro del local.
const (
	LocationKindAisle   = "aisle"   // corredor
	LocationKindShelf   = "shelf"   // estante
	LocationKindSection = "section" // sección
)

// Category es una entrada de la lista de referencia de categorías. Los productos
// copian el nombre como texto libre: borrar una categoría no los afecta.
type Category struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
}

// Unit es una entrada de la lista de referencia de unidades de medida.
type Unit struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
}

// StockLocation es una entrada de ubicación (corredor, estante o sección).
type StockLocation struct {
	ID        string
	UserID    string
	Kind      string // aisle | shelf | section
	Value     string
	CreatedAt time.Time
}
