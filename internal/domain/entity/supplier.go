package entity

import "time"

// Supplier representa un proveedor. Misma forma que Customer; sin acoplamiento
// con movimientos de stock.
type Supplier struct {
	ID        string
	UserID    string
	Name      string
	TaxID     string
	TaxIDKind string // CPF | CNPJ
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
