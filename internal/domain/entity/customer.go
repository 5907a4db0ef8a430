package entity

import "time"

// Tipos de documento fiscal.
const (
	TaxIDKindIndividual   = "CPF"  // persona natural
	TaxIDKindOrganization = "CNPJ" // persona jurídica
)

// Customer representa un cliente. Phone se guarda solo con dígitos.
type Customer struct {
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
