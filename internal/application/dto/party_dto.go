package dto

import "time"

// PartyRequest entrada para crear o actualizar un cliente o proveedor.
// Phone acepta máscara; se guarda solo con dígitos.
type PartyRequest struct {
	Name      string `json:"name"`
	TaxID     string `json:"tax_id"`
	TaxIDKind string `json:"tax_id_kind"` // CPF | CNPJ
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// PartyResponse salida de un cliente o proveedor.
type PartyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	TaxIDKind string    `json:"tax_id_kind"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PartyListResponse lista paginada de clientes o proveedores.
type PartyListResponse struct {
	Items []PartyResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
