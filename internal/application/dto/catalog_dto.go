package dto

// CreateReferenceRequest entrada para crear una categoría o unidad.
type CreateReferenceRequest struct {
	Name string `json:"name"`
}

// CreateLocationRequest entrada para crear una ubicación.
type CreateLocationRequest struct {
	Kind  string `json:"kind"` // aisle | shelf | section
	Value string `json:"value"`
}

// ReferenceResponse salida de una entrada de lista de referencia.
type ReferenceResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}
