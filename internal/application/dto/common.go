package dto

// ListQuery parámetros comunes de los listados: búsqueda, orden y paginación.
// El filtrado y orden ocurren en memoria sobre la lista completa del usuario,
// igual que en las tablas del dashboard.
type ListQuery struct {
	Search  string `query:"search"`
	SortBy  string `query:"sort_by"`
	SortDir string `query:"sort_dir"` // asc | desc
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
}

// Defaults aplica valores por defecto a página y tamaño.
func (q *ListQuery) Defaults() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PerPage <= 0 {
		q.PerPage = 5
	}
	if q.PerPage > 100 {
		q.PerPage = 100
	}
}

// Desc devuelve true si el orden pedido es descendente.
func (q ListQuery) Desc() bool { return q.SortDir == "desc" }

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
