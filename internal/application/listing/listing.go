// Package listing agrupa los helpers puros de búsqueda, orden y paginación que
// comparten todas las tablas de la API. Operan sobre slices ya cargados en
// memoria y nunca mutan la entrada.
package listing

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza un texto para búsqueda: minúsculas y sin diacríticos, de modo
// que "Sessão" y "sessao" coincidan.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// Matches informa si needle aparece dentro de haystack, ignorando mayúsculas y
// diacríticos. Needle vacío coincide con todo.
func Matches(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Fold(haystack), Fold(needle))
}

// Digits devuelve solo los dígitos de un texto. "(11) 98765-4321" → "11987654321".
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MatchesDigits compara únicamente los dígitos de ambos lados, para que una
// búsqueda con máscara ("987-654") encuentre teléfonos y documentos guardados
// solo con dígitos. Una búsqueda sin ningún dígito no coincide.
func MatchesDigits(haystack, needle string) bool {
	n := Digits(needle)
	if n == "" {
		return false
	}
	return strings.Contains(Digits(haystack), n)
}

// Filter devuelve un slice nuevo con los elementos cuyos campos de búsqueda
// contienen el término. No modifica la entrada.
func Filter[T any](items []T, search string, fields func(T) []string) []T {
	if search == "" {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if Matches(field, search) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// FilterFunc es como Filter pero con un predicado arbitrario por elemento, para
// listas que combinan la coincidencia plegada con la comparación por dígitos.
func FilterFunc[T any](items []T, search string, match func(item T, search string) bool) []T {
	if search == "" {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if match(item, search) {
			out = append(out, item)
		}
	}
	return out
}

// SortStable devuelve un slice nuevo ordenado de forma estable: elementos
// iguales según less conservan su orden relativo de llegada.
func SortStable[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Pagination metadatos de una página de resultados.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Paginate corta la página pedida y calcula los metadatos. Una página más allá
// del final devuelve un slice vacío con los metadatos correctos.
func Paginate[T any](items []T, page, perPage int) ([]T, Pagination) {
	if perPage <= 0 {
		perPage = 5
	}
	if page <= 0 {
		page = 1
	}
	total := len(items)
	// Siempre existe al menos una página, aunque la lista esté vacía.
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	out := make([]T, end-start)
	copy(out, items[start:end])
	return out, Pagination{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}
}
