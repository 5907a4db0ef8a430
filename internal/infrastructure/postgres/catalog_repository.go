package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/pdv-estoque/internal/domain"
	"github.com/tu-usuario/pdv-estoque/internal/domain/entity"
	"github.com/tu-usuario/pdv-estoque/internal/domain/repository"
)

var (
	_ repository.CategoryRepository      = (*CategoryRepo)(nil)
	_ repository.UnitRepository          = (*UnitRepo)(nil)
	_ repository.StockLocationRepository = (*StockLocationRepo)(nil)
)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría.
func (r *CategoryRepo) Create(category *entity.Category) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO categories (id, user_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		category.ID, category.UserID, category.Name, category.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// ListByUser lista las categorías del usuario.
func (r *CategoryRepo) ListByUser(userID string) ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, user_id, name, created_at FROM categories WHERE user_id = $1 ORDER BY name`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

// Delete elimina una categoría. Los productos que copiaron el nombre no se tocan.
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// UnitRepo implementación del puerto UnitRepository sobre PostgreSQL.
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

// Create persiste una unidad de medida.
func (r *UnitRepo) Create(unit *entity.Unit) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO units (id, user_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		unit.ID, unit.UserID, unit.Name, unit.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// ListByUser lista las unidades del usuario.
func (r *UnitRepo) ListByUser(userID string) ([]*entity.Unit, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, user_id, name, created_at FROM units WHERE user_id = $1 ORDER BY name`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var units []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.UserID, &u.Name, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		units = append(units, &u)
	}
	return units, rows.Err()
}

// Delete elimina una unidad.
func (r *UnitRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM units WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete unit: %w", err)
	}
	return nil
}

// StockLocationRepo implementación del puerto StockLocationRepository sobre PostgreSQL.
type StockLocationRepo struct {
	q Querier
}

// NewStockLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLocationRepository(q Querier) *StockLocationRepo {
	return &StockLocationRepo{q: q}
}

// Create persiste una ubicación.
func (r *StockLocationRepo) Create(location *entity.StockLocation) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO stock_locations (id, user_id, kind, value, created_at) VALUES ($1, $2, $3, $4, $5)`,
		location.ID, location.UserID, location.Kind, location.Value, location.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock location: %w", err)
	}
	return nil
}

// ListByUser lista las ubicaciones del usuario.
func (r *StockLocationRepo) ListByUser(userID string) ([]*entity.StockLocation, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, user_id, kind, value, created_at FROM stock_locations WHERE user_id = $1 ORDER BY kind, value`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list stock locations: %w", err)
	}
	defer rows.Close()

	var locations []*entity.StockLocation
	for rows.Next() {
		var l entity.StockLocation
		if err := rows.Scan(&l.ID, &l.UserID, &l.Kind, &l.Value, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock location: %w", err)
		}
		locations = append(locations, &l)
	}
	return locations, rows.Err()
}

// Delete elimina una ubicación.
func (r *StockLocationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock location: %w", err)
	}
	return nil
}
