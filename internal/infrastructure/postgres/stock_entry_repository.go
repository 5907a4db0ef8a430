package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pdv-estoque/internal/domain/entity"
	"github.com/tu-usuario/pdv-estoque/internal/domain/repository"
)

var _ repository.StockEntryRepository = (*StockEntryRepo)(nil)

const stockEntryColumns = `id, user_id, product_code, quantity, occurred_at, created_at, updated_at`

// StockEntryRepo implementación del puerto StockEntryRepository sobre PostgreSQL.
// Las entradas referencian al producto por código, sin FK: un producto eliminado
// deja el movimiento huérfano en vez de arrastrarlo.
type StockEntryRepo struct {
	q Querier
}

// NewStockEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockEntryRepository(q Querier) *StockEntryRepo {
	return &StockEntryRepo{q: q}
}

// Create persiste una nueva entrada de stock.
func (r *StockEntryRepo) Create(entry *entity.StockEntry) error {
	query := `
		INSERT INTO stock_entries (` + stockEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.UserID, entry.ProductCode, entry.Quantity,
		entry.OccurredAt, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock entry: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID.
func (r *StockEntryRepo) GetByID(id string) (*entity.StockEntry, error) {
	query := `SELECT ` + stockEntryColumns + ` FROM stock_entries WHERE id = $1`
	var e entity.StockEntry
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.UserID, &e.ProductCode, &e.Quantity,
		&e.OccurredAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock entry: %w", err)
	}
	return &e, nil
}

// ListByUser lista las entradas del usuario, de la más reciente a la más vieja.
func (r *StockEntryRepo) ListByUser(userID string) ([]*entity.StockEntry, error) {
	query := `SELECT ` + stockEntryColumns + ` FROM stock_entries WHERE user_id = $1 ORDER BY occurred_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list stock entries: %w", err)
	}
	defer rows.Close()

	var entries []*entity.StockEntry
	for rows.Next() {
		var e entity.StockEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.ProductCode, &e.Quantity,
			&e.OccurredAt, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// Update actualiza una entrada. OccurredAt no se toca.
func (r *StockEntryRepo) Update(entry *entity.StockEntry) error {
	query := `
		UPDATE stock_entries
		SET product_code = $2, quantity = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductCode, entry.Quantity, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock entry: %w", err)
	}
	return nil
}

// Delete elimina una entrada.
func (r *StockEntryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock entry: %w", err)
	}
	return nil
}
