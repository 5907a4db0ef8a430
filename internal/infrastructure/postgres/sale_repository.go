package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pdv-estoque/internal/domain/entity"
	"github.com/tu-usuario/pdv-estoque/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, user_id, customer_id, items, services, vehicle, notes, status, discount_percent, total, occurred_at, created_at, updated_at`

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL. Items y
// Services van embebidos como JSONB en la fila: la venta es el documento
// completo, con los precios congelados dentro.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una nueva venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	items, services, err := marshalLines(sale)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.q.Exec(context.Background(), query,
		sale.ID, sale.UserID, sale.CustomerID, items, services,
		sale.Vehicle, sale.Notes, sale.Status, sale.DiscountPercent, sale.Total,
		sale.OccurredAt, sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	sale, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return sale, nil
}

// ListByUser lista las ventas del usuario, de la más reciente a la más vieja.
func (r *SaleRepo) ListByUser(userID string) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE user_id = $1 ORDER BY occurred_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, sale)
	}
	return sales, rows.Err()
}

// Update reescribe la venta completa, incluidas sus líneas embebidas.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	items, services, err := marshalLines(sale)
	if err != nil {
		return err
	}
	query := `
		UPDATE sales
		SET customer_id = NULLIF($2, ''), items = $3, services = $4, vehicle = $5, notes = $6,
		    status = $7, discount_percent = $8, total = $9, updated_at = $10
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		sale.ID, sale.CustomerID, items, services, sale.Vehicle, sale.Notes,
		sale.Status, sale.DiscountPercent, sale.Total, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// Delete elimina una venta.
func (r *SaleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

func marshalLines(sale *entity.Sale) (items, services []byte, err error) {
	items, err = json.Marshal(sale.Items)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal sale items: %w", err)
	}
	services, err = json.Marshal(sale.Services)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal sale services: %w", err)
	}
	return items, services, nil
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var customerID *string
	var items, services []byte
	if err := row.Scan(
		&s.ID, &s.UserID, &customerID, &items, &services,
		&s.Vehicle, &s.Notes, &s.Status, &s.DiscountPercent, &s.Total,
		&s.OccurredAt, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if customerID != nil {
		s.CustomerID = *customerID
	}
	if err := json.Unmarshal(items, &s.Items); err != nil {
		return nil, fmt.Errorf("unmarshal sale items: %w", err)
	}
	if err := json.Unmarshal(services, &s.Services); err != nil {
		return nil, fmt.Errorf("unmarshal sale services: %w", err)
	}
	return &s, nil
}
