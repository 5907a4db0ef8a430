package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pdv-estoque/internal/domain/entity"
	"github.com/tu-usuario/pdv-estoque/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para las tarjetas del dashboard.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador del dashboard.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountCustomers cuenta los clientes del usuario.
func (r *DashboardRepo) CountCustomers(userID string) (int64, error) {
	return r.count(`SELECT COUNT(*) FROM customers WHERE user_id = $1`, userID)
}

// CountProducts cuenta los productos del usuario.
func (r *DashboardRepo) CountProducts(userID string) (int64, error) {
	return r.count(`SELECT COUNT(*) FROM products WHERE user_id = $1`, userID)
}

// SumStockOnHand suma la existencia de todos los productos del usuario.
func (r *DashboardRepo) SumStockOnHand(userID string) (decimal.Decimal, error) {
	return r.sum(`SELECT COALESCE(SUM(stock), 0) FROM products WHERE user_id = $1`, userID)
}

// SumMonthSales suma el total persistido de las ventas del mes calendario en
// curso, excluyendo presupuestos.
func (r *DashboardRepo) SumMonthSales(userID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total), 0)
		FROM sales
		WHERE user_id = $1
		  AND status <> $2
		  AND date_trunc('month', occurred_at) = date_trunc('month', now())`
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, userID, entity.SaleStatusQuote).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum month sales: %w", err)
	}
	return total, nil
}

// CountOpenSales cuenta las ventas en estado OPEN.
func (r *DashboardRepo) CountOpenSales(userID string) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM sales WHERE user_id = $1 AND status = $2`,
		userID, entity.SaleStatusOpen,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count open sales: %w", err)
	}
	return n, nil
}

func (r *DashboardRepo) count(query, userID string) (int64, error) {
	var n int64
	if err := r.q.QueryRow(context.Background(), query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard count: %w", err)
	}
	return n, nil
}

func (r *DashboardRepo) sum(query, userID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, userID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("dashboard sum: %w", err)
	}
	return total, nil
}
