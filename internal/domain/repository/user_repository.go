package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pdv-estoque/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para usuarios (auth).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}

// DashboardRepository agrega conteos y sumas para las tarjetas del dashboard.
type DashboardRepository interface {
	CountCustomers(userID string) (int64, error)
	CountProducts(userID string) (int64, error)
	SumStockOnHand(userID string) (decimal.Decimal, error)
	SumMonthSales(userID string) (decimal.Decimal, error)
	CountOpenSales(userID string) (int64, error)
}
