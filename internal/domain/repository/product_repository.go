package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pdv-estoque/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Stock solo se toca vía UpdateStock, desde el motor de stock.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByUserAndCode(userID, code string) (*entity.Product, error)
	// GetByUserAndCodeForUpdate bloquea la fila del producto (SELECT FOR UPDATE)
	// mientras el motor ajusta su stock dentro de una transacción.
	GetByUserAndCodeForUpdate(userID, code string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, stock decimal.Decimal) error
	ListByUser(userID string) ([]*entity.Product, error)
	Delete(id string) error
}
