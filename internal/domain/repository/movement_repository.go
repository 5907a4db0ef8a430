package repository

import "github.com/tu-usuario/pdv-estoque/internal/domain/entity"

// StockEntryRepository define el puerto de persistencia para entradas de stock.
type StockEntryRepository interface {
	Create(entry *entity.StockEntry) error
	GetByID(id string) (*entity.StockEntry, error)
	ListByUser(userID string) ([]*entity.StockEntry, error)
	Update(entry *entity.StockEntry) error
	Delete(id string) error
}

// SaleRepository define el puerto de persistencia para ventas. Items y Services
// se guardan embebidos en la fila (JSONB).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	ListByUser(userID string) ([]*entity.Sale, error)
	Update(sale *entity.Sale) error
	Delete(id string) error
}
