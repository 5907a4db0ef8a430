package repository

import "github.com/tu-usuario/pdv-estoque/internal/domain/entity"

// CategoryRepository define el puerto para la lista de referencia de categorías.
// Borrar una categoría no toca los productos que copiaron su nombre.
type CategoryRepository interface {
	Create(category *entity.Category) error
	ListByUser(userID string) ([]*entity.Category, error)
	Delete(id string) error
}

// UnitRepository define el puerto para la lista de referencia de unidades.
type UnitRepository interface {
	Create(unit *entity.Unit) error
	ListByUser(userID string) ([]*entity.Unit, error)
	Delete(id string) error
}

// StockLocationRepository define el puerto para ubicaciones (corredor/estante/sección).
type StockLocationRepository interface {
	Create(location *entity.StockLocation) error
	ListByUser(userID string) ([]*entity.StockLocation, error)
	Delete(id string) error
}
