package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pdv-estoque/internal/application/dto"
	"github.com/tu-usuario/pdv-estoque/internal/application/listing"
	"github.com/tu-usuario/pdv-estoque/internal/domain"
	"github.com/tu-usuario/pdv-estoque/internal/domain/entity"
	"github.com/tu-usuario/pdv-estoque/internal/domain/repository"
)

// CatalogUseCase administra las listas de referencia: categorías, unidades y
// ubicaciones. Los productos copian estos valores como texto libre, así que
// borrar una entrada nunca arrastra productos ni movimientos.
type CatalogUseCase struct {
	categories repository.CategoryRepository
	units      repository.UnitRepository
	locations  repository.StockLocationRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	categories repository.CategoryRepository,
	units repository.UnitRepository,
	locations repository.StockLocationRepository,
) *CatalogUseCase {
	return &CatalogUseCase{categories: categories, units: units, locations: locations}
}

// CreateCategory agrega una categoría. El nombre es único por usuario, sin
// distinguir mayúsculas ni diacríticos.
func (uc *CatalogUseCase) CreateCategory(userID string, in dto.CreateReferenceRequest) (*dto.ReferenceResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.categories.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	for _, c := range existing {
		if listing.Fold(c.Name) == listing.Fold(name) {
			return nil, domain.ErrDuplicate
		}
	}
	category := &entity.Category{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := uc.categories.Create(category); err != nil {
		return nil, err
	}
	return &dto.ReferenceResponse{ID: category.ID, Name: category.Name}, nil
}

// ListCategories lista las categorías del usuario ordenadas por nombre.
func (uc *CatalogUseCase) ListCategories(userID string) ([]dto.ReferenceResponse, error) {
	categories, err := uc.categories.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	sorted := listing.SortStable(categories, func(a, b *entity.Category) bool {
		return listing.Fold(a.Name) < listing.Fold(b.Name)
	})
	out := make([]dto.ReferenceResponse, 0, len(sorted))
	for _, c := range sorted {
		out = append(out, dto.ReferenceResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// DeleteCategory elimina una categoría del usuario.
func (uc *CatalogUseCase) DeleteCategory(userID, id string) error {
	categories, err := uc.categories.ListByUser(userID)
	if err != nil {
		return err
	}
	for _, c := range categories {
		if c.ID == id {
			return uc.categories.Delete(id)
		}
	}
	return domain.ErrNotFound
}

// CreateUnit agrega una unidad de medida.
func (uc *CatalogUseCase) CreateUnit(userID string, in dto.CreateReferenceRequest) (*dto.ReferenceResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.units.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	for _, u := range existing {
		if listing.Fold(u.Name) == listing.Fold(name) {
			return nil, domain.ErrDuplicate
		}
	}
	unit := &entity.Unit{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := uc.units.Create(unit); err != nil {
		return nil, err
	}
	return &dto.ReferenceResponse{ID: unit.ID, Name: unit.Name}, nil
}

// ListUnits lista las unidades del usuario ordenadas por nombre.
func (uc *CatalogUseCase) ListUnits(userID string) ([]dto.ReferenceResponse, error) {
	units, err := uc.units.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	sorted := listing.SortStable(units, func(a, b *entity.Unit) bool {
		return listing.Fold(a.Name) < listing.Fold(b.Name)
	})
	out := make([]dto.ReferenceResponse, 0, len(sorted))
	for _, u := range sorted {
		out = append(out, dto.ReferenceResponse{ID: u.ID, Name: u.Name})
	}
	return out, nil
}

// DeleteUnit elimina una unidad del usuario.
func (uc *CatalogUseCase) DeleteUnit(userID, id string) error {
	units, err := uc.units.ListByUser(userID)
	if err != nil {
		return err
	}
	for _, u := range units {
		if u.ID == id {
			return uc.units.Delete(id)
		}
	}
	return domain.ErrNotFound
}

// CreateLocation agrega una ubicación (corredor, estante o sección).
func (uc *CatalogUseCase) CreateLocation(userID string, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	value := strings.TrimSpace(in.Value)
	if value == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.Kind {
	case entity.LocationKindAisle, entity.LocationKindShelf, entity.LocationKindSection:
	default:
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.locations.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	for _, l := range existing {
		if l.Kind == in.Kind && listing.Fold(l.Value) == listing.Fold(value) {
			return nil, domain.ErrDuplicate
		}
	}
	location := &entity.StockLocation{
		ID:        uuid.New().String(),
		UserID:    userID,
		Kind:      in.Kind,
		Value:     value,
		CreatedAt: time.Now(),
	}
	if err := uc.locations.Create(location); err != nil {
		return nil, err
	}
	return &dto.LocationResponse{ID: location.ID, Kind: location.Kind, Value: location.Value}, nil
}

// ListLocations lista las ubicaciones del usuario, opcionalmente de un solo tipo.
func (uc *CatalogUseCase) ListLocations(userID, kind string) ([]dto.LocationResponse, error) {
	locations, err := uc.locations.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	sorted := listing.SortStable(locations, func(a, b *entity.StockLocation) bool {
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return listing.Fold(a.Value) < listing.Fold(b.Value)
	})
	out := make([]dto.LocationResponse, 0, len(sorted))
	for _, l := range sorted {
		if kind != "" && l.Kind != kind {
			continue
		}
		out = append(out, dto.LocationResponse{ID: l.ID, Kind: l.Kind, Value: l.Value})
	}
	return out, nil
}

// DeleteLocation elimina una ubicación del usuario.
func (uc *CatalogUseCase) DeleteLocation(userID, id string) error {
	locations, err := uc.locations.ListByUser(userID)
	if err != nil {
		return err
	}
	for _, l := range locations {
		if l.ID == id {
			return uc.locations.Delete(id)
		}
	}
	return domain.ErrNotFound
}
