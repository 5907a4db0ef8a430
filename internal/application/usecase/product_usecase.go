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

// ProductUseCase casos de uso CRUD para productos. Stock solo se fija al crear;
// después lo mueven las entradas y ventas.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. El código es único por usuario.
func (uc *ProductUseCase) Create(userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Code = strings.TrimSpace(in.Code)
	if in.Code == "" || strings.TrimSpace(in.Description) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock.IsNegative() || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByUserAndCode(userID, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		UserID:      userID,
		Code:        in.Code,
		Description: in.Description,
		Category:    in.Category,
		Unit:        in.Unit,
		Aisle:       in.Aisle,
		Shelf:       in.Shelf,
		Section:     in.Section,
		Stock:       in.Stock,
		Price:       in.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto del usuario.
func (uc *ProductUseCase) GetByID(userID, id string) (*dto.ProductResponse, error) {
	product, err := uc.scoped(userID, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza los campos editables. Stock no: eso es del motor de stock.
func (uc *ProductUseCase) Update(userID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.scoped(userID, id)
	if err != nil {
		return nil, err
	}
	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.Aisle != nil {
		product.Aisle = *in.Aisle
	}
	if in.Shelf != nil {
		product.Shelf = *in.Shelf
	}
	if in.Section != nil {
		product.Section = *in.Section
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista los productos del usuario con búsqueda, orden y paginación en
// memoria. La búsqueda ignora mayúsculas y diacríticos.
func (uc *ProductUseCase) List(userID string, q dto.ListQuery) (*dto.ProductListResponse, error) {
	q.Defaults()
	all, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	filtered := listing.Filter(all, q.Search, func(p *entity.Product) []string {
		return []string{p.Code, p.Description, p.Category}
	})
	sorted := listing.SortStable(filtered, productLess(q))
	page, meta := listing.Paginate(sorted, q.Page, q.PerPage)

	items := make([]dto.ProductResponse, 0, len(page))
	for _, p := range page {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Page: toPageResponse(meta)}, nil
}

// Delete elimina un producto. Los movimientos que lo referencian quedan
// huérfanos a propósito: el historial no se reescribe.
func (uc *ProductUseCase) Delete(userID, id string) error {
	if _, err := uc.scoped(userID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *ProductUseCase) scoped(userID, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func productLess(q dto.ListQuery) func(a, b *entity.Product) bool {
	desc := q.Desc()
	var cmp func(a, b *entity.Product) bool
	switch q.SortBy {
	case "description":
		cmp = func(a, b *entity.Product) bool { return listing.Fold(a.Description) < listing.Fold(b.Description) }
	case "stock":
		cmp = func(a, b *entity.Product) bool { return a.Stock.LessThan(b.Stock) }
	case "price":
		cmp = func(a, b *entity.Product) bool { return a.Price.LessThan(b.Price) }
	default:
		cmp = func(a, b *entity.Product) bool { return listing.Fold(a.Code) < listing.Fold(b.Code) }
	}
	if desc {
		return func(a, b *entity.Product) bool { return cmp(b, a) }
	}
	return cmp
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Description: p.Description,
		Category:    p.Category,
		Unit:        p.Unit,
		Aisle:       p.Aisle,
		Shelf:       p.Shelf,
		Section:     p.Section,
		Stock:       p.Stock,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPageResponse(meta listing.Pagination) dto.PageResponse {
	return dto.PageResponse{
		Page:       meta.Page,
		PerPage:    meta.PerPage,
		Total:      meta.Total,
		TotalPages: meta.TotalPages,
	}
}
