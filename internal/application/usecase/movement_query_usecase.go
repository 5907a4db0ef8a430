package usecase

import (
	"github.com/tu-usuario/pdv-estoque/internal/application/dto"
	"github.com/tu-usuario/pdv-estoque/internal/application/listing"
	"github.com/tu-usuario/pdv-estoque/internal/domain"
	"github.com/tu-usuario/pdv-estoque/internal/domain/entity"
	"github.com/tu-usuario/pdv-estoque/internal/domain/repository"
)

// StockEntryQueryUseCase lecturas de entradas de stock. Las escrituras viven en
// el motor de stock; acá solo se listan y enriquecen para las tablas.
type StockEntryQueryUseCase struct {
	entries  repository.StockEntryRepository
	products repository.ProductRepository
}

// NewStockEntryQueryUseCase construye el caso de uso.
func NewStockEntryQueryUseCase(
	entries repository.StockEntryRepository,
	products repository.ProductRepository,
) *StockEntryQueryUseCase {
	return &StockEntryQueryUseCase{entries: entries, products: products}
}

// GetByID obtiene una entrada del usuario.
func (uc *StockEntryQueryUseCase) GetByID(userID, id string) (*dto.StockEntryResponse, error) {
	entry, err := uc.entries.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil || entry.UserID != userID {
		return nil, domain.ErrNotFound
	}
	resp := uc.enrich(userID, entry)
	return &resp, nil
}

// List lista las entradas del usuario, de la más reciente a la más vieja, con
// búsqueda por código o descripción del producto.
func (uc *StockEntryQueryUseCase) List(userID string, q dto.ListQuery) (*dto.StockEntryListResponse, error) {
	q.Defaults()
	all, err := uc.entries.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	descriptions := uc.productIndex(userID)
	filtered := listing.Filter(all, q.Search, func(e *entity.StockEntry) []string {
		fields := []string{e.ProductCode}
		if p, ok := descriptions[e.ProductCode]; ok {
			fields = append(fields, p.Description)
		}
		return fields
	})
	sorted := listing.SortStable(filtered, func(a, b *entity.StockEntry) bool {
		return a.OccurredAt.After(b.OccurredAt)
	})
	page, meta := listing.Paginate(sorted, q.Page, q.PerPage)

	items := make([]dto.StockEntryResponse, 0, len(page))
	for _, e := range page {
		items = append(items, uc.enrichFrom(descriptions, e))
	}
	return &dto.StockEntryListResponse{Items: items, Page: toPageResponse(meta)}, nil
}

func (uc *StockEntryQueryUseCase) productIndex(userID string) map[string]*entity.Product {
	index := map[string]*entity.Product{}
	products, err := uc.products.ListByUser(userID)
	if err != nil {
		return index
	}
	for _, p := range products {
		index[p.Code] = p
	}
	return index
}

func (uc *StockEntryQueryUseCase) enrich(userID string, e *entity.StockEntry) dto.StockEntryResponse {
	return uc.enrichFrom(uc.productIndex(userID), e)
}

// enrichFrom completa descripción y unidad del producto si todavía existe. Un
// movimiento huérfano sale solo con su código.
func (uc *StockEntryQueryUseCase) enrichFrom(index map[string]*entity.Product, e *entity.StockEntry) dto.StockEntryResponse {
	resp := dto.StockEntryResponse{
		ID:          e.ID,
		ProductCode: e.ProductCode,
		Quantity:    e.Quantity,
		OccurredAt:  e.OccurredAt,
	}
	if p, ok := index[e.ProductCode]; ok {
		resp.ProductDescription = p.Description
		resp.ProductUnit = p.Unit
	}
	return resp
}

// SaleQueryUseCase lecturas de ventas.
type SaleQueryUseCase struct {
	sales     repository.SaleRepository
	customers repository.CustomerRepository
}

// NewSaleQueryUseCase construye el caso de uso.
func NewSaleQueryUseCase(
	sales repository.SaleRepository,
	customers repository.CustomerRepository,
) *SaleQueryUseCase {
	return &SaleQueryUseCase{sales: sales, customers: customers}
}

// GetByID obtiene una venta del usuario.
func (uc *SaleQueryUseCase) GetByID(userID, id string) (*dto.SaleResponse, error) {
	sale, err := uc.scoped(userID, id)
	if err != nil {
		return nil, err
	}
	return toSaleQueryResponse(sale), nil
}

// List lista las ventas del usuario, de la más reciente a la más vieja, con
// búsqueda por estado, vehículo, notas o nombre del cliente, y filtro opcional
// por estado exacto.
func (uc *SaleQueryUseCase) List(userID, status string, q dto.ListQuery) (*dto.SaleListResponse, error) {
	q.Defaults()
	all, err := uc.sales.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	if status != "" {
		kept := all[:0]
		for _, s := range all {
			if s.Status == status {
				kept = append(kept, s)
			}
		}
		all = kept
	}

	names := uc.customerNames(userID)
	filtered := listing.Filter(all, q.Search, func(s *entity.Sale) []string {
		fields := []string{s.Vehicle, s.Notes}
		if name, ok := names[s.CustomerID]; ok {
			fields = append(fields, name)
		}
		for _, it := range s.Items {
			fields = append(fields, it.ProductCode)
		}
		return fields
	})
	sorted := listing.SortStable(filtered, func(a, b *entity.Sale) bool {
		return a.OccurredAt.After(b.OccurredAt)
	})
	page, meta := listing.Paginate(sorted, q.Page, q.PerPage)

	items := make([]dto.SaleResponse, 0, len(page))
	for _, s := range page {
		items = append(items, *toSaleQueryResponse(s))
	}
	return &dto.SaleListResponse{Items: items, Page: toPageResponse(meta)}, nil
}

func (uc *SaleQueryUseCase) scoped(userID, id string) (*entity.Sale, error) {
	sale, err := uc.sales.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil || sale.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return sale, nil
}

func (uc *SaleQueryUseCase) customerNames(userID string) map[string]string {
	names := map[string]string{}
	customers, err := uc.customers.ListByUser(userID)
	if err != nil {
		return names
	}
	for _, c := range customers {
		names[c.ID] = c.Name
	}
	return names
}

func toSaleQueryResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductCode: it.ProductCode,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Fractional:  it.Fractional,
		})
	}
	services := make([]dto.ServiceItemResponse, 0, len(s.Services))
	for _, sv := range s.Services {
		services = append(services, dto.ServiceItemResponse{
			Description: sv.Description,
			UnitValue:   sv.UnitValue,
			Quantity:    sv.Quantity,
		})
	}
	return &dto.SaleResponse{
		ID:              s.ID,
		CustomerID:      s.CustomerID,
		Items:           items,
		Services:        services,
		Vehicle:         s.Vehicle,
		Notes:           s.Notes,
		Status:          s.Status,
		DiscountPercent: s.DiscountPercent,
		Total:           s.Total,
		OccurredAt:      s.OccurredAt,
	}
}
