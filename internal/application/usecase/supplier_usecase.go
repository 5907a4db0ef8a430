package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/pdv-estoque/internal/application/dto"
	"github.com/tu-usuario/pdv-estoque/internal/application/listing"
	"github.com/tu-usuario/pdv-estoque/internal/domain"
	"github.com/tu-usuario/pdv-estoque/internal/domain/entity"
	"github.com/tu-usuario/pdv-estoque/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores. Misma forma que clientes;
// los proveedores no participan del motor de stock.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor.
func (uc *SupplierUseCase) Create(userID string, in dto.PartyRequest) (*dto.PartyResponse, error) {
	if err := validateParty(&in); err != nil {
		return nil, err
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		TaxID:     in.TaxID,
		TaxIDKind: in.TaxIDKind,
		Phone:     digitsOnly(in.Phone),
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor del usuario.
func (uc *SupplierUseCase) GetByID(userID, id string) (*dto.PartyResponse, error) {
	supplier, err := uc.scoped(userID, id)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Update actualiza un proveedor.
func (uc *SupplierUseCase) Update(userID, id string, in dto.PartyRequest) (*dto.PartyResponse, error) {
	supplier, err := uc.scoped(userID, id)
	if err != nil {
		return nil, err
	}
	if err := validateParty(&in); err != nil {
		return nil, err
	}
	supplier.Name = in.Name
	supplier.TaxID = in.TaxID
	supplier.TaxIDKind = in.TaxIDKind
	supplier.Phone = digitsOnly(in.Phone)
	supplier.Address = in.Address
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista los proveedores del usuario con búsqueda, orden y paginación.
func (uc *SupplierUseCase) List(userID string, q dto.ListQuery) (*dto.PartyListResponse, error) {
	q.Defaults()
	all, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	filtered := listing.FilterFunc(all, q.Search, func(s *entity.Supplier, search string) bool {
		return matchParty(search, s.Name, s.TaxID, s.Phone)
	})
	desc := q.Desc()
	sorted := listing.SortStable(filtered, func(a, b *entity.Supplier) bool {
		if desc {
			a, b = b, a
		}
		return listing.Fold(a.Name) < listing.Fold(b.Name)
	})
	page, meta := listing.Paginate(sorted, q.Page, q.PerPage)

	items := make([]dto.PartyResponse, 0, len(page))
	for _, s := range page {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.PartyListResponse{Items: items, Page: toPageResponse(meta)}, nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(userID, id string) error {
	if _, err := uc.scoped(userID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *SupplierUseCase) scoped(userID, id string) (*entity.Supplier, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return supplier, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.PartyResponse {
	return &dto.PartyResponse{
		ID:        s.ID,
		Name:      s.Name,
		TaxID:     s.TaxID,
		TaxIDKind: s.TaxIDKind,
		Phone:     s.Phone,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
