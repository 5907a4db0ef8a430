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

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente. El teléfono se guarda solo con dígitos.
func (uc *CustomerUseCase) Create(userID string, in dto.PartyRequest) (*dto.PartyResponse, error) {
	if err := validateParty(&in); err != nil {
		return nil, err
	}
	now := time.Now()
	customer := &entity.Customer{
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
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente del usuario.
func (uc *CustomerUseCase) GetByID(userID, id string) (*dto.PartyResponse, error) {
	customer, err := uc.scoped(userID, id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Update actualiza un cliente.
func (uc *CustomerUseCase) Update(userID, id string, in dto.PartyRequest) (*dto.PartyResponse, error) {
	customer, err := uc.scoped(userID, id)
	if err != nil {
		return nil, err
	}
	if err := validateParty(&in); err != nil {
		return nil, err
	}
	customer.Name = in.Name
	customer.TaxID = in.TaxID
	customer.TaxIDKind = in.TaxIDKind
	customer.Phone = digitsOnly(in.Phone)
	customer.Address = in.Address
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista los clientes del usuario con búsqueda, orden y paginación.
func (uc *CustomerUseCase) List(userID string, q dto.ListQuery) (*dto.PartyListResponse, error) {
	q.Defaults()
	all, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	filtered := listing.FilterFunc(all, q.Search, func(c *entity.Customer, search string) bool {
		return matchParty(search, c.Name, c.TaxID, c.Phone)
	})
	desc := q.Desc()
	sorted := listing.SortStable(filtered, func(a, b *entity.Customer) bool {
		if desc {
			a, b = b, a
		}
		return listing.Fold(a.Name) < listing.Fold(b.Name)
	})
	page, meta := listing.Paginate(sorted, q.Page, q.PerPage)

	items := make([]dto.PartyResponse, 0, len(page))
	for _, c := range page {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.PartyListResponse{Items: items, Page: toPageResponse(meta)}, nil
}

// Delete elimina un cliente. Las ventas que lo referencian no se tocan.
func (uc *CustomerUseCase) Delete(userID, id string) error {
	if _, err := uc.scoped(userID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *CustomerUseCase) scoped(userID, id string) (*entity.Customer, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

func toCustomerResponse(c *entity.Customer) *dto.PartyResponse {
	return &dto.PartyResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		TaxIDKind: c.TaxIDKind,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// validateParty normaliza y valida los campos comunes de cliente y proveedor.
func validateParty(in *dto.PartyRequest) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return domain.ErrInvalidInput
	}
	if in.TaxIDKind == "" {
		in.TaxIDKind = entity.TaxIDKindIndividual
	}
	if in.TaxIDKind != entity.TaxIDKindIndividual && in.TaxIDKind != entity.TaxIDKindOrganization {
		return domain.ErrInvalidInput
	}
	return nil
}

// digitsOnly descarta la máscara del teléfono: "(11) 98765-4321" → "11987654321".
func digitsOnly(s string) string {
	return listing.Digits(s)
}

// matchParty busca por nombre plegado y, si la búsqueda trae dígitos, también
// compara solo los dígitos del documento y el teléfono: "987-654" encuentra el
// teléfono guardado como "11987654321".
func matchParty(search, name, taxID, phone string) bool {
	if listing.Matches(name, search) || listing.Matches(taxID, search) {
		return true
	}
	return listing.MatchesDigits(taxID, search) || listing.MatchesDigits(phone, search)
}
