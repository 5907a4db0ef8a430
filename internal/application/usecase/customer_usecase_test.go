package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pdv-estoque/internal/application/dto"
	"github.com/tu-usuario/pdv-estoque/internal/application/usecase"
	"github.com/tu-usuario/pdv-estoque/internal/domain/entity"
)

const listTestUserID = "user-1"

type stubCustomerStore struct {
	customers []*entity.Customer
}

func (s *stubCustomerStore) Create(c *entity.Customer) error {
	s.customers = append(s.customers, c)
	return nil
}

func (s *stubCustomerStore) GetByID(id string) (*entity.Customer, error) {
	for _, c := range s.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (s *stubCustomerStore) ListByUser(userID string) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubCustomerStore) Update(*entity.Customer) error { return nil }
func (s *stubCustomerStore) Delete(string) error           { return nil }

func seedCustomers() *stubCustomerStore {
	return &stubCustomerStore{customers: []*entity.Customer{
		{ID: "c-1", UserID: listTestUserID, Name: "João da Silva", TaxID: "12345678901", TaxIDKind: entity.TaxIDKindIndividual, Phone: "11987654321"},
		{ID: "c-2", UserID: listTestUserID, Name: "Oficina Três Irmãos", TaxID: "11222333000181", TaxIDKind: entity.TaxIDKindOrganization, Phone: "2133334444"},
	}}
}

// ──────────────────────────────────────────────────────────────────────────────
// List — búsqueda por dígitos en teléfono y documento
// ──────────────────────────────────────────────────────────────────────────────

// El teléfono se guarda solo con dígitos; una búsqueda con máscara tiene que
// encontrarlo igual, comparando dígitos con dígitos.
func TestCustomerList_BusquedaConMascaraEncuentraTelefono(t *testing.T) {
	uc := usecase.NewCustomerUseCase(seedCustomers())

	out, err := uc.List(listTestUserID, dto.ListQuery{Search: "987-654"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "c-1", out.Items[0].ID)
}

func TestCustomerList_BusquedaPorDigitosDelDocumento(t *testing.T) {
	uc := usecase.NewCustomerUseCase(seedCustomers())

	out, err := uc.List(listTestUserID, dto.ListQuery{Search: "11.222.333/0001-81"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "c-2", out.Items[0].ID)
}

// Una búsqueda alfabética sigue usando la coincidencia plegada sobre el nombre.
func TestCustomerList_BusquedaPorNombreSigueSinDiacriticos(t *testing.T) {
	uc := usecase.NewCustomerUseCase(seedCustomers())

	out, err := uc.List(listTestUserID, dto.ListQuery{Search: "tres irmaos"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "c-2", out.Items[0].ID)
}

func TestCustomerList_BusquedaSinCoincidencias(t *testing.T) {
	uc := usecase.NewCustomerUseCase(seedCustomers())

	out, err := uc.List(listTestUserID, dto.ListQuery{Search: "99999"})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, 1, out.Page.TotalPages, "sin resultados sigue habiendo una página")
}
