package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pdv-estoque/internal/application/dto"
	appledger "github.com/tu-usuario/pdv-estoque/internal/application/ledger"
	"github.com/tu-usuario/pdv-estoque/internal/domain"
	"github.com/tu-usuario/pdv-estoque/internal/domain/entity"
)

func newSaleUseCase(store *memStore) *appledger.SaleUseCase {
	return appledger.NewSaleUseCase(&fakeTxRunner{store: store}, &fakeCustomerRepo{store: store})
}

func seedProductWithPrice(store *memStore, id, code string, stock int64, price float64) {
	store.products[id] = &entity.Product{
		ID:     id,
		UserID: testUserID,
		Code:   code,
		Stock:  decimal.NewFromInt(stock),
		Price:  decimal.NewFromFloat(price),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear venta
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateSale_DescuentaStockYCongelaPrecio(t *testing.T) {
	store := newMemStore()
	seedProductWithPrice(store, "p1", "P-001", 10, 100)
	uc := newSaleUseCase(store)

	resp, err := uc.CreateSale(context.Background(), testUserID, dto.SaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductCode: "P-001", Quantity: decimal.NewFromInt(2)},
		},
		Services: []dto.ServiceItemRequest{
			{Description: "Mano de obra", UnitValue: decimal.NewFromInt(50), Quantity: 1},
		},
		DiscountPercent: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.True(t, store.products["p1"].Stock.Equal(decimal.NewFromInt(8)))
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].UnitPrice.Equal(decimal.NewFromInt(100)),
		"el precio se congela desde el catálogo")
	// (2*100 + 50) * 0.9 = 225.00
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(225)), "total esperado 225.00, obtuvo %s", resp.Total)
	assert.Equal(t, entity.SaleStatusOpen, resp.Status, "el estado por defecto es OPEN")
}

func TestCreateSale_StockInsuficienteRechazaTodo(t *testing.T) {
	store := newMemStore()
	seedProductWithPrice(store, "p1", "P-001", 5, 10)
	seedProductWithPrice(store, "p2", "P-002", 50, 10)
	uc := newSaleUseCase(store)

	_, err := uc.CreateSale(context.Background(), testUserID, dto.SaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductCode: "P-002", Quantity: decimal.NewFromInt(3)},
			{ProductCode: "P-001", Quantity: decimal.NewFromInt(7)},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, "P-001", insufficient.ProductCode)
	assert.True(t, insufficient.Available.Equal(decimal.NewFromInt(5)),
		"el error informa el stock disponible, obtuvo %s", insufficient.Available)

	// sin aplicación parcial: ningún producto se tocó y no quedó venta
	assert.True(t, store.products["p1"].Stock.Equal(decimal.NewFromInt(5)))
	assert.True(t, store.products["p2"].Stock.Equal(decimal.NewFromInt(50)))
	assert.Empty(t, store.sales)
}

func TestCreateSale_DemandaAcumuladaPorCodigo(t *testing.T) {
	store := newMemStore()
	seedProductWithPrice(store, "p1", "P-001", 5, 10)
	uc := newSaleUseCase(store)

	// dos líneas del mismo producto: 3 + 3 = 6 > 5
	_, err := uc.CreateSale(context.Background(), testUserID, dto.SaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductCode: "P-001", Quantity: decimal.NewFromInt(3)},
			{ProductCode: "P-001", Quantity: decimal.NewFromInt(3)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, store.products["p1"].Stock.Equal(decimal.NewFromInt(5)))
}

func TestCreateSale_CantidadFraccionadaSeNormaliza(t *testing.T) {
	store := newMemStore()
	seedProductWithPrice(store, "p1", "P-001", 10, 10)
	uc := newSaleUseCase(store)

	resp, err := uc.CreateSale(context.Background(), testUserID, dto.SaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductCode: "P-001", Quantity: decimal.NewFromFloat(3.97), Fractional: true},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].Quantity.Equal(decimal.NewFromFloat(3.9)),
		"3.97 se normaliza a 3.9 antes de descontar")
	assert.True(t, store.products["p1"].Stock.Equal(decimal.NewFromFloat(6.1)),
		"stock resultante 6.1, obtuvo %s", store.products["p1"].Stock)
}

// El flag fraccionado viene de la entrada y se conserva aunque la cantidad sea
// entera: una línea de 2.0 fraccionada se imprime "2.0" en el recibo, no "2".
func TestCreateSale_FlagFraccionadoSeConservaConCantidadEntera(t *testing.T) {
	store := newMemStore()
	seedProductWithPrice(store, "p1", "P-001", 10, 10)
	uc := newSaleUseCase(store)

	resp, err := uc.CreateSale(context.Background(), testUserID, dto.SaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductCode: "P-001", Quantity: decimal.NewFromFloat(2.0), Fractional: true},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].Fractional, "la línea sigue marcada como fraccionada")
	for _, sale := range store.sales {
		require.Len(t, sale.Items, 1)
		assert.True(t, sale.Items[0].Fractional, "la venta persistida conserva el flag")
	}
}

func TestCreateSale_SoloServiciosNoTocaStock(t *testing.T) {
	store := newMemStore()
	seedProductWithPrice(store, "p1", "P-001", 10, 10)
	uc := newSaleUseCase(store)

	resp, err := uc.CreateSale(context.Background(), testUserID, dto.SaleRequest{
		Services: []dto.ServiceItemRequest{
			{Description: "Instalación", UnitValue: decimal.NewFromInt(80)},
		},
	})
	require.NoError(t, err)

	assert.True(t, store.products["p1"].Stock.Equal(decimal.NewFromInt(10)))
	// cantidad de servicio omitida vale 1
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(80)))
}

func TestCreateSale_Invalida(t *testing.T) {
	store := newMemStore()
	seedProductWithPrice(store, "p1", "P-001", 10, 10)
	uc := newSaleUseCase(store)

	// sin líneas ni servicios
	_, err := uc.CreateSale(context.Background(), testUserID, dto.SaleRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// estado desconocido
	_, err = uc.CreateSale(context.Background(), testUserID, dto.SaleRequest{
		Items:  []dto.SaleItemRequest{{ProductCode: "P-001", Quantity: decimal.NewFromInt(1)}},
		Status: "CANCELADA",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// descuento fuera de rango
	_, err = uc.CreateSale(context.Background(), testUserID, dto.SaleRequest{
		Items:           []dto.SaleItemRequest{{ProductCode: "P-001", Quantity: decimal.NewFromInt(1)}},
		DiscountPercent: decimal.NewFromInt(101),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_ClienteInexistente(t *testing.T) {
	store := newMemStore()
	seedProductWithPrice(store, "p1", "P-001", 10, 10)
	uc := newSaleUseCase(store)

	_, err := uc.CreateSale(context.Background(), testUserID, dto.SaleRequest{
		CustomerID: "no-existe",
		Items:      []dto.SaleItemRequest{{ProductCode: "P-001", Quantity: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateSale_ClienteDeOtroUsuario(t *testing.T) {
	store := newMemStore()
	seedProductWithPrice(store, "p1", "P-001", 10, 10)
	store.customers["c1"] = &entity.Customer{ID: "c1", UserID: "otro-usuario", Name: "Ajeno"}
	uc := newSaleUseCase(store)

	_, err := uc.CreateSale(context.Background(), testUserID, dto.SaleRequest{
		CustomerID: "c1",
		Items:      []dto.SaleItemRequest{{ProductCode: "P-001", Quantity: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Editar venta: reversión completa + aplicación completa
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateSale_ReversionCompletaYReaplicacion(t *testing.T) {
	store := newMemStore()
	seedProductWithPrice(store, "p1", "P-001", 25, 10)
	seedProductWithPrice(store, "p2", "P-002", 20, 10)
	uc := newSaleUseCase(store)

	resp, err := uc.CreateSale(context.Background(), testUserID, dto.SaleRequest{
		Items: []dto.SaleItemRequest{{ProductCode: "P-001", Quantity: decimal.NewFromInt(5)}},
	})
	require.NoError(t, err)
	require.True(t, store.products["p1"].Stock.Equal(decimal.NewFromInt(20)))

	// cambiar la venta de P-001 a P-002: P-001 recupera sus 5, P-002 cede 5
	_, err = uc.UpdateSale(context.Background(), testUserID, resp.ID, dto.SaleRequest{
		Items: []dto.SaleItemRequest{{ProductCode: "P-002", Quantity: decimal.NewFromInt(5)}},
	})
	require.NoError(t, err)

	assert.True(t, store.products["p1"].Stock.Equal(decimal.NewFromInt(25)))
	assert.True(t, store.products["p2"].Stock.Equal(decimal.NewFromInt(15)))
}

func TestUpdateSale_SinCambiosEsNoOp(t *testing.T) {
	store := newMemStore()
	seedProductWithPrice(store, "p1", "P-001", 10, 10)
	uc := newSaleUseCase(store)

	req := dto.SaleRequest{
		Items: []dto.SaleItemRequest{{ProductCode: "P-001", Quantity: decimal.NewFromInt(4)}},
	}
	resp, err := uc.CreateSale(context.Background(), testUserID, req)
	require.NoError(t, err)
	occurredAt := store.sales[resp.ID].OccurredAt

	_, err = uc.UpdateSale(context.Background(), testUserID, resp.ID, req)
	require.NoError(t, err)

	assert.True(t, store.products["p1"].Stock.Equal(decimal.NewFromInt(6)),
		"guardar sin cambios deja el stock igual")
	assert.True(t, store.sales[resp.ID].OccurredAt.Equal(occurredAt),
		"editar conserva la fecha original de la venta")
}

func TestUpdateSale_LaReversionHabilitaLaNuevaDemanda(t *testing.T) {
	store := newMemStore()
	seedProductWithPrice(store, "p1", "P-001", 10, 10)
	uc := newSaleUseCase(store)

	resp, err := uc.CreateSale(context.Background(), testUserID, dto.SaleRequest{
		Items: []dto.SaleItemRequest{{ProductCode: "P-001", Quantity: decimal.NewFromInt(8)}},
	})
	require.NoError(t, err)
	require.True(t, store.products["p1"].Stock.Equal(decimal.NewFromInt(2)))

	// 10 disponibles tras revertir los 8 de la versión anterior
	_, err = uc.UpdateSale(context.Background(), testUserID, resp.ID, dto.SaleRequest{
		Items: []dto.SaleItemRequest{{ProductCode: "P-001", Quantity: decimal.NewFromInt(10)}},
	})
	require.NoError(t, err)
	assert.True(t, store.products["p1"].Stock.IsZero())
}

func TestUpdateSale_NuevaDemandaInsuficienteDeshaceLaReversion(t *testing.T) {
	store := newMemStore()
	seedProductWithPrice(store, "p1", "P-001", 10, 10)
	uc := newSaleUseCase(store)

	resp, err := uc.CreateSale(context.Background(), testUserID, dto.SaleRequest{
		Items: []dto.SaleItemRequest{{ProductCode: "P-001", Quantity: decimal.NewFromInt(8)}},
	})
	require.NoError(t, err)

	_, err = uc.UpdateSale(context.Background(), testUserID, resp.ID, dto.SaleRequest{
		Items: []dto.SaleItemRequest{{ProductCode: "P-001", Quantity: decimal.NewFromInt(11)}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// el rollback deja el stock y la venta original intactos
	assert.True(t, store.products["p1"].Stock.Equal(decimal.NewFromInt(2)))
	require.Len(t, store.sales[resp.ID].Items, 1)
	assert.True(t, store.sales[resp.ID].Items[0].Quantity.Equal(decimal.NewFromInt(8)))
}

func TestUpdateSale_RecalculaElTotal(t *testing.T) {
	store := newMemStore()
	seedProductWithPrice(store, "p1", "P-001", 10, 100)
	uc := newSaleUseCase(store)

	resp, err := uc.CreateSale(context.Background(), testUserID, dto.SaleRequest{
		Items: []dto.SaleItemRequest{{ProductCode: "P-001", Quantity: decimal.NewFromInt(1)}},
	})
	require.NoError(t, err)
	require.True(t, resp.Total.Equal(decimal.NewFromInt(100)))

	updated, err := uc.UpdateSale(context.Background(), testUserID, resp.ID, dto.SaleRequest{
		Items:           []dto.SaleItemRequest{{ProductCode: "P-001", Quantity: decimal.NewFromInt(2)}},
		DiscountPercent: decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	assert.True(t, updated.Total.Equal(decimal.NewFromInt(100)),
		"2*100 con 50%% = 100.00, obtuvo %s", updated.Total)
	assert.True(t, store.sales[resp.ID].Total.Equal(decimal.NewFromInt(100)),
		"el total recalculado se persiste")
}

func TestUpdateSale_DeOtroUsuario(t *testing.T) {
	store := newMemStore()
	seedProductWithPrice(store, "p1", "P-001", 10, 10)
	uc := newSaleUseCase(store)

	resp, err := uc.CreateSale(context.Background(), testUserID, dto.SaleRequest{
		Items: []dto.SaleItemRequest{{ProductCode: "P-001", Quantity: decimal.NewFromInt(1)}},
	})
	require.NoError(t, err)

	_, err = uc.UpdateSale(context.Background(), "otro-usuario", resp.ID, dto.SaleRequest{
		Items: []dto.SaleItemRequest{{ProductCode: "P-001", Quantity: decimal.NewFromInt(2)}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminar venta
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteSale_IdaYVuelta(t *testing.T) {
	store := newMemStore()
	seedProductWithPrice(store, "p1", "P-001", 10, 10)
	uc := newSaleUseCase(store)

	resp, err := uc.CreateSale(context.Background(), testUserID, dto.SaleRequest{
		Items: []dto.SaleItemRequest{{ProductCode: "P-001", Quantity: decimal.NewFromInt(4)}},
	})
	require.NoError(t, err)
	require.True(t, store.products["p1"].Stock.Equal(decimal.NewFromInt(6)))

	require.NoError(t, uc.DeleteSale(context.Background(), testUserID, resp.ID))

	assert.True(t, store.products["p1"].Stock.Equal(decimal.NewFromInt(10)),
		"crear y eliminar una venta vuelve al stock original")
	assert.Empty(t, store.sales)
}

func TestDeleteSale_ProductoYaEliminado(t *testing.T) {
	store := newMemStore()
	seedProductWithPrice(store, "p1", "P-001", 10, 10)
	uc := newSaleUseCase(store)

	resp, err := uc.CreateSale(context.Background(), testUserID, dto.SaleRequest{
		Items: []dto.SaleItemRequest{{ProductCode: "P-001", Quantity: decimal.NewFromInt(4)}},
	})
	require.NoError(t, err)

	delete(store.products, "p1")

	// la venta huérfana se elimina sin error
	require.NoError(t, uc.DeleteSale(context.Background(), testUserID, resp.ID))
	assert.Empty(t, store.sales)
}

func TestDeleteSale_Inexistente(t *testing.T) {
	store := newMemStore()
	uc := newSaleUseCase(store)

	err := uc.DeleteSale(context.Background(), testUserID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
