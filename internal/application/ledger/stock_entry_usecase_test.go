package ledger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pdv-estoque/internal/application/dto"
	appledger "github.com/tu-usuario/pdv-estoque/internal/application/ledger"
	"github.com/tu-usuario/pdv-estoque/internal/domain"
	"github.com/tu-usuario/pdv-estoque/internal/domain/entity"
)

const testUserID = "user-1"

func seedProduct(store *memStore, id, code string, stock int64) {
	store.products[id] = &entity.Product{
		ID:     id,
		UserID: testUserID,
		Code:   code,
		Stock:  decimal.NewFromInt(stock),
		Price:  decimal.NewFromInt(100),
	}
}

func newEntryUseCase(store *memStore) *appledger.StockEntryUseCase {
	return appledger.NewStockEntryUseCase(&fakeTxRunner{store: store})
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateStockEntry_SumaAlStock(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "P-001", 10)
	uc := newEntryUseCase(store)

	resp, err := uc.CreateStockEntry(context.Background(), testUserID, dto.StockEntryRequest{
		ProductCode: "P-001",
		Quantity:    decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.True(t, store.products["p1"].Stock.Equal(decimal.NewFromInt(15)))
	require.Len(t, store.entries, 1)
	assert.True(t, store.entries[resp.ID].Quantity.Equal(decimal.NewFromInt(5)))
}

func TestCreateStockEntry_ProductoInexistente(t *testing.T) {
	store := newMemStore()
	uc := newEntryUseCase(store)

	_, err := uc.CreateStockEntry(context.Background(), testUserID, dto.StockEntryRequest{
		ProductCode: "NO-EXISTE",
		Quantity:    decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, store.entries, "una entrada rechazada no deja movimiento")
}

func TestCreateStockEntry_CantidadInvalida(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "P-001", 10)
	uc := newEntryUseCase(store)

	_, err := uc.CreateStockEntry(context.Background(), testUserID, dto.StockEntryRequest{
		ProductCode: "P-001",
		Quantity:    decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.CreateStockEntry(context.Background(), testUserID, dto.StockEntryRequest{
		ProductCode: "P-001",
		Quantity:    decimal.NewFromInt(-3),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Editar entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStockEntry_MismoProductoAplicaDelta(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "P-001", 10)
	uc := newEntryUseCase(store)

	resp, err := uc.CreateStockEntry(context.Background(), testUserID, dto.StockEntryRequest{
		ProductCode: "P-001",
		Quantity:    decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	require.True(t, store.products["p1"].Stock.Equal(decimal.NewFromInt(20)))

	// 10 → 4: delta -6
	_, err = uc.UpdateStockEntry(context.Background(), testUserID, resp.ID, dto.StockEntryRequest{
		ProductCode: "P-001",
		Quantity:    decimal.NewFromInt(4),
	})
	require.NoError(t, err)
	assert.True(t, store.products["p1"].Stock.Equal(decimal.NewFromInt(14)),
		"el stock refleja la cantidad editada, obtuvo %s", store.products["p1"].Stock)
}

func TestUpdateStockEntry_SinCambiosNoMueveStock(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "P-001", 10)
	uc := newEntryUseCase(store)

	resp, err := uc.CreateStockEntry(context.Background(), testUserID, dto.StockEntryRequest{
		ProductCode: "P-001",
		Quantity:    decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	occurredAt := store.entries[resp.ID].OccurredAt

	// guardar sin cambios es un no-op sobre el stock
	_, err = uc.UpdateStockEntry(context.Background(), testUserID, resp.ID, dto.StockEntryRequest{
		ProductCode: "P-001",
		Quantity:    decimal.NewFromInt(5),
	})
	require.NoError(t, err)
	assert.True(t, store.products["p1"].Stock.Equal(decimal.NewFromInt(15)))
	assert.True(t, store.entries[resp.ID].OccurredAt.Equal(occurredAt),
		"editar conserva la fecha original del movimiento")
}

func TestUpdateStockEntry_CambioDeProducto(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "P-001", 10)
	seedProduct(store, "p2", "P-002", 7)
	uc := newEntryUseCase(store)

	resp, err := uc.CreateStockEntry(context.Background(), testUserID, dto.StockEntryRequest{
		ProductCode: "P-001",
		Quantity:    decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	// reversión completa sobre P-001, aplicación completa sobre P-002
	_, err = uc.UpdateStockEntry(context.Background(), testUserID, resp.ID, dto.StockEntryRequest{
		ProductCode: "P-002",
		Quantity:    decimal.NewFromInt(3),
	})
	require.NoError(t, err)

	assert.True(t, store.products["p1"].Stock.Equal(decimal.NewFromInt(10)))
	assert.True(t, store.products["p2"].Stock.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "P-002", store.entries[resp.ID].ProductCode)
}

func TestUpdateStockEntry_NuevoProductoInexistenteRevierteTodo(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "P-001", 10)
	uc := newEntryUseCase(store)

	resp, err := uc.CreateStockEntry(context.Background(), testUserID, dto.StockEntryRequest{
		ProductCode: "P-001",
		Quantity:    decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	_, err = uc.UpdateStockEntry(context.Background(), testUserID, resp.ID, dto.StockEntryRequest{
		ProductCode: "NO-EXISTE",
		Quantity:    decimal.NewFromInt(3),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// el rollback deja el stock y el movimiento como estaban
	assert.True(t, store.products["p1"].Stock.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, "P-001", store.entries[resp.ID].ProductCode)
}

func TestUpdateStockEntry_DeOtroUsuario(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "P-001", 10)
	uc := newEntryUseCase(store)

	resp, err := uc.CreateStockEntry(context.Background(), testUserID, dto.StockEntryRequest{
		ProductCode: "P-001",
		Quantity:    decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	_, err = uc.UpdateStockEntry(context.Background(), "otro-usuario", resp.ID, dto.StockEntryRequest{
		ProductCode: "P-001",
		Quantity:    decimal.NewFromInt(9),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminar entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteStockEntry_IdaYVuelta(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "P-001", 10)
	uc := newEntryUseCase(store)

	resp, err := uc.CreateStockEntry(context.Background(), testUserID, dto.StockEntryRequest{
		ProductCode: "P-001",
		Quantity:    decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteStockEntry(context.Background(), testUserID, resp.ID))

	assert.True(t, store.products["p1"].Stock.Equal(decimal.NewFromInt(10)),
		"crear y eliminar una entrada vuelve al stock original")
	assert.Empty(t, store.entries)
}

func TestDeleteStockEntry_ReversionSinPiso(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "P-001", 10)
	uc := newEntryUseCase(store)

	resp, err := uc.CreateStockEntry(context.Background(), testUserID, dto.StockEntryRequest{
		ProductCode: "P-001",
		Quantity:    decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	// el stock derivó por fuera del movimiento; la reversión es exacta igual
	store.products["p1"].Stock = decimal.NewFromInt(2)

	require.NoError(t, uc.DeleteStockEntry(context.Background(), testUserID, resp.ID))
	assert.True(t, store.products["p1"].Stock.Equal(decimal.NewFromInt(-3)),
		"revertir una entrada no tiene piso en cero, obtuvo %s", store.products["p1"].Stock)
}

func TestDeleteStockEntry_ProductoYaEliminado(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", "P-001", 10)
	uc := newEntryUseCase(store)

	resp, err := uc.CreateStockEntry(context.Background(), testUserID, dto.StockEntryRequest{
		ProductCode: "P-001",
		Quantity:    decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	delete(store.products, "p1")

	// el movimiento huérfano se elimina sin error
	require.NoError(t, uc.DeleteStockEntry(context.Background(), testUserID, resp.ID))
	assert.Empty(t, store.entries)
}

func TestDeleteStockEntry_Inexistente(t *testing.T) {
	store := newMemStore()
	uc := newEntryUseCase(store)

	err := uc.DeleteStockEntry(context.Background(), testUserID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
