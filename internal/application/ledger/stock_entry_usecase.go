package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pdv-estoque/internal/application/dto"
	"github.com/tu-usuario/pdv-estoque/internal/domain"
	"github.com/tu-usuario/pdv-estoque/internal/domain/entity"
	"github.com/tu-usuario/pdv-estoque/internal/domain/repository"
)

// StockEntryUseCase mantiene el stock de los productos consistente con el
// historial de entradas. Cada operación corre en una transacción con la fila
// del producto bloqueada (SELECT FOR UPDATE).
//
// Las reversiones de entradas son exactas, sin piso en cero: deshacer una
// entrada resta la cantidad tal cual, aunque el resultado quede negativo.
// El piso en cero existe solo del lado de las ventas.
type StockEntryUseCase struct {
	txRunner TxRunner
}

// NewStockEntryUseCase construye el caso de uso.
func NewStockEntryUseCase(txRunner TxRunner) *StockEntryUseCase {
	return &StockEntryUseCase{txRunner: txRunner}
}

// CreateStockEntry registra una entrada: suma la cantidad al stock del producto
// y persiste el movimiento, todo en una transacción.
func (uc *StockEntryUseCase) CreateStockEntry(ctx context.Context, userID string, in dto.StockEntryRequest) (*dto.StockEntryResponse, error) {
	if in.ProductCode == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidQuantity
	}

	now := time.Now()
	entry := &entity.StockEntry{
		ID:          uuid.New().String(),
		UserID:      userID,
		ProductCode: in.ProductCode,
		Quantity:    in.Quantity,
		OccurredAt:  now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		entryRepo repository.StockEntryRepository,
		_ repository.SaleRepository,
	) error {
		product, err := productRepo.GetByUserAndCodeForUpdate(userID, in.ProductCode)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := productRepo.UpdateStock(product.ID, product.Stock.Add(in.Quantity)); err != nil {
			return err
		}
		return entryRepo.Create(entry)
	})
	if err != nil {
		return nil, err
	}
	return toStockEntryResponse(entry), nil
}

// UpdateStockEntry edita una entrada. Mismo producto: aplica la diferencia
// nueva-vieja como delta con signo. Producto distinto: reversión completa sobre
// el producto viejo y aplicación completa sobre el nuevo. OccurredAt se
// conserva siempre.
func (uc *StockEntryUseCase) UpdateStockEntry(ctx context.Context, userID, id string, in dto.StockEntryRequest) (*dto.StockEntryResponse, error) {
	if in.ProductCode == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidQuantity
	}

	var updated *entity.StockEntry
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		entryRepo repository.StockEntryRepository,
		_ repository.SaleRepository,
	) error {
		entry, err := entryRepo.GetByID(id)
		if err != nil {
			return err
		}
		if entry == nil || entry.UserID != userID {
			return domain.ErrNotFound
		}

		if entry.ProductCode == in.ProductCode {
			delta := in.Quantity.Sub(entry.Quantity)
			if !delta.IsZero() {
				product, err := productRepo.GetByUserAndCodeForUpdate(userID, in.ProductCode)
				if err != nil {
					return err
				}
				if product == nil {
					return domain.ErrNotFound
				}
				if err := productRepo.UpdateStock(product.ID, product.Stock.Add(delta)); err != nil {
					return err
				}
			}
		} else {
			// Reversión completa sobre el producto viejo. Si ya no existe
			// (movimiento huérfano), se omite; el producto nuevo sí es obligatorio.
			old, err := productRepo.GetByUserAndCodeForUpdate(userID, entry.ProductCode)
			if err != nil {
				return err
			}
			if old != nil {
				if err := productRepo.UpdateStock(old.ID, old.Stock.Sub(entry.Quantity)); err != nil {
					return err
				}
			}
			next, err := productRepo.GetByUserAndCodeForUpdate(userID, in.ProductCode)
			if err != nil {
				return err
			}
			if next == nil {
				return domain.ErrNotFound
			}
			if err := productRepo.UpdateStock(next.ID, next.Stock.Add(in.Quantity)); err != nil {
				return err
			}
		}

		entry.ProductCode = in.ProductCode
		entry.Quantity = in.Quantity
		entry.UpdatedAt = time.Now()
		if err := entryRepo.Update(entry); err != nil {
			return err
		}
		updated = entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toStockEntryResponse(updated), nil
}

// DeleteStockEntry deshace una entrada: resta su cantidad del stock (sin piso)
// y elimina el movimiento.
func (uc *StockEntryUseCase) DeleteStockEntry(ctx context.Context, userID, id string) error {
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		entryRepo repository.StockEntryRepository,
		_ repository.SaleRepository,
	) error {
		entry, err := entryRepo.GetByID(id)
		if err != nil {
			return err
		}
		if entry == nil || entry.UserID != userID {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetByUserAndCodeForUpdate(userID, entry.ProductCode)
		if err != nil {
			return err
		}
		if product != nil {
			if err := productRepo.UpdateStock(product.ID, product.Stock.Sub(entry.Quantity)); err != nil {
				return err
			}
		}
		return entryRepo.Delete(entry.ID)
	})
}

func toStockEntryResponse(e *entity.StockEntry) *dto.StockEntryResponse {
	if e == nil {
		return nil
	}
	return &dto.StockEntryResponse{
		ID:          e.ID,
		ProductCode: e.ProductCode,
		Quantity:    e.Quantity,
		OccurredAt:  e.OccurredAt,
	}
}
