package ledger

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pdv-estoque/internal/application/dto"
	"github.com/tu-usuario/pdv-estoque/internal/domain"
	"github.com/tu-usuario/pdv-estoque/internal/domain/entity"
	domledger "github.com/tu-usuario/pdv-estoque/internal/domain/ledger"
	"github.com/tu-usuario/pdv-estoque/internal/domain/repository"
)

// SaleUseCase mantiene el stock consistente con el historial de ventas.
//
// Disciplina de edición: reversión completa de las líneas viejas y después
// validación + aplicación completa de las nuevas, sin diff por línea. Ambos
// pasos corren en la misma transacción: si la validación de las líneas nuevas
// falla, la reversión también se deshace.
//
// La resta de stock tiene piso en cero (defensivo contra deriva); la suma de
// una reversión es exacta, sin tope.
type SaleUseCase struct {
	txRunner     TxRunner
	customerRepo repository.CustomerRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner TxRunner, customerRepo repository.CustomerRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, customerRepo: customerRepo}
}

// CreateSale valida las líneas, congela los precios del catálogo, verifica el
// stock disponible (acumulado por código dentro de la misma venta) y descuenta.
// Cualquier faltante rechaza la venta completa, sin aplicación parcial.
func (uc *SaleUseCase) CreateSale(ctx context.Context, userID string, in dto.SaleRequest) (*dto.SaleResponse, error) {
	normalized, err := uc.validate(userID, &in)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:              uuid.New().String(),
		UserID:          userID,
		CustomerID:      in.CustomerID,
		Services:        normalized.services,
		Vehicle:         in.Vehicle,
		Notes:           in.Notes,
		Status:          normalized.status,
		DiscountPercent: in.DiscountPercent,
		OccurredAt:      now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.StockEntryRepository,
		saleRepo repository.SaleRepository,
	) error {
		products := newProductSet(userID, productRepo)

		items, err := applyLines(products, normalized.lines)
		if err != nil {
			return err
		}
		sale.Items = items
		sale.Total = domledger.SaleTotal(items, sale.Services, sale.DiscountPercent)

		if err := products.flush(); err != nil {
			return err
		}
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// UpdateSale repone el stock de todas las líneas de la versión anterior y
// después valida y aplica todas las líneas nuevas, como una sola unidad
// transaccional. El total se recalcula y se persiste; OccurredAt se conserva.
func (uc *SaleUseCase) UpdateSale(ctx context.Context, userID, id string, in dto.SaleRequest) (*dto.SaleResponse, error) {
	normalized, err := uc.validate(userID, &in)
	if err != nil {
		return nil, err
	}

	var updated *entity.Sale
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.StockEntryRepository,
		saleRepo repository.SaleRepository,
	) error {
		sale, err := saleRepo.GetByID(id)
		if err != nil {
			return err
		}
		if sale == nil || sale.UserID != userID {
			return domain.ErrNotFound
		}

		products := newProductSet(userID, productRepo)

		// Reversión completa de la versión anterior
		reverseLines(products, sale.Items)

		// Validación + aplicación completa de la versión nueva
		items, err := applyLines(products, normalized.lines)
		if err != nil {
			return err
		}

		sale.CustomerID = in.CustomerID
		sale.Items = items
		sale.Services = normalized.services
		sale.Vehicle = in.Vehicle
		sale.Notes = in.Notes
		sale.Status = normalized.status
		sale.DiscountPercent = in.DiscountPercent
		sale.Total = domledger.SaleTotal(items, sale.Services, sale.DiscountPercent)
		sale.UpdatedAt = time.Now()

		if err := products.flush(); err != nil {
			return err
		}
		if err := saleRepo.Update(sale); err != nil {
			return err
		}
		updated = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(updated), nil
}

// DeleteSale repone el stock de todas las líneas y elimina la venta.
func (uc *SaleUseCase) DeleteSale(ctx context.Context, userID, id string) error {
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.StockEntryRepository,
		saleRepo repository.SaleRepository,
	) error {
		sale, err := saleRepo.GetByID(id)
		if err != nil {
			return err
		}
		if sale == nil || sale.UserID != userID {
			return domain.ErrNotFound
		}
		products := newProductSet(userID, productRepo)
		reverseLines(products, sale.Items)
		if err := products.flush(); err != nil {
			return err
		}
		return saleRepo.Delete(sale.ID)
	})
}

// ── Validación de entrada ─────────────────────────────────────────────────────

type normalizedSale struct {
	lines    []domledger.Line
	services []entity.ServiceItem
	status   string
}

// validate normaliza cantidades (regla de décimos), servicios y estado, y
// verifica el cliente cuando la venta no es de mostrador. La regla de décimos
// se aplica acá, en el borde de entrada: el motor acepta la cantidad que reciba.
func (uc *SaleUseCase) validate(userID string, in *dto.SaleRequest) (*normalizedSale, error) {
	if len(in.Items) == 0 && len(in.Services) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.DiscountPercent.LessThan(decimal.Zero) || in.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, domain.ErrInvalidInput
	}

	status := in.Status
	if status == "" {
		status = entity.SaleStatusOpen
	}
	switch status {
	case entity.SaleStatusPaid, entity.SaleStatusOpen, entity.SaleStatusQuote:
	default:
		return nil, domain.ErrInvalidInput
	}

	if in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil || customer.UserID != userID {
			return nil, domain.ErrNotFound
		}
	}

	lines := make([]domledger.Line, 0, len(in.Items))
	for i := range in.Items {
		it := &in.Items[i]
		if it.ProductCode == "" {
			return nil, domain.ErrInvalidInput
		}
		q, err := domledger.NormalizeQuantity(it.Quantity, it.Fractional)
		if err != nil {
			return nil, err
		}
		it.Quantity = q
		lines = append(lines, domledger.Line{ProductCode: it.ProductCode, Quantity: q, Fractional: it.Fractional})
	}

	services := make([]entity.ServiceItem, 0, len(in.Services))
	for _, s := range in.Services {
		if s.Description == "" || !s.UnitValue.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		qty := s.Quantity
		if qty == 0 {
			qty = 1
		}
		if qty < 0 {
			return nil, domain.ErrInvalidInput
		}
		services = append(services, entity.ServiceItem{
			Description: s.Description,
			UnitValue:   s.UnitValue,
			Quantity:    qty,
		})
	}

	// Guardar los items normalizados para reconstruirlos con precio congelado
	return &normalizedSale{lines: lines, services: services, status: status}, nil
}

// ── Aplicación y reversión de líneas ──────────────────────────────────────────

// applyLines verifica la demanda acumulada por código contra el stock vigente y
// descuenta con piso en cero. Devuelve las líneas con el precio del catálogo
// congelado. Cualquier faltante aborta con InsufficientStockError.
func applyLines(products *productSet, lines []domledger.Line) ([]entity.SaleItem, error) {
	demand := domledger.GroupQuantitiesByCode(lines)

	// Orden determinista de bloqueo de filas
	codes := make([]string, 0, len(demand))
	for code := range demand {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		product, err := products.get(code)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if demand[code].GreaterThan(product.Stock) {
			return nil, &domain.InsufficientStockError{ProductCode: code, Available: product.Stock}
		}
	}

	items := make([]entity.SaleItem, 0, len(lines))
	for _, line := range lines {
		product, err := products.get(line.ProductCode)
		if err != nil {
			return nil, err
		}
		next := product.Stock.Sub(line.Quantity)
		if next.IsNegative() {
			next = decimal.Zero
		}
		product.Stock = next
		products.touch(line.ProductCode)
		items = append(items, entity.SaleItem{
			ProductCode: line.ProductCode,
			Quantity:    line.Quantity,
			UnitPrice:   product.Price,
			Fractional:  line.Fractional,
		})
	}
	return items, nil
}

// reverseLines repone la cantidad de cada línea, sin tope. Productos que ya no
// existen se omiten: la venta queda huérfana pero la operación no falla.
func reverseLines(products *productSet, items []entity.SaleItem) {
	for _, it := range items {
		product, err := products.get(it.ProductCode)
		if err != nil || product == nil {
			continue
		}
		product.Stock = product.Stock.Add(it.Quantity)
		products.touch(it.ProductCode)
	}
}

// productSet carga y bloquea cada producto una sola vez dentro de la
// transacción, y escribe el stock resultante una sola vez al final.
type productSet struct {
	userID  string
	repo    repository.ProductRepository
	loaded  map[string]*entity.Product
	touched map[string]bool
}

func newProductSet(userID string, repo repository.ProductRepository) *productSet {
	return &productSet{
		userID:  userID,
		repo:    repo,
		loaded:  map[string]*entity.Product{},
		touched: map[string]bool{},
	}
}

// get devuelve el producto bloqueado para update, cargándolo la primera vez.
// Producto inexistente devuelve nil sin error.
func (s *productSet) get(code string) (*entity.Product, error) {
	if p, ok := s.loaded[code]; ok {
		return p, nil
	}
	p, err := s.repo.GetByUserAndCodeForUpdate(s.userID, code)
	if err != nil {
		return nil, err
	}
	s.loaded[code] = p
	return p, nil
}

func (s *productSet) touch(code string) { s.touched[code] = true }

// flush persiste el stock de cada producto modificado, en orden determinista.
func (s *productSet) flush() error {
	codes := make([]string, 0, len(s.touched))
	for code := range s.touched {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		p := s.loaded[code]
		if p == nil {
			continue
		}
		if err := s.repo.UpdateStock(p.ID, p.Stock); err != nil {
			return err
		}
	}
	return nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
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
