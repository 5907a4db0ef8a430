package ledger_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pdv-estoque/internal/domain/entity"
	"github.com/tu-usuario/pdv-estoque/internal/domain/repository"
)

// memStore respaldo en memoria compartido por los repositorios fake. El
// txRunner fake lo clona antes de cada operación y lo restaura si falla,
// imitando el rollback de una transacción real.
type memStore struct {
	products  map[string]*entity.Product
	entries   map[string]*entity.StockEntry
	sales     map[string]*entity.Sale
	customers map[string]*entity.Customer
}

func newMemStore() *memStore {
	return &memStore{
		products:  map[string]*entity.Product{},
		entries:   map[string]*entity.StockEntry{},
		sales:     map[string]*entity.Sale{},
		customers: map[string]*entity.Customer{},
	}
}

func copySale(s *entity.Sale) *entity.Sale {
	c := *s
	c.Items = append([]entity.SaleItem(nil), s.Items...)
	c.Services = append([]entity.ServiceItem(nil), s.Services...)
	return &c
}

func (m *memStore) clone() *memStore {
	c := newMemStore()
	for id, p := range m.products {
		cp := *p
		c.products[id] = &cp
	}
	for id, e := range m.entries {
		ce := *e
		c.entries[id] = &ce
	}
	for id, s := range m.sales {
		c.sales[id] = copySale(s)
	}
	for id, cu := range m.customers {
		cc := *cu
		c.customers[id] = &cc
	}
	return c
}

func (m *memStore) restore(snap *memStore) {
	m.products = snap.products
	m.entries = snap.entries
	m.sales = snap.sales
	m.customers = snap.customers
}

// fakeTxRunner ejecuta el callback sobre los repos fake y deshace todo cambio
// si el callback devuelve error.
type fakeTxRunner struct {
	store *memStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	entryRepo repository.StockEntryRepository,
	saleRepo repository.SaleRepository,
) error) error {
	snap := r.store.clone()
	err := fn(
		&fakeProductRepo{store: r.store},
		&fakeEntryRepo{store: r.store},
		&fakeSaleRepo{store: r.store},
	)
	if err != nil {
		r.store.restore(snap)
	}
	return err
}

// ── Repositorios fake ─────────────────────────────────────────────────────────

type fakeProductRepo struct{ store *memStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByUserAndCode(userID, code string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.UserID == userID && p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByUserAndCodeForUpdate(userID, code string) (*entity.Product, error) {
	return r.GetByUserAndCode(userID, code)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(productID string, stock decimal.Decimal) error {
	p, ok := r.store.products[productID]
	if !ok {
		return nil
	}
	p.Stock = stock
	return nil
}

func (r *fakeProductRepo) ListByUser(userID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.store.products, id)
	return nil
}

type fakeEntryRepo struct{ store *memStore }

func (r *fakeEntryRepo) Create(e *entity.StockEntry) error {
	ce := *e
	r.store.entries[e.ID] = &ce
	return nil
}

func (r *fakeEntryRepo) GetByID(id string) (*entity.StockEntry, error) {
	e, ok := r.store.entries[id]
	if !ok {
		return nil, nil
	}
	ce := *e
	return &ce, nil
}

func (r *fakeEntryRepo) ListByUser(userID string) ([]*entity.StockEntry, error) {
	var out []*entity.StockEntry
	for _, e := range r.store.entries {
		if e.UserID == userID {
			ce := *e
			out = append(out, &ce)
		}
	}
	return out, nil
}

func (r *fakeEntryRepo) Update(e *entity.StockEntry) error {
	ce := *e
	r.store.entries[e.ID] = &ce
	return nil
}

func (r *fakeEntryRepo) Delete(id string) error {
	delete(r.store.entries, id)
	return nil
}

type fakeSaleRepo struct{ store *memStore }

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	r.store.sales[s.ID] = copySale(s)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.store.sales[id]
	if !ok {
		return nil, nil
	}
	return copySale(s), nil
}

func (r *fakeSaleRepo) ListByUser(userID string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.store.sales {
		if s.UserID == userID {
			out = append(out, copySale(s))
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) Update(s *entity.Sale) error {
	r.store.sales[s.ID] = copySale(s)
	return nil
}

func (r *fakeSaleRepo) Delete(id string) error {
	delete(r.store.sales, id)
	return nil
}

type fakeCustomerRepo struct{ store *memStore }

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	cc := *c
	r.store.customers[c.ID] = &cc
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.store.customers[id]
	if !ok {
		return nil, nil
	}
	cc := *c
	return &cc, nil
}

func (r *fakeCustomerRepo) ListByUser(userID string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.store.customers {
		if c.UserID == userID {
			cc := *c
			out = append(out, &cc)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	cc := *c
	r.store.customers[c.ID] = &cc
	return nil
}

func (r *fakeCustomerRepo) Delete(id string) error {
	delete(r.store.customers, id)
	return nil
}
