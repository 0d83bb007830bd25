package usecase

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aurumworks/goldleaf/internal/domain"
)

// In-memory repositories for unit tests. The Tx-suffixed methods ignore the
// transaction handle, so the stub transaction runner passes nil.

type stubProductRepo struct {
	items map[uuid.UUID]*domain.Product
	sold  map[uuid.UUID]bool
	// failDecrement aborts DecrementQuantityTx for the given product.
	failDecrement map[uuid.UUID]error
}

func newStubProductRepo(products ...*domain.Product) *stubProductRepo {
	r := &stubProductRepo{
		items:         map[uuid.UUID]*domain.Product{},
		sold:          map[uuid.UUID]bool{},
		failDecrement: map[uuid.UUID]error{},
	}
	for _, p := range products {
		r.items[p.ID] = p
	}
	return r
}

func (r *stubProductRepo) Save(_ context.Context, p *domain.Product) error {
	r.items[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (r *stubProductRepo) FindByBarcode(_ context.Context, barcode string) (*domain.Product, error) {
	for _, p := range r.items {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubProductRepo) List(_ context.Context, _ domain.ProductFilter) ([]domain.Product, int64, error) {
	out := make([]domain.Product, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *stubProductRepo) HasInvoiceLines(_ context.Context, id uuid.UUID) (bool, error) {
	return r.sold[id], nil
}

func (r *stubProductRepo) MaxBarcode(_ context.Context) (string, error) {
	max := ""
	for _, p := range r.items {
		if p.Barcode > max {
			max = p.Barcode
		}
	}
	return max, nil
}

func (r *stubProductRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*domain.Product, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubProductRepo) DecrementQuantityTx(_ *gorm.DB, id uuid.UUID, qty int) error {
	if err := r.failDecrement[id]; err != nil {
		return err
	}
	p, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity -= qty
	return nil
}

type stubServiceRepo struct {
	items map[uuid.UUID]*domain.Service
	used  map[uuid.UUID]bool
}

func newStubServiceRepo(services ...*domain.Service) *stubServiceRepo {
	r := &stubServiceRepo{items: map[uuid.UUID]*domain.Service{}, used: map[uuid.UUID]bool{}}
	for _, s := range services {
		r.items[s.ID] = s
	}
	return r
}

func (r *stubServiceRepo) Save(_ context.Context, s *domain.Service) error {
	r.items[s.ID] = s
	return nil
}

func (r *stubServiceRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (r *stubServiceRepo) List(_ context.Context) ([]domain.Service, error) {
	out := make([]domain.Service, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubServiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *stubServiceRepo) HasInvoiceLines(_ context.Context, id uuid.UUID) (bool, error) {
	return r.used[id], nil
}

type stubCustomerRepo struct {
	items map[uuid.UUID]*domain.Customer
	used  map[uuid.UUID]bool
}

func newStubCustomerRepo(customers ...*domain.Customer) *stubCustomerRepo {
	r := &stubCustomerRepo{items: map[uuid.UUID]*domain.Customer{}, used: map[uuid.UUID]bool{}}
	for _, c := range customers {
		r.items[c.ID] = c
	}
	return r
}

func (r *stubCustomerRepo) Save(_ context.Context, c *domain.Customer) error {
	r.items[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Customer, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (r *stubCustomerRepo) List(_ context.Context) ([]domain.Customer, error) {
	out := make([]domain.Customer, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *stubCustomerRepo) HasInvoices(_ context.Context, id uuid.UUID) (bool, error) {
	return r.used[id], nil
}

type stubCategoryRepo struct {
	items map[uuid.UUID]*domain.Category
	used  map[uuid.UUID]bool
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{items: map[uuid.UUID]*domain.Category{}, used: map[uuid.UUID]bool{}}
}

func (r *stubCategoryRepo) Save(_ context.Context, c *domain.Category) error {
	r.items[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (r *stubCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *stubCategoryRepo) HasProducts(_ context.Context, id uuid.UUID) (bool, error) {
	return r.used[id], nil
}

type stubSupplierRepo struct {
	items map[uuid.UUID]*domain.Supplier
	used  map[uuid.UUID]bool
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{items: map[uuid.UUID]*domain.Supplier{}, used: map[uuid.UUID]bool{}}
}

func (r *stubSupplierRepo) Save(_ context.Context, s *domain.Supplier) error {
	r.items[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Supplier, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (r *stubSupplierRepo) List(_ context.Context) ([]domain.Supplier, error) {
	out := make([]domain.Supplier, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSupplierRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *stubSupplierRepo) HasProducts(_ context.Context, id uuid.UUID) (bool, error) {
	return r.used[id], nil
}

type stubInvoiceRepo struct {
	created    []*domain.Invoice
	failCreate error
}

func (r *stubInvoiceRepo) CreateTx(_ *gorm.DB, inv *domain.Invoice) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	for _, existing := range r.created {
		if existing.InvoiceNumber == inv.InvoiceNumber {
			return domain.ErrDuplicateInvoiceNumber
		}
	}
	r.created = append(r.created, inv)
	return nil
}

func (r *stubInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Invoice, error) {
	for _, inv := range r.created {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubInvoiceRepo) List(_ context.Context, _ domain.InvoiceFilter) ([]domain.Invoice, int64, error) {
	out := make([]domain.Invoice, 0, len(r.created))
	for _, inv := range r.created {
		out = append(out, *inv)
	}
	return out, int64(len(out)), nil
}

func (r *stubInvoiceRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.InvoiceStatus) error {
	for _, inv := range r.created {
		if inv.ID == id {
			inv.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

type stubUserRepo struct {
	items map[uuid.UUID]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{items: map[uuid.UUID]*domain.User{}}
}

func (r *stubUserRepo) Save(_ context.Context, u *domain.User) error {
	r.items[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.items {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

// stubTxRunner snapshots stock quantities and the invoice list before running
// fn(nil) and restores both when fn fails, mirroring a database rollback.
type stubTxRunner struct {
	products *stubProductRepo
	invoices *stubInvoiceRepo
}

func (t *stubTxRunner) InTx(_ context.Context, fn func(tx *gorm.DB) error) error {
	quantities := make(map[uuid.UUID]int, len(t.products.items))
	for id, p := range t.products.items {
		quantities[id] = p.Quantity
	}
	n := len(t.invoices.created)

	if err := fn(nil); err != nil {
		for id, q := range quantities {
			if p, ok := t.products.items[id]; ok {
				p.Quantity = q
			}
		}
		t.invoices.created = t.invoices.created[:n]
		return err
	}
	return nil
}

func newTestInvoiceUC(products *stubProductRepo, services *stubServiceRepo, customers *stubCustomerRepo) (*InvoiceUC, *stubInvoiceRepo) {
	invoices := &stubInvoiceRepo{}
	uc := &InvoiceUC{
		Invoices:  invoices,
		Products:  products,
		Services:  services,
		Customers: customers,
		Stock:     NewStockAdjuster(products),
		Tx:        &stubTxRunner{products: products, invoices: invoices},
		Numbers:   NewInvoiceNumberGenerator(),
	}
	return uc, invoices
}
