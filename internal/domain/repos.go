package domain

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TxRunner scopes a unit of work to one storage transaction. fn receives the
// transaction handle and every change made through it is committed together
// or rolled back together when fn returns an error.
type TxRunner interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type ProductFilter struct {
	Query      string
	CategoryID *uuid.UUID
	Page       int
	PageSize   int
}

type ProductRepo interface {
	Save(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindByBarcode(ctx context.Context, barcode string) (*Product, error)
	List(ctx context.Context, f ProductFilter) ([]Product, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// HasInvoiceLines reports whether any invoice line references the product.
	HasInvoiceLines(ctx context.Context, id uuid.UUID) (bool, error)
	// MaxBarcode returns the highest assigned numeric barcode, or "" when none.
	MaxBarcode(ctx context.Context) (string, error)
	// FindByIDTx reads the product through an open transaction.
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*Product, error)
	// DecrementQuantityTx applies a stock delta inside the caller's
	// transaction. Reversible only by rolling that transaction back.
	DecrementQuantityTx(tx *gorm.DB, id uuid.UUID, qty int) error
}

type ServiceRepo interface {
	Save(ctx context.Context, s *Service) error
	FindByID(ctx context.Context, id uuid.UUID) (*Service, error)
	List(ctx context.Context) ([]Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
	HasInvoiceLines(ctx context.Context, id uuid.UUID) (bool, error)
}

type CustomerRepo interface {
	Save(ctx context.Context, c *Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	List(ctx context.Context) ([]Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
	HasInvoices(ctx context.Context, id uuid.UUID) (bool, error)
}

type CategoryRepo interface {
	Save(ctx context.Context, c *Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	HasProducts(ctx context.Context, id uuid.UUID) (bool, error)
}

type SupplierRepo interface {
	Save(ctx context.Context, s *Supplier) error
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)
	List(ctx context.Context) ([]Supplier, error)
	Delete(ctx context.Context, id uuid.UUID) error
	HasProducts(ctx context.Context, id uuid.UUID) (bool, error)
}

type InvoiceFilter struct {
	Status   InvoiceStatus
	Page     int
	PageSize int
}

type InvoiceRepo interface {
	// CreateTx persists the invoice header and its lines inside the caller's
	// transaction.
	CreateTx(tx *gorm.DB, inv *Invoice) error
	// FindByID returns the fully populated aggregate: customer and ordered
	// lines with their product/service resolved.
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	List(ctx context.Context, f InvoiceFilter) ([]Invoice, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status InvoiceStatus) error
}

type UserRepo interface {
	Save(ctx context.Context, u *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
}
