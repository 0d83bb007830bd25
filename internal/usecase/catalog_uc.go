package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/google/uuid"

	"github.com/aurumworks/goldleaf/internal/domain"
)

var barcodeRe = regexp.MustCompile(`^[0-9]{5}$`)

// maxBarcodeValue is the largest value that still fits the fixed barcode width.
const maxBarcodeValue = 99999

// CatalogUC manages products, services, categories and suppliers. Deletes are
// guarded: anything still referenced by products or invoice lines stays.
type CatalogUC struct {
	Products   domain.ProductRepo
	Services   domain.ServiceRepo
	Categories domain.CategoryRepo
	Suppliers  domain.SupplierRepo
}

// --- Products ---

func (uc *CatalogUC) CreateProduct(ctx context.Context, p *domain.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Barcode == "" {
		bc, err := uc.nextBarcode(ctx)
		if err != nil {
			return err
		}
		p.Barcode = bc
	} else if err := uc.validateBarcode(ctx, p.Barcode, p.ID); err != nil {
		return err
	}
	return uc.Products.Save(ctx, p)
}

func (uc *CatalogUC) UpdateProduct(ctx context.Context, p *domain.Product) error {
	if p.ID == uuid.Nil {
		return errors.New("product id is required")
	}
	current, err := uc.Products.FindByID(ctx, p.ID)
	if err != nil {
		return err
	}
	// A sold product keeps its barcode for good: printed tags and past
	// invoices reference it.
	if p.Barcode != current.Barcode {
		sold, err := uc.Products.HasInvoiceLines(ctx, p.ID)
		if err != nil {
			return err
		}
		if sold {
			return fmt.Errorf("barcode of a sold product is immutable")
		}
		if err := uc.validateBarcode(ctx, p.Barcode, p.ID); err != nil {
			return err
		}
	}
	return uc.Products.Save(ctx, p)
}

func (uc *CatalogUC) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return uc.Products.FindByID(ctx, id)
}

func (uc *CatalogUC) GetProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	return uc.Products.FindByBarcode(ctx, barcode)
}

func (uc *CatalogUC) ListProducts(ctx context.Context, f domain.ProductFilter) ([]domain.Product, int64, error) {
	if f.PageSize <= 0 {
		f.PageSize = 20
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	return uc.Products.List(ctx, f)
}

func (uc *CatalogUC) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	used, err := uc.Products.HasInvoiceLines(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return fmt.Errorf("%w: product appears on invoices", domain.ErrInUse)
	}
	return uc.Products.Delete(ctx, id)
}

func (uc *CatalogUC) validateBarcode(ctx context.Context, barcode string, selfID uuid.UUID) error {
	if !barcodeRe.MatchString(barcode) {
		return fmt.Errorf("barcode must be %d numeric digits", domain.BarcodeWidth)
	}
	existing, err := uc.Products.FindByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return fmt.Errorf("barcode %s is already assigned", barcode)
	}
	return nil
}

// nextBarcode assigns the next sequential zero-padded barcode.
func (uc *CatalogUC) nextBarcode(ctx context.Context) (string, error) {
	max, err := uc.Products.MaxBarcode(ctx)
	if err != nil {
		return "", err
	}
	n := 0
	if max != "" {
		n, err = strconv.Atoi(max)
		if err != nil {
			return "", fmt.Errorf("catalog: malformed barcode %q in store: %w", max, err)
		}
	}
	if n+1 > maxBarcodeValue {
		return "", fmt.Errorf("catalog: barcode space exhausted at %0*d", domain.BarcodeWidth, maxBarcodeValue)
	}
	return fmt.Sprintf("%0*d", domain.BarcodeWidth, n+1), nil
}

// --- Services ---

func (uc *CatalogUC) CreateService(ctx context.Context, s *domain.Service) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if !s.ServiceType.Valid() {
		return fmt.Errorf("unknown service type %q", s.ServiceType)
	}
	return uc.Services.Save(ctx, s)
}

func (uc *CatalogUC) UpdateService(ctx context.Context, s *domain.Service) error {
	if s.ID == uuid.Nil {
		return errors.New("service id is required")
	}
	if !s.ServiceType.Valid() {
		return fmt.Errorf("unknown service type %q", s.ServiceType)
	}
	return uc.Services.Save(ctx, s)
}

func (uc *CatalogUC) GetService(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	return uc.Services.FindByID(ctx, id)
}

func (uc *CatalogUC) ListServices(ctx context.Context) ([]domain.Service, error) {
	return uc.Services.List(ctx)
}

func (uc *CatalogUC) DeleteService(ctx context.Context, id uuid.UUID) error {
	used, err := uc.Services.HasInvoiceLines(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return fmt.Errorf("%w: service appears on invoices", domain.ErrInUse)
	}
	return uc.Services.Delete(ctx, id)
}

// --- Categories ---

func (uc *CatalogUC) SaveCategory(ctx context.Context, c *domain.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return uc.Categories.Save(ctx, c)
}

func (uc *CatalogUC) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return uc.Categories.List(ctx)
}

func (uc *CatalogUC) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	used, err := uc.Categories.HasProducts(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return fmt.Errorf("%w: category has products", domain.ErrInUse)
	}
	return uc.Categories.Delete(ctx, id)
}

// --- Suppliers ---

func (uc *CatalogUC) SaveSupplier(ctx context.Context, s *domain.Supplier) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return uc.Suppliers.Save(ctx, s)
}

func (uc *CatalogUC) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return uc.Suppliers.List(ctx)
}

func (uc *CatalogUC) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	used, err := uc.Suppliers.HasProducts(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return fmt.Errorf("%w: supplier has products", domain.ErrInUse)
	}
	return uc.Suppliers.Delete(ctx, id)
}
