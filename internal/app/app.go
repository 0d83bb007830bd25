package app

import (
	"context"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/aurumworks/goldleaf/internal/adapters/barcode"
	"github.com/aurumworks/goldleaf/internal/adapters/httpserver"
	"github.com/aurumworks/goldleaf/internal/adapters/pdf"
	"github.com/aurumworks/goldleaf/internal/adapters/repo/postgres"
	"github.com/aurumworks/goldleaf/internal/config"
	"github.com/aurumworks/goldleaf/internal/domain"
	"github.com/aurumworks/goldleaf/internal/usecase"
)

type App struct {
	DB         *gorm.DB
	InvoiceUC  *usecase.InvoiceUC
	CatalogUC  *usecase.CatalogUC
	CustomerUC *usecase.CustomerUC
	AuthUC     *usecase.AuthUC
	ReportUC   *usecase.ReportUC
	Renderer   *pdf.Renderer
	Barcodes   *barcode.Generator
}

func New(db *gorm.DB, cfg *config.Config) (*App, error) {
	productRepo := postgres.NewProductRepo(db)
	serviceRepo := postgres.NewServiceRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	categoryRepo := postgres.NewCategoryRepo(db)
	supplierRepo := postgres.NewSupplierRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	userRepo := postgres.NewUserRepo(db)

	barcodes, err := barcode.New(cfg.BarcodeDir)
	if err != nil {
		return nil, err
	}

	a := &App{DB: db}
	a.InvoiceUC = &usecase.InvoiceUC{
		Invoices:  invoiceRepo,
		Products:  productRepo,
		Services:  serviceRepo,
		Customers: customerRepo,
		Stock:     usecase.NewStockAdjuster(productRepo),
		Tx:        postgres.NewTxRunner(db),
		Numbers:   usecase.NewInvoiceNumberGenerator(),
	}
	a.CatalogUC = &usecase.CatalogUC{
		Products:   productRepo,
		Services:   serviceRepo,
		Categories: categoryRepo,
		Suppliers:  supplierRepo,
	}
	a.CustomerUC = &usecase.CustomerUC{Customers: customerRepo}
	a.AuthUC = &usecase.AuthUC{
		Users:  userRepo,
		Secret: []byte(cfg.JWTSecret),
		Expiry: time.Duration(cfg.JWTExpirationHours) * time.Hour,
	}
	a.ReportUC = &usecase.ReportUC{Reports: postgres.NewReportRepo(db)}
	a.Renderer = pdf.NewRenderer(cfg.CompanyName, cfg.CompanyAddress, cfg.TaxRatePct)
	a.Barcodes = barcodes
	return a, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.InvoiceUC, a.CatalogUC, a.CustomerUC, a.AuthUC, a.ReportUC, a.Renderer, a.Barcodes)
}

func (a *App) Migrate() error {
	if err := a.DB.AutoMigrate(
		&domain.User{}, &domain.Category{}, &domain.Supplier{},
		&domain.Product{}, &domain.Service{}, &domain.Customer{},
		&domain.Invoice{}, &domain.InvoiceLine{},
	); err != nil {
		return err
	}

	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_invoices_created_at ON invoices(created_at)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_invoice_lines_invoice_id ON invoice_lines(invoice_id)").Error
	_ = a.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_products_barcode_unique ON products(barcode) WHERE barcode <> ''").Error

	return nil
}

// SeedAdmin creates the initial admin account on an empty user table. A blank
// username or password skips seeding.
func (a *App) SeedAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	var count int64
	if err := a.DB.WithContext(ctx).Model(&domain.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err := a.AuthUC.CreateUser(ctx, username, username+"@localhost", password, true)
	return err
}
