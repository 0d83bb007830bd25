package httpserver

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/aurumworks/goldleaf/internal/domain"
	"github.com/aurumworks/goldleaf/internal/usecase"
)

type exportProductRepo struct {
	products []domain.Product
}

func (r *exportProductRepo) Save(context.Context, *domain.Product) error { return nil }
func (r *exportProductRepo) FindByID(context.Context, uuid.UUID) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}
func (r *exportProductRepo) FindByBarcode(context.Context, string) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}
func (r *exportProductRepo) List(context.Context, domain.ProductFilter) ([]domain.Product, int64, error) {
	return r.products, int64(len(r.products)), nil
}
func (r *exportProductRepo) Delete(context.Context, uuid.UUID) error { return nil }
func (r *exportProductRepo) HasInvoiceLines(context.Context, uuid.UUID) (bool, error) {
	return false, nil
}
func (r *exportProductRepo) MaxBarcode(context.Context) (string, error) { return "", nil }
func (r *exportProductRepo) FindByIDTx(*gorm.DB, uuid.UUID) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}
func (r *exportProductRepo) DecrementQuantityTx(*gorm.DB, uuid.UUID, int) error { return nil }

func TestExportInventoryXLSX(t *testing.T) {
	dec := decimal.RequireFromString
	repo := &exportProductRepo{products: []domain.Product{
		{
			ID: uuid.New(), Name: "Gold Ring", Barcode: "00001",
			Price: dec("100.00"), CostPrice: dec("60.00"), Quantity: 5,
			Material: "gold", Purity: "18K",
			Category: &domain.Category{Name: "Rings"},
		},
		{
			ID: uuid.New(), Name: "Silver Chain", Barcode: "00002",
			Price: dec("40.00"), Quantity: 12,
		},
	}}
	s := &Server{catalog: &usecase.CatalogUC{Products: repo}}

	rec := httptest.NewRecorder()
	s.handleExportInventory(rec, httptest.NewRequest(http.MethodGet, "/api/export/inventory", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "inventory_")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Inventory")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per product")
	assert.Equal(t, "Barcode", rows[0][0])
	assert.Equal(t, "00001", rows[1][0])
	assert.Equal(t, "Gold Ring", rows[1][1])
	assert.Equal(t, "Rings", rows[1][2])
	assert.Equal(t, "00002", rows[2][0])
}
