package pdf

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurumworks/goldleaf/internal/domain"
)

func TestRenderInvoice(t *testing.T) {
	dec := decimal.RequireFromString
	productID := uuid.New()
	ready := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	appraisal := dec("500.00")

	inv := &domain.Invoice{
		ID:                 uuid.New(),
		InvoiceNumber:      "INV-20260829-101500",
		IssueDate:          time.Date(2026, 8, 29, 10, 15, 0, 0, time.UTC),
		TotalAmount:        dec("250.00"),
		TaxAmount:          dec("9.00"),
		Discount:           dec("10.00"),
		FinalAmount:        dec("249.00"),
		DepositAmount:      dec("100.00"),
		WarrantyPeriod:     12,
		AppraisalValue:     &appraisal,
		EstimatedReadyDate: &ready,
		Status:             domain.InvoiceStatusPending,
		Notes:              "Engrave initials on the inside of the band.",
		Customer: &domain.Customer{
			Name:    "Maria Lopez",
			Phone:   "555-0101",
			Address: "12 Harbor St",
		},
		Lines: []domain.InvoiceLine{
			{
				ProductID:  &productID,
				Quantity:   2,
				UnitPrice:  dec("100.00"),
				TotalPrice: dec("200.00"),
				Product:    &domain.Product{Name: "Gold Ring"},
			},
			{
				IsService:  true,
				Quantity:   1,
				UnitPrice:  dec("50.00"),
				TotalPrice: dec("50.00"),
				Service:    &domain.Service{Name: "Ring Sizing"},
			},
		},
	}

	r := NewRenderer("Goldleaf Jewellers", "1 Main St", "3")
	data, err := r.Render(inv)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
	assert.Greater(t, len(data), 1000)
}

func TestRenderMinimalInvoice(t *testing.T) {
	inv := &domain.Invoice{
		InvoiceNumber: "INV-20260829-101501",
		IssueDate:     time.Now(),
		Status:        domain.InvoiceStatusPaid,
	}
	data, err := NewRenderer("Goldleaf Jewellers", "", "").Render(inv)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestTaxLabelCarriesHalfRate(t *testing.T) {
	r := NewRenderer("Goldleaf Jewellers", "", "3")
	assert.Equal(t, "1.5", r.taxHalfRate)
	assert.Equal(t, "CGST (1.5%)", r.taxLabel("CGST"))

	plain := NewRenderer("Goldleaf Jewellers", "", "")
	assert.Equal(t, "SGST", plain.taxLabel("SGST"))

	malformed := NewRenderer("Goldleaf Jewellers", "", "abc")
	assert.Equal(t, "CGST", malformed.taxLabel("CGST"))
}

func TestLineDescription(t *testing.T) {
	assert.Equal(t, "Gold Ring", lineDescription(domain.InvoiceLine{Product: &domain.Product{Name: "Gold Ring"}}))
	assert.Equal(t, "Ring Sizing (service)", lineDescription(domain.InvoiceLine{IsService: true, Service: &domain.Service{Name: "Ring Sizing"}}))
	assert.Equal(t, "Service", lineDescription(domain.InvoiceLine{IsService: true}))
	assert.Equal(t, "Item", lineDescription(domain.InvoiceLine{}))
}
