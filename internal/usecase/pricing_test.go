package usecase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurumworks/goldleaf/internal/domain"
)

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeTotals(t *testing.T) {
	productID := uuid.New()
	serviceID := uuid.New()
	entries := []CartEntry{
		{ProductID: &productID, Quantity: 2, UnitPrice: money("100.00")},
		{ServiceID: &serviceID, IsService: true, Quantity: 1, UnitPrice: money("50.00")},
	}

	totals, err := ComputeTotals(entries, money("9.00"), decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "250.00", totals.TotalAmount.StringFixed(2))
	assert.Equal(t, "9.00", totals.TaxAmount.StringFixed(2))
	assert.Equal(t, "259.00", totals.FinalAmount.StringFixed(2))
}

func TestComputeTotalsExactDecimals(t *testing.T) {
	// 3 × 0.10 must be exactly 0.30, not a float approximation.
	id := uuid.New()
	totals, err := ComputeTotals([]CartEntry{
		{ProductID: &id, Quantity: 3, UnitPrice: money("0.10")},
	}, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, totals.TotalAmount.Equal(money("0.30")))
	assert.True(t, totals.FinalAmount.Equal(money("0.30")))
}

func TestComputeTotalsDiscountApplied(t *testing.T) {
	id := uuid.New()
	totals, err := ComputeTotals([]CartEntry{
		{ProductID: &id, Quantity: 1, UnitPrice: money("200.00")},
	}, money("6.00"), money("50.00"))
	require.NoError(t, err)
	assert.Equal(t, "156.00", totals.FinalAmount.StringFixed(2))
}

func TestComputeTotalsRejectsBadInput(t *testing.T) {
	id := uuid.New()
	base := CartEntry{ProductID: &id, Quantity: 1, UnitPrice: money("100.00")}

	cases := []struct {
		name     string
		entries  []CartEntry
		tax      decimal.Decimal
		discount decimal.Decimal
	}{
		{"negative tax", []CartEntry{base}, money("-1.00"), decimal.Zero},
		{"negative discount", []CartEntry{base}, decimal.Zero, money("-1.00")},
		{"zero quantity", []CartEntry{{ProductID: &id, Quantity: 0, UnitPrice: money("10.00")}}, decimal.Zero, decimal.Zero},
		{"negative unit price", []CartEntry{{ProductID: &id, Quantity: 1, UnitPrice: money("-10.00")}}, decimal.Zero, decimal.Zero},
		{"discount exceeds total plus tax", []CartEntry{base}, money("9.00"), money("150.00")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeTotals(tc.entries, tc.tax, tc.discount)
			assert.ErrorIs(t, err, domain.ErrInvalidPricing)
		})
	}
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals, err := ComputeTotals(nil, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, totals.FinalAmount.IsZero())
}
