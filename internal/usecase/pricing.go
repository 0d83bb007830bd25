package usecase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aurumworks/goldleaf/internal/domain"
)

// CartEntry is one pending invoice line: a product or service reference with
// quantity and the unit price agreed at the counter.
type CartEntry struct {
	ProductID *uuid.UUID
	ServiceID *uuid.UUID
	IsService bool
	Quantity  int
	UnitPrice decimal.Decimal
}

type Totals struct {
	TotalAmount decimal.Decimal
	TaxAmount   decimal.Decimal
	FinalAmount decimal.Decimal
}

// ComputeTotals prices a cart. The subtotal is the sum of quantity × unit
// price over all entries, in fixed-point decimal. taxAmount is taken as-is
// from the caller and never recomputed here. final = total + tax − discount.
//
// Pure function: no side effects, no repository access.
func ComputeTotals(entries []CartEntry, taxAmount, discount decimal.Decimal) (Totals, error) {
	if taxAmount.IsNegative() {
		return Totals{}, fmt.Errorf("%w: negative tax amount %s", domain.ErrInvalidPricing, taxAmount)
	}
	if discount.IsNegative() {
		return Totals{}, fmt.Errorf("%w: negative discount %s", domain.ErrInvalidPricing, discount)
	}

	total := decimal.Zero
	for i, e := range entries {
		if e.Quantity < 1 {
			return Totals{}, fmt.Errorf("%w: entry %d has quantity %d", domain.ErrInvalidPricing, i, e.Quantity)
		}
		if e.UnitPrice.IsNegative() {
			return Totals{}, fmt.Errorf("%w: entry %d has negative unit price %s", domain.ErrInvalidPricing, i, e.UnitPrice)
		}
		total = total.Add(domain.LineTotal(e.Quantity, e.UnitPrice))
	}

	final := total.Add(taxAmount).Sub(discount)
	if final.IsNegative() {
		return Totals{}, fmt.Errorf("%w: discount %s exceeds total %s plus tax %s",
			domain.ErrInvalidPricing, discount, total, taxAmount)
	}

	return Totals{
		TotalAmount: total.Round(2),
		TaxAmount:   taxAmount.Round(2),
		FinalAmount: final.Round(2),
	}, nil
}
