package usecase

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aurumworks/goldleaf/internal/domain"
)

type StockDecrement struct {
	ProductID uuid.UUID
	Quantity  int
}

// StockAdjuster applies sale decrements to product stock. It only ever runs
// inside an open invoice transaction: a failed decrement aborts the whole
// transaction, and the only way to undo an applied one is rolling it back.
type StockAdjuster struct {
	products domain.ProductRepo
}

func NewStockAdjuster(products domain.ProductRepo) *StockAdjuster {
	return &StockAdjuster{products: products}
}

// ApplyTx decrements each product's on-hand quantity inside tx. Every product
// must exist. There is no floor check: quantity may go negative, matching how
// the counter ledger has always behaved.
func (a *StockAdjuster) ApplyTx(tx *gorm.DB, decrements []StockDecrement) error {
	for _, d := range decrements {
		if _, err := a.products.FindByIDTx(tx, d.ProductID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("%w: %s", domain.ErrProductNotFound, d.ProductID)
			}
			return fmt.Errorf("stock: load product %s: %w", d.ProductID, err)
		}
		if err := a.products.DecrementQuantityTx(tx, d.ProductID, d.Quantity); err != nil {
			return fmt.Errorf("stock: decrement product %s: %w", d.ProductID, err)
		}
	}
	return nil
}
