package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/aurumworks/goldleaf/internal/domain"
)

const (
	defaultSalesWindowDays = 30
	defaultTopCustomers    = 10
	maxTopCustomers        = 100
)

// ReportUC serves the read-only dashboards: daily sales, inventory valuation
// and customer spend. Everything here is a query; nothing mutates state.
type ReportUC struct {
	Reports domain.ReportRepo
}

// SalesByDay returns daily totals for the inclusive [from, to] date range.
// Zero values default to the last 30 days ending today.
func (uc *ReportUC) SalesByDay(ctx context.Context, from, to time.Time) ([]domain.DailySales, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -defaultSalesWindowDays)
	}
	if from.After(to) {
		return nil, fmt.Errorf("%w: %s is after %s", domain.ErrInvalidRange,
			from.Format("2006-01-02"), to.Format("2006-01-02"))
	}
	return uc.Reports.SalesByDay(ctx, from, to.AddDate(0, 0, 1))
}

func (uc *ReportUC) InventoryValuation(ctx context.Context) (*domain.InventoryValuation, error) {
	return uc.Reports.InventoryValuation(ctx)
}

func (uc *ReportUC) TopCustomers(ctx context.Context, limit int) ([]domain.CustomerSpend, error) {
	if limit <= 0 {
		limit = defaultTopCustomers
	}
	if limit > maxTopCustomers {
		limit = maxTopCustomers
	}
	return uc.Reports.TopCustomers(ctx, limit)
}
