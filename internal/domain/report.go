package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailySales aggregates committed revenue for one calendar day. Cancelled
// invoices are excluded.
type DailySales struct {
	Day      time.Time       `json:"day"`
	Invoices int64           `json:"invoices"`
	Total    decimal.Decimal `json:"total"`
}

// InventoryValuation summarizes the on-hand catalog at cost and retail.
type InventoryValuation struct {
	Products    int64           `json:"products"`
	Units       int64           `json:"units"`
	CostValue   decimal.Decimal `json:"cost_value"`
	RetailValue decimal.Decimal `json:"retail_value"`
}

// CustomerSpend ranks a customer by lifetime non-cancelled invoice total.
type CustomerSpend struct {
	CustomerID uuid.UUID       `json:"customer_id"`
	Name       string          `json:"name"`
	Invoices   int64           `json:"invoices"`
	Total      decimal.Decimal `json:"total"`
}

type ReportRepo interface {
	// SalesByDay groups non-cancelled invoices by issue day within
	// [from, to).
	SalesByDay(ctx context.Context, from, to time.Time) ([]DailySales, error)
	InventoryValuation(ctx context.Context) (*InventoryValuation, error)
	TopCustomers(ctx context.Context, limit int) ([]CustomerSpend, error)
}
