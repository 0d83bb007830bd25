package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/aurumworks/goldleaf/internal/domain"
)

// InvoiceUC is the single entry point that turns a cart into a committed
// invoice. Validation and pricing run up front; the header, the lines and the
// stock decrements are persisted in one transaction, so a failure at any step
// leaves no partial invoice and no partial decrement behind.
type InvoiceUC struct {
	Invoices  domain.InvoiceRepo
	Products  domain.ProductRepo
	Services  domain.ServiceRepo
	Customers domain.CustomerRepo
	Stock     *StockAdjuster
	Tx        domain.TxRunner
	Numbers   *InvoiceNumberGenerator
}

type CreateInvoiceInput struct {
	CustomerID uuid.UUID
	IssueDate  time.Time
	DueDate    *time.Time
	Entries    []CartEntry
	TaxAmount  decimal.Decimal
	Discount   decimal.Decimal

	IsCustomOrder      bool
	IsRepair           bool
	EstimatedReadyDate *time.Time
	DepositAmount      decimal.Decimal
	WarrantyPeriod     int
	AppraisalValue     *decimal.Decimal
	PaymentMethod      string
	Notes              string
	CreatedBy          *uuid.UUID
}

func (uc *InvoiceUC) Create(ctx context.Context, in CreateInvoiceInput) (*domain.Invoice, error) {
	if _, err := uc.Customers.FindByID(ctx, in.CustomerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCustomerNotFound, in.CustomerID)
		}
		return nil, fmt.Errorf("invoice: load customer: %w", err)
	}

	// Pre-flight: every cart entry must reference an existing product or
	// service before anything is written.
	var decrements []StockDecrement
	for i, e := range in.Entries {
		if e.IsService {
			if e.ServiceID == nil {
				return nil, fmt.Errorf("%w: entry %d has no service reference", domain.ErrLineItemNotFound, i)
			}
			if _, err := uc.Services.FindByID(ctx, *e.ServiceID); err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return nil, fmt.Errorf("%w: service %s", domain.ErrLineItemNotFound, e.ServiceID)
				}
				return nil, fmt.Errorf("invoice: load service %s: %w", e.ServiceID, err)
			}
			continue
		}
		if e.ProductID == nil {
			return nil, fmt.Errorf("%w: entry %d has no product reference", domain.ErrLineItemNotFound, i)
		}
		if _, err := uc.Products.FindByID(ctx, *e.ProductID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: product %s", domain.ErrLineItemNotFound, e.ProductID)
			}
			return nil, fmt.Errorf("invoice: load product %s: %w", e.ProductID, err)
		}
		decrements = append(decrements, StockDecrement{ProductID: *e.ProductID, Quantity: e.Quantity})
	}

	totals, err := ComputeTotals(in.Entries, in.TaxAmount, in.Discount)
	if err != nil {
		return nil, err
	}

	inv := &domain.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: uc.Numbers.Next(),
		CustomerID:    in.CustomerID,
		IssueDate:     in.IssueDate,
		DueDate:       in.DueDate,
		TotalAmount:   totals.TotalAmount,
		TaxAmount:     totals.TaxAmount,
		Discount:      in.Discount.Round(2),
		FinalAmount:   totals.FinalAmount,

		IsCustomOrder:      in.IsCustomOrder,
		IsRepair:           in.IsRepair,
		EstimatedReadyDate: in.EstimatedReadyDate,
		DepositAmount:      in.DepositAmount.Round(2),
		WarrantyPeriod:     in.WarrantyPeriod,
		AppraisalValue:     in.AppraisalValue,
		PaymentMethod:      in.PaymentMethod,
		Notes:              in.Notes,
		CreatedBy:          in.CreatedBy,
		Status:             domain.InvoiceStatusPending,
	}
	for i, e := range in.Entries {
		inv.Lines = append(inv.Lines, domain.InvoiceLine{
			ID:         uuid.New(),
			InvoiceID:  inv.ID,
			Position:   i,
			ProductID:  e.ProductID,
			ServiceID:  e.ServiceID,
			IsService:  e.IsService,
			Quantity:   e.Quantity,
			UnitPrice:  e.UnitPrice.Round(2),
			TotalPrice: domain.LineTotal(e.Quantity, e.UnitPrice),
		})
	}

	// Header, lines and stock decrements commit or roll back together.
	err = uc.Tx.InTx(ctx, func(tx *gorm.DB) error {
		if err := uc.Invoices.CreateTx(tx, inv); err != nil {
			return err
		}
		return uc.Stock.ApplyTx(tx, decrements)
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// Get returns the fully populated aggregate for rendering and display. The
// caller must treat it as read-only.
func (uc *InvoiceUC) Get(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return uc.Invoices.FindByID(ctx, id)
}

func (uc *InvoiceUC) List(ctx context.Context, f domain.InvoiceFilter) ([]domain.Invoice, int64, error) {
	if f.PageSize <= 0 {
		f.PageSize = 50
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	return uc.Invoices.List(ctx, f)
}

// UpdateStatus moves an invoice through its lifecycle. pending may become
// paid or cancelled, paid may become cancelled; nothing returns to pending.
func (uc *InvoiceUC) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}
	inv, err := uc.Invoices.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !inv.Status.CanTransitionTo(status) {
		return fmt.Errorf("%w: cannot change %s to %s", domain.ErrInvalidStatus, inv.Status, status)
	}
	if inv.Status == status {
		return nil
	}
	return uc.Invoices.UpdateStatus(ctx, id, status)
}
