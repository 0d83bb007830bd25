package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status change is allowed.
// pending may become paid or cancelled, paid may become cancelled;
// nothing ever goes back to pending.
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case InvoiceStatusPending:
		return next == InvoiceStatusPaid || next == InvoiceStatusCancelled
	case InvoiceStatusPaid:
		return next == InvoiceStatusCancelled
	}
	return false
}

type Invoice struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceNumber string     `gorm:"size:50;uniqueIndex;not null" json:"invoice_number"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;index;not null" json:"customer_id"`
	IssueDate     time.Time  `json:"issue_date"`
	DueDate       *time.Time `json:"due_date,omitempty"`

	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"total_amount"`
	TaxAmount   decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"tax_amount"`
	Discount    decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"discount"`
	FinalAmount decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"final_amount"`

	IsCustomOrder      bool             `gorm:"default:false" json:"is_custom_order"`
	IsRepair           bool             `gorm:"default:false" json:"is_repair"`
	EstimatedReadyDate *time.Time       `json:"estimated_ready_date,omitempty"`
	DepositAmount      decimal.Decimal  `gorm:"type:decimal(10,2);default:0" json:"deposit_amount"`
	WarrantyPeriod     int              `json:"warranty_period,omitempty"` // months
	AppraisalValue     *decimal.Decimal `gorm:"type:decimal(10,2)" json:"appraisal_value,omitempty"` // for insurance

	Status        InvoiceStatus `gorm:"type:varchar(20);index;default:'pending'" json:"status"`
	PaymentMethod string        `gorm:"size:50" json:"payment_method,omitempty"` // cash, credit, debit, layaway, ...
	Notes         string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy     *uuid.UUID    `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	// Lines are owned by the invoice: deleting the invoice deletes them.
	Lines    []InvoiceLine `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"lines,omitempty"`
	Customer *Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// InvoiceLine references exactly one of product or service, discriminated by
// IsService. Position is the zero-based cart index, preserved so reads return
// lines in the order they were sold. TotalPrice is written once at commit and
// kept as the historical amount even if the source price changes later.
type InvoiceLine struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceID uuid.UUID  `gorm:"type:uuid;index;not null" json:"invoice_id"`
	Position  int        `gorm:"not null;default:0" json:"position"`
	ProductID *uuid.UUID `gorm:"type:uuid;index" json:"product_id,omitempty"`
	ServiceID *uuid.UUID `gorm:"type:uuid;index" json:"service_id,omitempty"`
	IsService bool       `gorm:"default:false" json:"is_service"`

	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

// LineTotal returns quantity × unit price at 2 decimal places.
func LineTotal(qty int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(qty))).Round(2)
}
