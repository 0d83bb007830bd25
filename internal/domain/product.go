package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BarcodeWidth is the fixed width of product barcodes. Barcodes are numeric,
// zero-padded and unique; once a product has been sold its barcode is frozen.
const BarcodeWidth = 5

type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string          `gorm:"size:100;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Barcode     string          `gorm:"size:5;uniqueIndex" json:"barcode"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CostPrice   decimal.Decimal `gorm:"type:decimal(10,2)" json:"cost_price"`
	Quantity    int             `gorm:"not null;default:0" json:"quantity"`

	Material   string          `gorm:"size:50" json:"material,omitempty"`
	MetalType  string          `gorm:"size:50" json:"metal_type,omitempty"`
	Purity     string          `gorm:"size:20" json:"purity,omitempty"` // "18K", "925", ...
	StoneType  string          `gorm:"size:50" json:"stone_type,omitempty"`
	StoneCount int             `gorm:"default:0" json:"stone_count,omitempty"`
	StoneCarat decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"stone_carat"`
	Weight     decimal.Decimal `gorm:"type:decimal(10,3)" json:"weight"`           // grams
	Size       string          `gorm:"size:20" json:"size,omitempty"`              // rings, bracelets, etc.

	CategoryID *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	SupplierID *uuid.UUID `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Supplier struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	ContactPerson string    `gorm:"size:100" json:"contact_person,omitempty"`
	Email         string    `gorm:"size:120" json:"email,omitempty"`
	Phone         string    `gorm:"size:20" json:"phone,omitempty"`
	Address       string    `gorm:"type:text" json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
