package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ServiceType string

const (
	ServiceRepair       ServiceType = "repair"
	ServiceCustom       ServiceType = "custom"
	ServiceCleaning     ServiceType = "cleaning"
	ServiceEngraving    ServiceType = "engraving"
	ServiceAppraisal    ServiceType = "appraisal"
	ServiceSizing       ServiceType = "sizing"
	ServiceStoneSetting ServiceType = "stone_setting"
	ServicePolishing    ServiceType = "polishing"
	ServiceOther        ServiceType = "other"
)

func (t ServiceType) Valid() bool {
	switch t {
	case ServiceRepair, ServiceCustom, ServiceCleaning, ServiceEngraving,
		ServiceAppraisal, ServiceSizing, ServiceStoneSetting, ServicePolishing, ServiceOther:
		return true
	}
	return false
}

// Service is workshop labor sold on invoices: repairs, engraving, sizing and
// the like. Services carry no stock.
type Service struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string          `gorm:"size:100;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	ServiceType ServiceType     `gorm:"type:varchar(50);not null" json:"service_type"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Duration    int             `json:"duration,omitempty"` // estimated days

	MaterialsNeeded string `gorm:"type:text" json:"materials_needed,omitempty"`
	DifficultyLevel string `gorm:"size:20" json:"difficulty_level,omitempty"` // easy, medium, complex
	RequiresDeposit bool   `gorm:"default:false" json:"requires_deposit"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
