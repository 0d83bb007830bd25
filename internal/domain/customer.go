package domain

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string    `gorm:"size:100;not null" json:"name"`
	Email   string    `gorm:"size:120" json:"email,omitempty"`
	Phone   string    `gorm:"size:20" json:"phone,omitempty"`
	Address string    `gorm:"type:text" json:"address,omitempty"`

	Birthdate      *time.Time `gorm:"type:date" json:"birthdate,omitempty"`
	Anniversary    *time.Time `gorm:"type:date" json:"anniversary,omitempty"`
	Preferences    string     `gorm:"type:text" json:"preferences,omitempty"`
	RingSize       string     `gorm:"size:10" json:"ring_size,omitempty"`
	BraceletSize   string     `gorm:"size:10" json:"bracelet_size,omitempty"`
	NecklaceLength string     `gorm:"size:10" json:"necklace_length,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
