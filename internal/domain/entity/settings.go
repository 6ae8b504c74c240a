package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessSettings holds per-business display settings: the active currency
// code and user-edited exchange rates.
type BusinessSettings struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	BusinessID    uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex" json:"business_id"`
	Currency      string             `gorm:"size:10;default:'AOA'" json:"currency"`
	ExchangeRates map[string]float64 `gorm:"serializer:json" json:"exchange_rates"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Business Business `gorm:"foreignKey:BusinessID" json:"-"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *BusinessSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BusinessSettings model
func (BusinessSettings) TableName() string {
	return "business_settings"
}
