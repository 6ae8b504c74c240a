package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale represents one immutable line of a completed transaction. Multiple lines
// share a transaction ID to form one receipt. Revenue and profit are snapshotted
// at sale time and never recomputed.
type Sale struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BusinessID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"business_id"`
	TransactionID uuid.UUID      `gorm:"type:uuid;not null;index" json:"transaction_id"`
	ItemID        uuid.UUID      `gorm:"type:uuid;not null" json:"item_id"`
	ItemName      string         `gorm:"size:255;not null" json:"item_name"`
	Size          string         `gorm:"size:50" json:"size"`
	Unit          string         `gorm:"size:50" json:"unit"`
	Quantity      float64        `gorm:"not null" json:"quantity"`
	TotalRevenue  int64          `gorm:"not null" json:"-"` // Stored in cents
	TotalProfit   int64          `gorm:"not null" json:"-"` // Stored in cents
	SaleDate      time.Time      `gorm:"not null;index" json:"sale_date"`
	PaymentMethod string         `gorm:"size:50" json:"payment_method"`
	OperatorID    uuid.UUID      `gorm:"type:uuid" json:"operator_id"`
	OperatorName  string         `gorm:"size:255" json:"operator_name"`
	CustomerID    *uuid.UUID     `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Business Business  `gorm:"foreignKey:BusinessID" json:"-"`
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		TotalRevenue float64 `json:"total_revenue"`
		TotalProfit  float64 `json:"total_profit"`
	}{
		Alias:        Alias(s),
		TotalRevenue: float64(s.TotalRevenue) / 100,
		TotalProfit:  float64(s.TotalProfit) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}
