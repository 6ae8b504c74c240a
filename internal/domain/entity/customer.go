package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents one patron of a business. Loyalty points and lifetime
// spend are mutated only as a side effect of completed sales and appointments.
type Customer struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BusinessID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"business_id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Phone         string         `gorm:"size:50" json:"phone"`
	Email         *string        `gorm:"size:255" json:"email,omitempty"`
	Address       *string        `gorm:"type:text" json:"address,omitempty"`
	Notes         string         `gorm:"type:text" json:"notes"`
	LoyaltyPoints int            `gorm:"default:0" json:"loyalty_points"`
	TotalSpent    int64          `gorm:"default:0" json:"-"` // Stored in cents
	LastVisit     *time.Time     `json:"last_visit,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Business Business `gorm:"foreignKey:BusinessID" json:"-"`
	Sales    []Sale   `gorm:"foreignKey:CustomerID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (c Customer) MarshalJSON() ([]byte, error) {
	type Alias Customer
	return json.Marshal(&struct {
		Alias
		TotalSpent float64 `json:"total_spent"`
	}{
		Alias:      Alias(c),
		TotalSpent: float64(c.TotalSpent) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
