package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionPlan defines a renewable billing plan. Renewal extends a
// business's expiry by the plan's duration in whole months, measured from the
// moment of renewal.
type SubscriptionPlan struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Code           string    `gorm:"size:50;unique;not null" json:"code"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	DurationMonths int       `gorm:"not null" json:"duration_months"`
	Price          int64     `gorm:"default:0" json:"-"` // Stored in cents
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p SubscriptionPlan) MarshalJSON() ([]byte, error) {
	type Alias SubscriptionPlan
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(p),
		Price: float64(p.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new plan
func (p *SubscriptionPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SubscriptionPlan model
func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}
