package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Expense represents one recurring or one-off outflow obligation. Paying a
// fixed expense may spawn the next month's unpaid copy, leaving the paid
// instance as a closed historical record.
type Expense struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	BusinessID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"business_id"`
	Name          string           `gorm:"size:255;not null" json:"name"`
	Amount        int64            `gorm:"default:0" json:"-"` // Stored in cents
	Type          enum.ExpenseType `gorm:"size:20;default:'variable'" json:"type"`
	PaymentDay    int              `gorm:"default:0" json:"payment_day"`
	NextDueDate   time.Time        `gorm:"type:date" json:"next_due_date"`
	IsPaid        bool             `gorm:"default:false" json:"is_paid"`
	LastPaidDate  *time.Time       `json:"last_paid_date,omitempty"`
	PaymentMethod *string          `gorm:"size:50" json:"payment_method,omitempty"`
	CreatedByName string           `gorm:"size:255" json:"created_by_name"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Business Business `gorm:"foreignKey:BusinessID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (e Expense) MarshalJSON() ([]byte, error) {
	type Alias Expense
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(e),
		Amount: float64(e.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
