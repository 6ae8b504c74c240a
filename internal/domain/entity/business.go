package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Business represents one operated venue under an account. Every operational
// collection (items, sales, appointments, ...) hangs off a business.
type Business struct {
	ID                 uuid.UUID               `gorm:"type:uuid;primary_key" json:"id"`
	UserID             uuid.UUID               `gorm:"type:uuid;not null;index" json:"user_id"`
	Name               string                  `gorm:"size:255;not null" json:"name"`
	Category           string                  `gorm:"size:100" json:"category"`
	SubscriptionStatus enum.SubscriptionStatus `gorm:"size:20;default:'trial'" json:"subscription_status"`
	SubscriptionExpiry time.Time               `json:"subscription_expiry"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
	DeletedAt          gorm.DeletedAt          `gorm:"index" json:"-"`

	// Relationships
	User         User            `gorm:"foreignKey:UserID" json:"-"`
	Employees    []Employee      `gorm:"foreignKey:BusinessID" json:"-"`
	Items        []InventoryItem `gorm:"foreignKey:BusinessID" json:"-"`
	Sales        []Sale          `gorm:"foreignKey:BusinessID" json:"-"`
	Customers    []Customer      `gorm:"foreignKey:BusinessID" json:"-"`
	Suppliers    []Supplier      `gorm:"foreignKey:BusinessID" json:"-"`
	Expenses     []Expense       `gorm:"foreignKey:BusinessID" json:"-"`
	Appointments []Appointment   `gorm:"foreignKey:BusinessID" json:"-"`
	AuditLogs    []AuditLog      `gorm:"foreignKey:BusinessID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new business
func (b *Business) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Business model
func (Business) TableName() string {
	return "businesses"
}

// SubscriptionExpired reports whether the subscription window has passed
func (b *Business) SubscriptionExpired(now time.Time) bool {
	return now.After(b.SubscriptionExpiry)
}
