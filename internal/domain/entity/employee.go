package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Employee represents a staff member of one business. The permission list holds
// the capability flags resolved into the session at login.
type Employee struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	BusinessID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"business_id"`
	Name        string            `gorm:"size:255;not null" json:"name"`
	Phone       string            `gorm:"size:50;not null;index" json:"phone"`
	Password    string            `gorm:"size:255;not null" json:"-"`
	Role        enum.OperatorRole `gorm:"size:20;default:'employee'" json:"role"`
	Permissions []string          `gorm:"serializer:json" json:"permissions"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Business Business `gorm:"foreignKey:BusinessID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new employee
func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}
