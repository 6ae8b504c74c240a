package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"gorm.io/gorm"
)

// ServiceRef is a snapshot of one booked service line at booking time
type ServiceRef struct {
	ItemID uuid.UUID `json:"item_id"`
	Name   string    `json:"name"`
}

// Appointment represents one scheduled service booking. Customer identity and
// service names are snapshotted at booking time. A reschedule cancels the
// original and creates a new appointment carrying a back-reference.
type Appointment struct {
	ID                uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	BusinessID        uuid.UUID              `gorm:"type:uuid;not null;index" json:"business_id"`
	CustomerID        uuid.UUID              `gorm:"type:uuid;not null;index" json:"customer_id"`
	CustomerName      string                 `gorm:"size:255;not null" json:"customer_name"`
	CustomerPhone     string                 `gorm:"size:50" json:"customer_phone"`
	Services          []ServiceRef           `gorm:"serializer:json" json:"services"`
	TotalAmount       int64                  `gorm:"default:0" json:"-"` // Stored in cents
	Date              string                 `gorm:"size:10;not null;index" json:"date"`       // YYYY-MM-DD
	StartTime         string                 `gorm:"size:5;not null" json:"start_time"`        // HH:MM
	DurationMinutes   int                    `gorm:"default:60" json:"duration_minutes"`
	Status            enum.AppointmentStatus `gorm:"size:20;default:'scheduled';index" json:"status"`
	Notes             string                 `gorm:"type:text" json:"notes"`
	RescheduledFromID *uuid.UUID             `gorm:"type:uuid" json:"rescheduled_from_id,omitempty"`
	CreatedByName     string                 `gorm:"size:255" json:"created_by_name"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
	DeletedAt         gorm.DeletedAt         `gorm:"index" json:"-"`

	// Relationships
	Business Business `gorm:"foreignKey:BusinessID" json:"-"`
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (a Appointment) MarshalJSON() ([]byte, error) {
	type Alias Appointment
	return json.Marshal(&struct {
		Alias
		TotalAmount float64 `json:"total_amount"`
	}{
		Alias:       Alias(a),
		TotalAmount: float64(a.TotalAmount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new appointment
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Appointment model
func (Appointment) TableName() string {
	return "appointments"
}

// Duration returns the booked duration, defaulting to 60 minutes when unset
func (a *Appointment) Duration() int {
	if a.DurationMinutes <= 0 {
		return 60
	}
	return a.DurationMinutes
}
