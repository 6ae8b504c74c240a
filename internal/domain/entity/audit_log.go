package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/enum"
	"gorm.io/gorm"
)

// AuditLog is one immutable narrative record of a mutating operation. Entries
// are only ever appended and are listed newest-first.
type AuditLog struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	BusinessID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"business_id"`
	Action       enum.AuditAction `gorm:"size:30;not null;index" json:"action"`
	Details      string           `gorm:"type:text" json:"details"`
	OperatorName string           `gorm:"size:255" json:"operator_name"`
	CreatedAt    time.Time        `gorm:"index" json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new log entry
func (l *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}
