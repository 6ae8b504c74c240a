package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ctxKey string

// BusinessIDKey is the context key for the active business ID
const BusinessIDKey ctxKey = "business_id"

// BusinessScope returns a GORM scope that filters by the active business.
// This is applied to every query for business-scoped entities. If the context
// carries no business, the query matches nothing rather than leaking data
// across businesses.
func BusinessScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		businessID, ok := ctx.Value(BusinessIDKey).(uuid.UUID)
		if !ok || businessID == uuid.Nil {
			return db.Where("1 = 0")
		}
		return db.Where("business_id = ?", businessID)
	}
}

// WithBusiness adds the active business ID to the context
func WithBusiness(ctx context.Context, businessID uuid.UUID) context.Context {
	return context.WithValue(ctx, BusinessIDKey, businessID)
}

// GetBusinessID extracts the active business ID from the context
func GetBusinessID(ctx context.Context) (uuid.UUID, bool) {
	businessID, ok := ctx.Value(BusinessIDKey).(uuid.UUID)
	return businessID, ok && businessID != uuid.Nil
}
