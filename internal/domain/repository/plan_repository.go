package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/bizledger-api/internal/domain/entity"
)

// PlanRepository defines the interface for subscription plan data operations
type PlanRepository interface {
	Create(ctx context.Context, plan *entity.SubscriptionPlan) error
	GetByCode(ctx context.Context, code string) (*entity.SubscriptionPlan, error)
	List(ctx context.Context) ([]entity.SubscriptionPlan, error)
}

// SettingsRepository defines the interface for per-business settings
type SettingsRepository interface {
	// GetByBusiness returns the settings row for a business, or nil if none exists
	GetByBusiness(ctx context.Context, businessID uuid.UUID) (*entity.BusinessSettings, error)
	Save(ctx context.Context, settings *entity.BusinessSettings) error
}
